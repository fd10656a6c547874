package controller

import (
	"bytes"
	"errors"
	"net/http"

	"elektron/internal/modules/prices/types"
	"elektron/internal/modules/prices/upstream"
	"elektron/internal/modules/prices/validator"
	"elektron/internal/modules/prices/views"
	"elektron/internal/page"
	"elektron/internal/utils"
)

const msgUpstreamFailed = "Kunne ikke hente strømpriser"

func (c *pricesControllerImpl) handleIndex(w http.ResponseWriter, r *http.Request) {
	s := page.New(c.today(), c.region)
	q := s.Query()

	var loadErr string
	points, err := c.service.Chart(r.Context(), q)
	if err != nil {
		c.logger.Error("index: load prices failed", "region", q.Region, "date", q.Date(), "error", err)
		points, loadErr = nil, msgUpstreamFailed
	}

	var buf bytes.Buffer
	if err := views.RenderIndex(&buf, views.NewIndexData(s, points, loadErr)); err != nil {
		c.logger.Error("index template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	utils.WriteHTML(w, http.StatusOK, buf.Bytes())
}

func (c *pricesControllerImpl) handlePrices(w http.ResponseWriter, r *http.Request) {
	c.writeChart(w, r, types.QueryFor(c.today(), c.region))
}

func (c *pricesControllerImpl) handlePricesForDate(w http.ResponseWriter, r *http.Request) {
	q, err := validator.Parse(
		r.PathValue("year"),
		r.PathValue("month"),
		r.PathValue("day"),
		r.PathValue("region"),
	)
	if err != nil {
		var verr *validator.Error
		if errors.As(err, &verr) {
			utils.WriteError(w, http.StatusBadRequest, verr.Message)
			return
		}
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.writeChart(w, r, q)
}

func (c *pricesControllerImpl) writeChart(w http.ResponseWriter, r *http.Request, q types.Query) {
	points, err := c.service.Chart(r.Context(), q)
	if err != nil {
		c.logger.Error("load prices failed",
			"region", q.Region,
			"date", q.Date(),
			"upstream", errors.Is(err, upstream.ErrUpstreamUnavailable),
			"error", err,
		)
		utils.WriteError(w, http.StatusInternalServerError, msgUpstreamFailed)
		return
	}
	utils.WriteJSON(w, http.StatusOK, points)
}
