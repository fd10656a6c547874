package fonts_test

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elektron/internal/config"
	httpapi "elektron/internal/httpapi"
	"elektron/internal/modules/fonts"
)

func TestServer_fontTraversal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Regular.woff2"), []byte("wOF2"), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	mux := http.NewServeMux()
	fonts.RegisterFeature(mux, dir, nil)
	srv := httpapi.NewServer(config.Config{HTTPAddr: ":0"}, fonts.Guard(mux), nil, nil)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	conn, err := net.Dial("tcp", ts.Listener.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	fmt.Fprint(conn, "GET /fonts/../../etc/passwd HTTP/1.1\r\nHost: elektron.test\r\nConnection: close\r\n\r\n")
	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d (Location %q)", resp.StatusCode, http.StatusBadRequest, resp.Header.Get("Location"))
	}
	if !strings.Contains(string(body), `"message":"Invalid filename"`) {
		t.Errorf("body = %q; want Invalid filename message", body)
	}

	got, err := http.Get(ts.URL + "/fonts/Regular.woff2")
	if err != nil {
		t.Fatalf("get font: %v", err)
	}
	defer got.Body.Close()
	if got.StatusCode != http.StatusOK {
		t.Errorf("valid font status = %d; want %d", got.StatusCode, http.StatusOK)
	}
}
