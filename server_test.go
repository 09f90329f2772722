package siteconfig

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func TestServerSiteJSON(t *testing.T) {
	s := NewServer(Site())

	rec := serve(t, s, "/site.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	var got SiteConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, Site(), got)
}

func TestServerLinks(t *testing.T) {
	s := NewServer(Site())

	rec := serve(t, s, "/site/links.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var links []UserLink
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &links))
	assert.Equal(t, Site().UserLinks, links)
}

func TestServerLinksEmpty(t *testing.T) {
	s := NewServer(Normalize(SiteConfig{URL: "https://example.com"}))

	rec := serve(t, s, "/site/links.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestServerRoutesUnderPathPrefix(t *testing.T) {
	s := NewServer(prefixedSite())

	assert.Equal(t, http.StatusOK, serve(t, s, "/blog/site.json").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, s, "/site.json").Code)
	assert.Equal(t, http.StatusOK, serve(t, s, "/healthz").Code)
}

func TestServerHealth(t *testing.T) {
	rec := serve(t, NewServer(Site()), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestServerSecureHeaders(t *testing.T) {
	rec := serve(t, NewServer(Site()), "/site.json")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestServerCopiesConfig(t *testing.T) {
	cfg := Site()
	s := NewServer(cfg)
	cfg.UserLinks[0].Label = "changed"

	assert.Equal(t, "GitHub", s.Config().UserLinks[0].Label)

	got := s.Config()
	got.UserLinks[0].Label = "changed"
	rec := serve(t, s, "/site/links.json")
	assert.Contains(t, rec.Body.String(), `"label":"GitHub"`)
}

func TestServerStartAndShutdown(t *testing.T) {
	s := NewServer(Site())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start("127.0.0.1:0")
	}()

	require.Eventually(t, func() bool {
		return s.Echo.ListenerAddr() != nil
	}, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + s.Echo.ListenerAddr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err, "Start should return nil after Shutdown")
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestServerStartBadAddress(t *testing.T) {
	err := NewServer(Site()).Start("127.0.0.1:not-a-port")
	assert.Error(t, err)
}
