package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	t.Parallel()

	m := New()
	m.IncrementPageView("listing")
	m.IncrementPageView("listing")
	m.IncrementNotFound()
	m.RecordReload(11, nil)
	m.RecordReload(0, errors.New("broken"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.PageViews.WithLabelValues("listing")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.NotFound))
	require.Equal(t, 1.0, testutil.ToFloat64(m.CatalogReloads.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.CatalogReloads.WithLabelValues("error")))
	require.Equal(t, 11.0, testutil.ToFloat64(m.CatalogSize))
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	m := New()
	m.IncrementPageView("detail")

	resp := httptest.NewRecorder()
	m.Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `folio_page_views_total{page="detail"} 1`)
}
