package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamgo-dev/streamgo/internal/httpapi"
)

// TestHealthEndpointsS5 exercises the health endpoint for GET and HEAD.
func TestHealthEndpointsS5(t *testing.T) {
	mux := http.NewServeMux()
	httpapi.Register(mux, httpapi.DefaultHostConfig(nil, ""))

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		req := httptest.NewRequest(method, httpapi.HealthPath, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/html; charset=UTF-8", rec.Header().Get("Content-Type"))
		if method == http.MethodGet {
			require.Equal(t, "ok", rec.Body.String())
		}
	}
}

// TestHostConfigEndpointS5 exercises the host-config endpoint and its
// default field values.
func TestHostConfigEndpointS5(t *testing.T) {
	mux := http.NewServeMux()
	httpapi.Register(mux, httpapi.DefaultHostConfig(nil, ""))

	req := httptest.NewRequest(http.MethodGet, httpapi.HostConfigPath, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cfg httpapi.HostConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	require.False(t, cfg.UseExternalAuthToken)
	require.False(t, cfg.EnableCustomParentMessages)
	require.False(t, cfg.EnforceDownloadInNewTab)
	require.Equal(t, "", cfg.MetricsURL)
	require.False(t, cfg.BlockErrorDialogs)
	require.Nil(t, cfg.ResourceCrossOriginMode)
}
