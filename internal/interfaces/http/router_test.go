package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/turtacn/h5sign/internal/application/service"
	"github.com/turtacn/h5sign/internal/config"
	"github.com/turtacn/h5sign/internal/domain/profiles"
	domain "github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/infrastructure/cache"
	"github.com/turtacn/h5sign/internal/infrastructure/monitoring"
	"github.com/turtacn/h5sign/internal/interfaces/http/handlers"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

type apiResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   map[string]interface{} `json:"error"`
}

func newTestRouter(t *testing.T) (*Router, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetricsAdapter(monitoring.NewMetrics(reg))
	log := logger.NewNoopLogger()
	engine := domain.NewAlgoEngine(domain.EngineDeps{
		Profiles: profiles.NewTable(),
		Cache:    cache.NewMemoryStore(time.Minute),
		Rand:     utils.NewLockedRand(7),
		Metrics:  metrics,
		Logger:   log,
	})

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: gin.TestMode},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	h := Handlers{
		Algo:    handlers.NewAlgoHandler(service.NewAlgoAppService(engine, nil, "", log), log),
		Command: handlers.NewCommandHandler(service.NewCommandAppService(engine, nil, log), log),
		Health:  handlers.NewHealthHandler(nil, log),
	}
	return NewRouter(cfg, log, h, otel.Tracer("test"), metrics, reg), reg
}

func serve(r *Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func TestRouter_H5stEndToEnd(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := `{"version":"4.7.4","pin":"jd_pin","ua":"Mozilla/5.0 (Linux; Android 10)","appId":"fb5df",` +
		`"body":{"functionId":"queryMaterialAdverts","appid":"item-v3","body":{"skuId":1}}}`
	req, _ := http.NewRequest(http.MethodPost, "/h5st", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("cf-ray", "ray-123")
	w := serve(router, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ray-123", w.Header().Get("X-Request-ID"))

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	h5st, _ := resp.Data["h5st"].(string)
	parts := strings.Split(h5st, ";")
	require.GreaterOrEqual(t, len(parts), 8)
	assert.Equal(t, "fb5df", parts[2])

	values, err := url.ParseQuery(resp.Data["qs"].(string))
	require.NoError(t, err)
	assert.Equal(t, h5st, values.Get("h5st"))
}

func TestRouter_SignAndCommand(t *testing.T) {
	router, _ := newTestRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/sign?functionId=genToken&body=%7B%22to%22%3A%22x%22%7D", nil)
	w := serve(router, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "genToken", resp.Data["functionId"])
	assert.Len(t, resp.Data["sign"], 32)

	req, _ = http.NewRequest(http.MethodGet, "/jComExchange?command="+url.QueryEscape("复制这段话 ￥AbCdEf123！打开京东"), nil)
	w = serve(router, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var link struct {
		Data string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))
	assert.True(t, strings.HasPrefix(link.Data, "https://api.m.jd.com/client.action?client=android"))
	assert.Contains(t, link.Data, "functionId=jComExchange")
}

func TestRouter_VersionsHealthAndMetrics(t *testing.T) {
	router, reg := newTestRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/versions", nil)
	w := serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "5.0.8", resp.Data["default"])

	req, _ = http.NewRequest(http.MethodGet, "/live", nil)
	assert.Equal(t, http.StatusOK, serve(router, req).Code)

	req, _ = http.NewRequest(http.MethodGet, "/nowhere", nil)
	w = serve(router, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"not_found"`)

	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	w = serve(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `h5sign_http_requests_total{method="GET",path="/versions",status="200"} 1`)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRouter_StopWithoutStart(t *testing.T) {
	router, _ := newTestRouter(t)
	assert.NoError(t, router.Stop(context.Background()))
}
