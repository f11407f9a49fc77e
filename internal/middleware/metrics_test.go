package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"resource-converter/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records HTTP request metrics", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/api/labels/fetch", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"content": []string{}})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/labels/fetch", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodPost, "/api/labels/fetch", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/labels/fetch", "200")))
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight), "In-flight should return to initial after request")
	})

	t.Run("observes request duration per route", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.PUT("/api/labels/fetch/by-ids", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		initialSeries := testutil.CollectAndCount(metrics.HTTPRequestDuration)

		req := httptest.NewRequest(http.MethodPut, "/api/labels/fetch/by-ids", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, initialSeries+1, testutil.CollectAndCount(metrics.HTTPRequestDuration))
	})

	t.Run("records error status codes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/api/error-messages/fetch", func(c *gin.Context) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "db down"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/error-messages/fetch", "502"))

		req := httptest.NewRequest(http.MethodPost, "/api/error-messages/fetch", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/error-messages/fetch", "502")))
	})

	t.Run("labels unmatched routes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	})

	t.Run("skips metrics endpoint", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/metrics", func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200"))

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
	})
}
