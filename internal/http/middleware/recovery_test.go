package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"travelsuite.app/api/common/metrics"
	"travelsuite.app/api/internal/http/middleware"
)

var _ = Describe("Recovery", func() {
	It("turns a panic into a generic 500 envelope", func() {
		router := gin.New()
		router.Use(middleware.Recovery())
		router.GET("/boom", func(*gin.Context) {
			panic("database exploded")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"status":"failed","code":500,"message":"An unknown error occurred"}`))
		Expect(w.Body.String()).NotTo(ContainSubstring("exploded"))
	})
})

var _ = Describe("Metrics", func() {
	It("labels requests by route template", func() {
		router := gin.New()
		router.Use(middleware.Metrics())
		router.GET("/v1/tour/get/:tourId", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/v1/tour/get/:tourId", "200")
		before := testutil.ToFloat64(counter)

		for _, id := range []string{"a", "b"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tour/get/"+id, nil))
			Expect(w.Code).To(Equal(http.StatusOK))
		}

		Expect(testutil.ToFloat64(counter) - before).To(Equal(2.0))
	})
})
