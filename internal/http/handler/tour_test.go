package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"travelsuite.app/api/internal/http/handler"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/service"
)

var _ = Describe("TourHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTourService
		stamp  time.Time
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockTourService{}
		stamp = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
		h := handler.NewTourHandler(svc)
		authed := router.Group("/v1/tour", asUser(1))
		authed.POST("/create", h.Create)
		authed.GET("/get/:tourId", h.Get)
		authed.PUT("/update/:tourId", h.Update)
		authed.DELETE("/delete/:tourId", h.Delete)
		authed.GET("/all", h.List)
	})

	Describe("Create", func() {
		It("passes tourData through untouched and returns 201", func() {
			svc.createFn = func(_ context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error) {
				Expect(userID).To(Equal(int64(1)))
				Expect(tourID).To(Equal("T1"))
				Expect(string(data)).To(MatchJSON(`{"stops":["Louvre","Orsay"]}`))
				return &model.Tour{
					ID:             900,
					TourID:         tourID,
					OrganizationID: 100,
					TourData:       data,
					Status:         model.TourStatusActive,
					CreatedAt:      stamp,
					UpdatedAt:      stamp,
				}, nil
			}

			w := doJSON(router, http.MethodPost, "/v1/tour/create", `{"tourId":"T1","tourData":{"stops":["Louvre","Orsay"]}}`)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(string(decodeEnvelope(w).Data)).To(MatchJSON(`{
				"id": "900",
				"tourId": "T1",
				"organizationId": "100",
				"tourData": {"stops": ["Louvre", "Orsay"]},
				"status": "Active",
				"createdAt": "2026-02-03T04:05:06Z",
				"updatedAt": "2026-02-03T04:05:06Z"
			}`))
		})

		It("returns 400 without tourData", func() {
			w := doJSON(router, http.MethodPost, "/v1/tour/create", `{"tourId":"T1"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when the service rejects the payload", func() {
			svc.createFn = func(context.Context, int64, string, json.RawMessage) (*model.Tour, error) {
				return nil, &service.Error{Kind: service.KindInvalidInput, Message: "tourData must be a JSON object"}
			}

			w := doJSON(router, http.MethodPost, "/v1/tour/create", `{"tourId":"T1","tourData":[1]}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeEnvelope(w).Message).To(Equal("tourData must be a JSON object"))
		})

		It("returns 409 for a duplicate tourId", func() {
			svc.createFn = func(context.Context, int64, string, json.RawMessage) (*model.Tour, error) {
				return nil, service.ErrTourExists
			}

			w := doJSON(router, http.MethodPost, "/v1/tour/create", `{"tourId":"T1","tourData":{}}`)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	It("reads the tourId from the path", func() {
		svc.getFn = func(_ context.Context, _ int64, tourID string) (*model.Tour, error) {
			Expect(tourID).To(Equal("paris-2026"))
			return &model.Tour{TourID: tourID, TourData: json.RawMessage(`{}`)}, nil
		}

		w := doJSON(router, http.MethodGet, "/v1/tour/get/paris-2026", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("returns 404 for a missing or foreign tour", func() {
		svc.getFn = func(context.Context, int64, string) (*model.Tour, error) {
			return nil, service.ErrTourNotFound
		}

		w := doJSON(router, http.MethodGet, "/v1/tour/get/T9", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(decodeEnvelope(w).Message).To(Equal("Tour not found"))
	})

	It("updates tour data", func() {
		svc.updateFn = func(_ context.Context, _ int64, tourID string, data json.RawMessage) (*model.Tour, error) {
			return &model.Tour{TourID: tourID, TourData: data}, nil
		}

		w := doJSON(router, http.MethodPut, "/v1/tour/update/T1", `{"tourData":{"name":"Rome"}}`)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("acknowledges a delete", func() {
		deleted := ""
		svc.deleteFn = func(_ context.Context, _ int64, tourID string) error {
			deleted = tourID
			return nil
		}

		w := doJSON(router, http.MethodDelete, "/v1/tour/delete/T1", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(deleted).To(Equal("T1"))
	})

	Describe("List", func() {
		It("returns 404 Organization not found for a user without an organization", func() {
			svc.listFn = func(context.Context, int64) ([]model.Tour, error) {
				return nil, service.ErrOrganizationNotFound
			}

			w := doJSON(router, http.MethodGet, "/v1/tour/all", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeEnvelope(w).Message).To(Equal("Organization not found"))
		})

		It("returns an empty list rather than null", func() {
			svc.listFn = func(context.Context, int64) ([]model.Tour, error) {
				return nil, nil
			}

			w := doJSON(router, http.MethodGet, "/v1/tour/all", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(string(decodeEnvelope(w).Data)).To(Equal("[]"))
		})
	})
})
