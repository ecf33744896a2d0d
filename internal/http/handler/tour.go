package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/dto"
	"travelsuite.app/api/internal/service"
)

type TourHandler struct {
	tourService service.TourService
}

func NewTourHandler(tourService service.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

func (h *TourHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tour, err := h.tourService.Create(c.Request.Context(), userID, req.TourID, req.TourData)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(http.StatusCreated, "Tour created successfully", dto.ToTourResponse(tour)))
}

func (h *TourHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tour, err := h.tourService.Get(c.Request.Context(), userID, c.Param("tourId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "Tour fetched successfully", dto.ToTourResponse(tour)))
}

func (h *TourHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tour, err := h.tourService.Update(c.Request.Context(), userID, c.Param("tourId"), req.TourData)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "Tour updated successfully", dto.ToTourResponse(tour)))
}

func (h *TourHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.tourService.Delete(c.Request.Context(), userID, c.Param("tourId")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "Tour deleted successfully", nil))
}

func (h *TourHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tours, err := h.tourService.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "Tours fetched successfully", dto.ToTourResponses(tours)))
}
