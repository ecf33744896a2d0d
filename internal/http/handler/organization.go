package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/dto"
	"travelsuite.app/api/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	org, err := h.orgService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "Organization fetched successfully", dto.ToOrganizationResponse(org)))
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), userID, service.OrganizationInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Website:     req.Website,
		Phone:       req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(http.StatusCreated, "Organization created successfully", dto.ToOrganizationResponse(org)))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), userID, service.OrganizationInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Website:     req.Website,
		Phone:       req.Phone,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "Organization updated successfully", dto.ToOrganizationResponse(org)))
}
