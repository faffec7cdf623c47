package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
	"barberbook/services/schedule"
	"barberbook/utils"
)

// ServiceHandler exposes CRUD for a shop's bookable services.
type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

func validateService(svc *models.Service) error {
	if svc.ShopID == "" {
		return fmt.Errorf("shop_id is required")
	}
	if svc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if svc.Duration <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	if svc.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := validateService(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc.ID = uuid.New().String()
	svc.IsActive = true
	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := h.Repo.Create(c.Request.Context(), &svc); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"service":     svc,
		"slotsNeeded": schedule.SlotsNeeded(svc.Duration),
	})
}

func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}

func (h *ServiceHandler) GetShopServicesHandler(c *gin.Context) {
	services, err := h.Repo.GetByShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}

func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	existing, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	input.ID = existing.ID
	input.ShopID = existing.ShopID
	if err := validateService(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = time.Now()

	if err := h.Repo.Update(c.Request.Context(), &input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
