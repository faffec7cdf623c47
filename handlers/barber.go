package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
	"barberbook/utils"
)

// BarberHandler exposes barber roster CRUD.
type BarberHandler struct {
	Repo barberRepo.BarberRepository
}

func NewBarberHandler(repo barberRepo.BarberRepository) *BarberHandler {
	return &BarberHandler{Repo: repo}
}

func (h *BarberHandler) CreateBarberHandler(c *gin.Context) {
	var barber models.Barber
	if err := c.ShouldBindJSON(&barber); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if barber.ShopID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "shop_id is required")
		return
	}

	barber.ID = uuid.New().String()
	if len(barber.WorkingHours.WorkingDays) == 0 && barber.WorkingHours.DefaultStart == "" {
		barber.WorkingHours = models.DefaultWorkingHours()
	}
	barber.Availability = nil
	now := time.Now()
	barber.CreatedAt = now
	barber.UpdatedAt = now

	if err := h.Repo.Create(c.Request.Context(), &barber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) GetBarberHandler(c *gin.Context) {
	barber, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) ListBarbersHandler(c *gin.Context) {
	barbers, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers, "count": len(barbers)})
}

func (h *BarberHandler) GetShopBarbersHandler(c *gin.Context) {
	barbers, err := h.Repo.GetByShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers, "count": len(barbers)})
}

func (h *BarberHandler) UpdateBarberHandler(c *gin.Context) {
	existing, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input models.Barber
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// Profile fields only. Working hours and availability have their own
	// endpoints so a profile edit can never clobber the slot ledger.
	existing.Experience = input.Experience
	existing.Specialization = input.Specialization
	existing.ProfileImage = input.ProfileImage
	existing.UpdatedAt = time.Now()

	if err := h.Repo.Update(c.Request.Context(), existing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *BarberHandler) DeleteBarberHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "barber deleted"})
}
