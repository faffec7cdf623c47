package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	shopRepo "barberbook/database/repository/shop"
	"barberbook/models"
	"barberbook/utils"
)

// ShopHandler exposes barbershop CRUD.
type ShopHandler struct {
	Repo shopRepo.ShopRepository
}

func NewShopHandler(repo shopRepo.ShopRepository) *ShopHandler {
	return &ShopHandler{Repo: repo}
}

func (h *ShopHandler) CreateShopHandler(c *gin.Context) {
	var shop models.Shop
	if err := c.ShouldBindJSON(&shop); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if shop.Name == "" || shop.Location == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and location are required")
		return
	}

	shop.ID = uuid.New().String()
	shop.IsActive = true
	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	if err := h.Repo.Create(c.Request.Context(), &shop); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shop)
}

func (h *ShopHandler) GetShopHandler(c *gin.Context) {
	shop, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) ListShopsHandler(c *gin.Context) {
	shops, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops, "count": len(shops)})
}

func (h *ShopHandler) UpdateShopHandler(c *gin.Context) {
	existing, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input models.Shop
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Location != "" {
		existing.Location = input.Location
	}
	existing.Description = input.Description
	existing.Phone = input.Phone
	existing.Images = input.Images
	existing.IsActive = input.IsActive
	existing.UpdatedAt = time.Now()

	if err := h.Repo.Update(c.Request.Context(), existing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *ShopHandler) DeleteShopHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shop deleted"})
}
