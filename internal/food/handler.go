package food

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createFoodRequest struct {
	Name     string `json:"name" binding:"required"`
	Calories *int   `json:"calories" binding:"required"`
	Protein  *int   `json:"protein" binding:"required"`
}

// POST /foods
func (h *Handler) Create(c *gin.Context) {
	var req createFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f, err := h.service.CreateFood(
		c.Request.Context(),
		c.GetString("userID"),
		req.Name,
		*req.Calories,
		*req.Protein,
	)
	if errors.Is(err, ErrInvalidFood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save food"})
		return
	}

	c.JSON(http.StatusCreated, f)
}

// GET /foods
func (h *Handler) List(c *gin.Context) {
	foods, err := h.service.ListFoods(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// DELETE /foods/:id
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.DeleteFood(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete food"})
		return
	}
	c.Status(http.StatusNoContent)
}
