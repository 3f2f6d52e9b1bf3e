package dailylog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/AndyIsBuilding/calorie-counter/internal/food"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type logFoodRequest struct {
	Name     string   `json:"name" binding:"required"`
	Calories *int     `json:"calories" binding:"required"`
	Protein  *int     `json:"protein" binding:"required"`
	Servings *float64 `json:"servings"`
}

// GET /log/today
func (h *Handler) Today(c *gin.Context) {
	day, err := h.service.TodayLog(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load daily log"})
		return
	}
	c.JSON(http.StatusOK, day)
}

// POST /log
func (h *Handler) LogFood(c *gin.Context) {
	var req logFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	servings := 1.0
	if req.Servings != nil {
		servings = *req.Servings
	}

	entry, err := h.service.LogFood(
		c.Request.Context(),
		c.GetString("userID"),
		req.Name,
		*req.Calories,
		*req.Protein,
		servings,
	)
	if errors.Is(err, ErrInvalidEntry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log food"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// POST /log/quick/:foodID
func (h *Handler) LogQuickFood(c *gin.Context) {
	entry, err := h.service.LogQuickFood(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("foodID"),
	)
	if errors.Is(err, food.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log food"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// DELETE /log/:id
func (h *Handler) Remove(c *gin.Context) {
	err := h.service.RemoveEntry(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove entry"})
		return
	}
	c.Status(http.StatusNoContent)
}
