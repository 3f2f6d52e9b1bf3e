package goals

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

// GET /goals
func (h *Handler) Get(c *gin.Context) {
	progress, err := h.service.TodayProgress(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load goals"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// PUT /goals
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Calories *int `json:"calories" binding:"required"`
		Protein  *int `json:"protein" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := h.service.UpdateGoals(c.Request.Context(), c.GetString("userID"), *req.Calories, *req.Protein)
	if errors.Is(err, ErrInvalidGoals) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save goals"})
		return
	}
	c.JSON(http.StatusOK, g)
}
