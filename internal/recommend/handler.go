package recommend

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

// GET|POST /recommendations
func (h *Handler) Get(c *gin.Context) {
	rec, err := h.service.Recommend(c.Request.Context(), c.GetString("userID"))

	switch {
	case errors.Is(err, ErrInsufficientFoods):
		c.JSON(http.StatusOK, gin.H{
			"insufficient_foods": true,
			"message":            "Add more quick-add foods you haven't eaten today to get recommendations.",
		})
		return
	case errors.Is(err, ErrBudgetTooLarge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, NewResponse(rec))
}
