package summary

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /summaries
func (h *Handler) Save(c *gin.Context) {
	sum, err := h.service.SaveToday(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save summary"})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /summaries?days=7
func (h *Handler) Recent(c *gin.Context) {
	days := DefaultRecentDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a number"})
			return
		}
		days = n
	}

	summaries, err := h.service.Recent(c.Request.Context(), c.GetString("userID"), days)
	if errors.Is(err, ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load summaries"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
