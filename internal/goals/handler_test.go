package goals

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
)

func setupGoalsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	days := stubDays{day: &dailylog.Day{Date: "2024-03-01", TotalCalories: 500, TotalProtein: 25}}
	h := NewHandler(NewService(NewInMemoryRepository(), days))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Next()
	})
	r.GET("/goals", h.Get)
	r.PUT("/goals", h.Update)
	return r
}

func TestHandler_UpdateThenGet(t *testing.T) {
	r := setupGoalsRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/goals", bytes.NewBufferString(`{"calories":1000,"protein":50}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/goals", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var p Progress
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if p.Goals.Calories != 1000 || p.Calories.Percent != 0.5 || p.Protein.Percent != 0.5 {
		t.Fatalf("unexpected progress: %+v", p)
	}
}

func TestHandler_UpdateRejectsBadInput(t *testing.T) {
	r := setupGoalsRouter()

	for _, body := range []string{`{"calories":1000}`, `{"calories":-5,"protein":10}`} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/goals", bytes.NewBufferString(body)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
	}
}
