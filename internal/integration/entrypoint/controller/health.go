package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	transactionCounter func() int
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	Store        string `json:"store"`
	Transactions int    `json:"transactions"`
	Timestamp    string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(transactionCounter func() int) *HealthController {
	return &HealthController{
		transactionCounter: transactionCounter,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Store:     "unavailable",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.transactionCounter != nil {
		response.Store = "in-memory"
		response.Transactions = h.transactionCounter()
	}

	c.JSON(http.StatusOK, response)
}
