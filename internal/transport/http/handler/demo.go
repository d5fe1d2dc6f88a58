package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DemoHandler serves the greeting and the static demo list kept from the
// site's scaffolding days. Both are public and bodyless.
type DemoHandler struct{}

func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

func (h *DemoHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello from the portfolio API")
}

func (h *DemoHandler) Fruits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fruits": []string{"apple", "orange", "banana"},
	})
}
