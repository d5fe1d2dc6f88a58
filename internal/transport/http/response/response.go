// Package response holds the tiny JSON envelopes shared by every handler:
// errors are always {"error": "..."}, success bodies are route-specific.
package response

import "github.com/gin-gonic/gin"

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
