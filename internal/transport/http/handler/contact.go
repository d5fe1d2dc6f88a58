package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/app"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/mail"
	"portfolio-api/internal/transport/http/response"
)

type ContactHandler struct {
	contactService *app.ContactService
}

type ContactRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	ReplyTo string `json:"replyTo"`
}

func NewContactHandler(contactService *app.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}

	err := h.contactService.Send(c.Request.Context(), mail.Message{
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
		ReplyTo: req.ReplyTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Missing fields")
		case errors.Is(err, app.ErrMailerNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			logger.FromContext(c.Request.Context()).Error().Err(err).Msg("contact send failed")
			response.Error(c, http.StatusInternalServerError, "send failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
