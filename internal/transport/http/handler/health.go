package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/bootstrap"
	"portfolio-api/internal/transport/http/response"
)

type HealthHandler struct {
	app *bootstrap.App
}

type dependencyStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const (
	statusOK           = "ok"
	statusDown         = "down"
	statusUnconfigured = "unconfigured"
)

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// Live is the shallow liveness probe: the process is up and serving.
func (h *HealthHandler) Live(c *gin.Context) {
	response.Message(c, http.StatusOK, "ok")
}

// Check pings every configured dependency. Unconfigured dependencies are
// reported but never fail the check; the process runs degraded by design.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := gin.H{
		"mysql":    h.checkMySQL(ctx),
		"redis":    h.checkRedis(ctx),
		"rabbitmq": h.checkRabbitMQ(),
		"mail":     h.checkMail(),
	}

	statusCode := http.StatusOK
	for _, dep := range deps {
		if dep.(dependencyStatus).Status == statusDown {
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, gin.H{
		"app":          h.app.Config.App.Name,
		"env":          h.app.Config.App.Env,
		"uptime_sec":   int(time.Since(h.app.StartedAt).Seconds()),
		"dependencies": deps,
	})
}

func (h *HealthHandler) checkMySQL(ctx context.Context) dependencyStatus {
	if h.app.MySQL == nil {
		return dependencyStatus{Status: statusUnconfigured}
	}
	sqlDB, err := h.app.MySQL.DB()
	if err != nil {
		return dependencyStatus{Status: statusDown, Message: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return dependencyStatus{Status: statusDown, Message: err.Error()}
	}
	return dependencyStatus{Status: statusOK}
}

func (h *HealthHandler) checkRedis(ctx context.Context) dependencyStatus {
	if h.app.Redis == nil {
		return dependencyStatus{Status: statusUnconfigured}
	}
	if err := h.app.Redis.Ping(ctx).Err(); err != nil {
		return dependencyStatus{Status: statusDown, Message: err.Error()}
	}
	return dependencyStatus{Status: statusOK}
}

func (h *HealthHandler) checkRabbitMQ() dependencyStatus {
	if h.app.MQConn == nil {
		return dependencyStatus{Status: statusUnconfigured}
	}
	if h.app.MQConn.IsClosed() {
		return dependencyStatus{Status: statusDown, Message: "connection closed"}
	}
	return dependencyStatus{Status: statusOK}
}

// checkMail only reports configuration; there is no cheap liveness probe
// against the provider and a failed probe would not be actionable anyway.
func (h *HealthHandler) checkMail() dependencyStatus {
	if h.app.Mail == nil {
		return dependencyStatus{Status: statusUnconfigured}
	}
	return dependencyStatus{Status: statusOK}
}
