package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "portfolio-api/internal/app"
	"portfolio-api/internal/bootstrap"
	"portfolio-api/internal/cache"
	"portfolio-api/internal/platform/rabbitmq"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/transport/http/handler"
	"portfolio-api/internal/transport/http/middleware"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
// Unconfigured collaborators stay nil interfaces so the services answer 503
// (or skip the optional behavior) instead of panicking.
func NewRouter(app *bootstrap.App) *gin.Engine {
	cfg := app.Config
	gin.SetMode(cfg.App.GinMode)

	router := gin.New()
	router.Use(
		middleware.RequestID(app.Log),
		middleware.RequestLogger(),
		gin.Recovery(),
	)
	// A blank allowlist would make cors.New panic; without origins there is
	// nothing to allow, so the middleware is simply not installed.
	if origins := cfg.ClientOrigins(); len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	var users appsvc.UserStore
	if app.MySQL != nil {
		users = repository.NewUserRepository(app.MySQL)
	}
	var profiles appsvc.ProfileCache
	if app.Redis != nil {
		profiles = cache.NewProfileCache(app.Redis, cfg.ProfileTTL())
	}
	var welcome appsvc.WelcomeEnqueuer
	if app.MQConn != nil {
		welcome = rabbitmq.NewEmailPublisher(app.MQConn, cfg.RabbitMQ.WelcomeQueue)
	}
	var mailer appsvc.Mailer
	if app.Mail != nil {
		mailer = app.Mail
	}

	authService := appsvc.NewAuthService(users, profiles, welcome, cfg.Auth.JWTSecret)
	contactService := appsvc.NewContactService(mailer)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(app)
	demoHandler := handler.NewDemoHandler()

	router.GET("/", demoHandler.Root)
	router.GET("/api", demoHandler.Fruits)
	router.GET("/health", healthHandler.Live)
	router.GET("/healthz", healthHandler.Check)
	router.Static("/pdf", cfg.App.PDFDir)

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.GET("/getUser", middleware.AuthJWT(cfg.Auth.JWTSecret), authHandler.GetUser)

	router.POST("/api/contact/send", contactHandler.Send)

	return router
}
