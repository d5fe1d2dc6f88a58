// Package bootstrap aggregates configuration and every external client with
// one explicit lifecycle: connect once at startup, share across requests,
// release on shutdown. A missing or unreachable dependency never crashes the
// process; its client stays nil and the routes depending on it answer 503.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"portfolio-api/internal/config"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/mail"
	"portfolio-api/internal/model"
	mysqlClient "portfolio-api/internal/platform/mysql"
	rabbitmqClient "portfolio-api/internal/platform/rabbitmq"
	redisClient "portfolio-api/internal/platform/redis"
	"portfolio-api/internal/worker"
)

type App struct {
	Config *config.Config
	Log    *logger.Logger

	MySQL       *gorm.DB
	Redis       *redis.Client
	MQConn      *amqp.Connection
	Mail        *mail.Client
	EmailWorker *worker.EmailWorker

	StartedAt time.Time
}

func New(ctx context.Context, log *logger.Logger) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	app := &App{
		Config:    cfg,
		Log:       log,
		StartedAt: time.Now(),
	}

	app.connectMySQL(ctx)
	app.connectRedis(ctx)
	app.connectRabbitMQ(ctx)
	app.buildMailClient()
	app.startEmailWorker(ctx)

	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("jwt secret not configured, login and protected routes degraded")
	}

	return app, nil
}

func (a *App) connectMySQL(ctx context.Context) {
	if a.Config.MySQL.DSN == "" {
		a.Log.Warn().Msg("mysql dsn not configured, user routes degraded")
		return
	}

	db, err := mysqlClient.New(ctx, a.Config.MySQL.DSN)
	if err != nil {
		a.Log.Warn().Err(err).Msg("mysql unavailable, user routes degraded")
		return
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		a.Log.Warn().Err(err).Msg("mysql migration failed, user routes degraded")
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return
	}

	a.MySQL = db
	a.Log.Info().Msg("mysql connected")
}

func (a *App) connectRedis(ctx context.Context) {
	if a.Config.Redis.Addr == "" {
		a.Log.Info().Msg("redis not configured, profile caching disabled")
		return
	}

	client, err := redisClient.New(ctx, a.Config.Redis.Addr, a.Config.Redis.Password, a.Config.Redis.DB)
	if err != nil {
		a.Log.Warn().Err(err).Msg("redis unavailable, profile caching disabled")
		return
	}

	a.Redis = client
	a.Log.Info().Msg("redis connected")
}

func (a *App) connectRabbitMQ(ctx context.Context) {
	if a.Config.RabbitMQ.URL == "" {
		a.Log.Info().Msg("rabbitmq not configured, welcome mail disabled")
		return
	}

	conn, err := rabbitmqClient.New(ctx, a.Config.RabbitMQ.URL)
	if err != nil {
		a.Log.Warn().Err(err).Msg("rabbitmq unavailable, welcome mail disabled")
		return
	}

	a.MQConn = conn
	a.Log.Info().Msg("rabbitmq connected")
}

func (a *App) buildMailClient() {
	if a.Config.Mail.APIKey == "" || a.Config.Mail.Sender == "" {
		a.Log.Warn().Msg("mail provider not configured, contact relay degraded")
		return
	}

	a.Mail = mail.New(mail.Config{
		BaseURL: a.Config.Mail.BaseURL,
		APIKey:  a.Config.Mail.APIKey,
		Sender:  a.Config.Mail.Sender,
		Timeout: a.Config.MailTimeout(),
	})
	a.Log.Info().Msg("mail provider configured")
}

func (a *App) startEmailWorker(ctx context.Context) {
	if a.MQConn == nil || a.Mail == nil {
		return
	}

	w := worker.NewEmailWorker(a.MQConn, a.Mail, a.Config.RabbitMQ.WelcomeQueue, a.Log)
	if err := w.Start(ctx); err != nil {
		a.Log.Warn().Err(err).Msg("start email worker failed, welcome mail disabled")
		return
	}

	a.EmailWorker = w
	a.Log.Info().Str("queue", a.Config.RabbitMQ.WelcomeQueue).Msg("email worker started")
}

func (a *App) Close() error {
	var closeErr error
	if a.EmailWorker != nil {
		a.EmailWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
