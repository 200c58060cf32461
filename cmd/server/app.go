package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	routes "github.com/sashreekm/devfolio/internal/api"
	"github.com/sashreekm/devfolio/internal/auth"
	"github.com/sashreekm/devfolio/internal/config"
	"github.com/sashreekm/devfolio/internal/db"
	"github.com/sashreekm/devfolio/internal/models"
	"github.com/sashreekm/devfolio/pkg/logger"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"github.com/sashreekm/devfolio/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.NewLogger(ctx)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Close()

	redisClient, err := storage.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Error(ctx).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to initialize Redis")
		panic(err)
	}
	defer redisClient.Close(log)

	gormDB, err := db.NewDB(ctx, cfg.DatabaseDSN, models.All(), db.WithLogger(log))
	if err != nil {
		log.Error(ctx).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to initialize PostgreSQL database")
		panic("DB init failed")
	}
	defer db.CloseDB(log)

	auth.SetSecret(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		AppName: "devfolio",
	})
	routes.NewRoutes(ctx, app, cfg, gormDB, log, redisClient)

	go func() {
		<-ctx.Done()
		log.Info(context.Background()).Logs("Shutting down server")
		app.Shutdown()
	}()

	log.Info(ctx).WithMeta(utils.Map{"addr": cfg.ServerAddr}).Logs("Server starting")
	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Error(ctx).WithMeta(utils.Map{"error": err.Error()}).Logs("Server stopped")
	}
}
