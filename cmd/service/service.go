// @title        Eventdeck API
// @version      1.0
// @description  Event management backend: events, RSVPs, tickets and accounts
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"eventdeck/internal/cache"
	"eventdeck/internal/config"
	"eventdeck/internal/database"
	"eventdeck/internal/mail"
	"eventdeck/internal/router"
	"eventdeck/internal/storage"
	"eventdeck/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "eventdeck/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newS3Uploader   = func(ctx context.Context, bucket, region, endpoint string) (storage.Uploader, error) {
		return storage.NewS3Uploader(ctx, bucket, region, endpoint)
	}
	newWorkerPool = worker.NewPool
	startServer   = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc      = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %v", err)
	}

	uploader, err := newS3Uploader(context.Background(), cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint)
	if err != nil {
		return fmt.Errorf("init object storage: %v", err)
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Setup(e, db, rdb, uploader, mailer, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
