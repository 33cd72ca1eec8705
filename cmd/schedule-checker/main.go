package main

import (
	"context"
	"fmt"
	"os"
	"schedule-checker-backend/cmd/schedule-checker/apis"
	"schedule-checker-backend/cmd/schedule-checker/model"
	"schedule-checker-backend/cmd/schedule-checker/repository"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EnvCfg struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	var cfg EnvCfg
	err = envconfig.Process("SCHEDULE_CHECKER", &cfg)
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := gorm.Open(
		postgres.Open(
			fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBName,
			),
		),
	)

	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	err = db.AutoMigrate(
		&model.ScheduleEvent{},
		&model.Location{},
		&model.TimeFormat{},
	)
	if err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}

	formatRepo := repository.NewTimeFormatRepo(db)

	err = formatRepo.SeedSystemFormats(context.Background(), model.SystemTimeFormats())
	if err != nil {
		logger.Fatal("seed system time formats", zap.Error(err))
	}

	e := echo.New()

	rootg := e.Group("")
	v1g := rootg.Group("/api/v1")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	eventRepo := repository.NewEventRepo(db)
	locationRepo := repository.NewLocationRepo(db)

	apis.
		NewEventAPI(eventRepo, locationRepo, formatRepo, logger).
		Setup(v1g)

	apis.
		NewLocationAPI(locationRepo).
		Setup(v1g)

	apis.
		NewTimeFormatAPI(formatRepo, logger).
		Setup(v1g)

	apis.
		NewReconcileAPI(eventRepo).
		Setup(v1g)

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))

	err = e.Start(cfg.ListenAddr)
	if err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
