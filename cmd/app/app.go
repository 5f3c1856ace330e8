package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventdesk/eventdesk-api/internal/api"
	"github.com/eventdesk/eventdesk-api/internal/config"
	"github.com/eventdesk/eventdesk-api/internal/db"
	"github.com/eventdesk/eventdesk-api/internal/logger"
	"github.com/eventdesk/eventdesk-api/internal/tracing"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if conf.Tracing.Enabled {
		shutdown, err := tracing.Init(context.Background(), conf.Tracing)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing -> %w", err)
		}
		defer shutdown()
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
