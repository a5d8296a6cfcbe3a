package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/corebank/accounts-api/infra/repository/memory"
	"github.com/corebank/accounts-api/pkg/config"
	accountsvc "github.com/corebank/accounts-api/pkg/service/account"
	"github.com/corebank/accounts-api/webapi"
	accountweb "github.com/corebank/accounts-api/webapi/account"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.New(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	repo := memory.NewSeededAccountRepository()
	svc := accountsvc.NewService(repo, logger)

	app := webapi.NewApp(cfg)
	accountweb.Routes(app, svc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"use_tls", cfg.Server.UseTLS,
	)

	if cfg.Server.UseTLS {
		return app.ListenTLS(addr, cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
	}
	return app.Listen(addr)
}
