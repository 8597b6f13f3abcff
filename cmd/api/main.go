package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/attesto/attesto/internal/adjustment"
	adjStore "github.com/attesto/attesto/internal/adjustment/store"
	"github.com/attesto/attesto/internal/audit"
	auditStore "github.com/attesto/attesto/internal/audit/store"
	"github.com/attesto/attesto/internal/config"
	"github.com/attesto/attesto/internal/correction"
	corrStore "github.com/attesto/attesto/internal/correction/store"
	"github.com/attesto/attesto/internal/database"
	"github.com/attesto/attesto/internal/group"
	groupStore "github.com/attesto/attesto/internal/group/store"
	attestoHttp "github.com/attesto/attesto/internal/http"
	adjHandler "github.com/attesto/attesto/internal/http/adjustment"
	corrHandler "github.com/attesto/attesto/internal/http/correction"
	groupHandler "github.com/attesto/attesto/internal/http/group"
	quoteHandler "github.com/attesto/attesto/internal/http/quote"
	ratesheetHandler "github.com/attesto/attesto/internal/http/ratesheet"
	"github.com/attesto/attesto/internal/quote"
	quoteStore "github.com/attesto/attesto/internal/quote/store"
	"github.com/attesto/attesto/internal/rate"
	"github.com/attesto/attesto/internal/rate/sheet"
	rateStore "github.com/attesto/attesto/internal/rate/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	activity := audit.NewLog(auditStore.New(db))

	var (
		rateService       = rate.NewService(rateStore.New(db), sheet.NewParser(), activity)
		quoteService      = quote.NewService(quoteStore.New(db), rateService, activity)
		groupService      = group.NewService(groupStore.New(db), rateService, quoteService, activity)
		adjService        = adjustment.NewService(adjStore.New(db), quoteService, activity)
		correctionService = correction.NewService(corrStore.New(db), rateService, quoteService, activity)
	)

	var (
		quotesH      = quoteHandler.NewHandler(quoteService, groupService, adjService, correctionService)
		groupsH      = groupHandler.NewHandler(groupService)
		correctionsH = corrHandler.NewHandler(correctionService)
		adjustmentsH = adjHandler.NewHandler(adjService)
		ratesH       = ratesheetHandler.NewHandler(rateService)
	)

	router := attestoHttp.New(cfg.Server.AllowedOrigins, cfg.Auth.JWTSecret, quotesH, groupsH, correctionsH, adjustmentsH, ratesH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
