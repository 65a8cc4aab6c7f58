package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"moneta/internal/api"
	"moneta/internal/auth"
	"moneta/internal/cli"
	"moneta/internal/core"
	applog "moneta/internal/log"
	"moneta/internal/refresh"
	"moneta/internal/report"
	"moneta/internal/state"

	"google.golang.org/api/option"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	logger := cli.SetupLogger()

	var (
		watch = flag.Bool("watch", false, "keep refreshing on the configured interval and reprint the overview")
		mode  = flag.String("mode", "", "view mode for this run (daily, weekly or monthly); overrides the saved preference")
	)
	flag.Parse()

	cfg := cli.LoadAndValidateConfig(logger)
	logger.Info("Starting moneta", applog.FieldOperation, applog.OpStartup)

	prefsStore := cli.InitPrefs(logger, cfg.PrefsDBPath)
	defer prefsStore.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Resolve the acting user: either fixed via config or by signing in.
	userID := cfg.UserID
	if userID == "" {
		var opts []option.ClientOption
		if cfg.IdentityEndpoint != "" {
			opts = append(opts, option.WithEndpoint(cfg.IdentityEndpoint))
		}
		authClient, err := auth.New(ctx, cfg.IdentityAPIKey, opts...)
		if err != nil {
			logger.Error("Failed to initialize auth client", "error", err)
			os.Exit(1)
		}

		session, err := authClient.SignIn(ctx, cfg.AuthEmail, cfg.AuthPassword)
		if err != nil {
			logger.Error("Sign-in failed", "error", err, "email", cfg.AuthEmail)
			os.Exit(1)
		}
		userID = session.UserID
		logger.Info("Signed in", "user_id", userID)
	}

	// Saved preferences fill in whatever the flags and env leave unset.
	viewMode, err := prefsStore.ViewMode(ctx, core.ParseViewMode(cfg.DefaultViewMode))
	if err != nil {
		logger.Error("Failed to read view mode preference", "error", err)
		os.Exit(1)
	}
	if *mode != "" {
		parsed := core.ParseViewMode(*mode)
		if !parsed.Valid() {
			logger.Error("Invalid view mode", "mode", *mode)
			os.Exit(1)
		}
		viewMode = parsed
		if err := prefsStore.SetViewMode(ctx, parsed); err != nil {
			logger.Error("Failed to save view mode preference", "error", err)
			os.Exit(1)
		}
	}

	currency, err := prefsStore.Currency(ctx, cfg.DefaultCurrency)
	if err != nil {
		logger.Error("Failed to read currency preference", "error", err)
		os.Exit(1)
	}
	logger.Info("Preferences loaded",
		applog.FieldViewMode, string(viewMode), applog.FieldCurrency, currency)

	store := state.NewStore()
	store.SetUserID(userID)
	store.SetViewMode(viewMode)
	store.SetCurrency(currency)

	backend := api.New(cfg.APIBaseURL, api.WithTimeout(cfg.APITimeout))
	refresher := refresh.New(backend, store)

	if err := refresher.Refresh(ctx); err != nil {
		logger.Error("Initial refresh failed", "error", err)
		os.Exit(1)
	}

	printSummary := func() {
		summary := report.Summary{
			Mode:         store.ViewMode(),
			Ref:          time.Now(),
			Currency:     store.Currency(),
			UserID:       store.UserID(),
			Transactions: store.Transactions(),
			Accounts:     store.Accounts(),
			Categories:   store.Categories(),
		}
		if err := report.WriteSummary(os.Stdout, summary); err != nil {
			logger.Error("Failed to render overview",
				applog.FieldOperation, applog.OpRender, applog.FieldError, err)
		}
	}

	printSummary()

	if !*watch {
		return
	}

	// Watch mode: keep the snapshot fresh and reprint after every cycle.
	shutdownCtx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	go func() {
		err := refresher.Run(shutdownCtx, cfg.RefreshInterval, printSummary)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Watch loop stopped", applog.FieldError, err)
		}
	}()

	logger.Info("Watching for changes",
		"interval", cfg.RefreshInterval.String(), applog.FieldViewMode, string(viewMode))
	cli.WaitForShutdown(shutdownCtx, done)
	logger.Info("Stopped")
}
