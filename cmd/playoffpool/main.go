package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/playoffpool/internal/api/fantasy"
	"github.com/omarshaarawi/playoffpool/internal/api/sleeper"
	"github.com/omarshaarawi/playoffpool/internal/bot"
	"github.com/omarshaarawi/playoffpool/internal/config"
	"github.com/omarshaarawi/playoffpool/internal/httpapi"
	"github.com/omarshaarawi/playoffpool/internal/ingest"
	"github.com/omarshaarawi/playoffpool/internal/metrics"
	"github.com/omarshaarawi/playoffpool/internal/repository/memory"
	"github.com/omarshaarawi/playoffpool/internal/scheduler"
	"github.com/omarshaarawi/playoffpool/internal/scoring"
	"github.com/omarshaarawi/playoffpool/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	rounds, rules, err := config.LoadRounds(cfg.Pool.RoundsFile)
	if err != nil {
		return err
	}
	engine, err := scoring.NewEngine(rounds)
	if err != nil {
		return err
	}

	sleeperClient := sleeper.NewClient(cfg.SleeperAPI)
	sleeperAPI := sleeper.NewAPI(sleeperClient)
	fantasyAPI := fantasy.NewAPI(sleeperAPI)

	rosters := ingest.FileSource{RosterFile: cfg.Pool.RosterFile, AliasFile: cfg.Pool.AliasFile}
	repo := memory.NewRepository()
	m := metrics.New()
	poolService := service.NewPoolService(fantasyAPI, rosters, engine, rules, repo, m, slog.Default())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if state, err := fantasyAPI.GetState(ctx); err != nil {
		slog.Warn("Could not fetch NFL state", "error", err)
	} else {
		slog.Info("NFL state", "season", state.Season, "season_type", state.SeasonType, "week", state.Week)
	}

	var sendMessage func(string) error
	if cfg.TelegramBot.Enabled && cfg.TelegramBot.Token != "" {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, poolService)
		if err != nil {
			return err
		}
		if cfg.TelegramBot.ChatID != 0 {
			sendMessage = telegramBot.SendMessage
		}
		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	} else {
		slog.Info("Telegram bot disabled")
	}

	sched, err := scheduler.NewScheduler(poolService, sendMessage, cfg.Pool.RefreshInterval, cfg.Pool.Timezone)
	if err != nil {
		return err
	}
	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.NewHandlers(poolService, m.Handler()).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
	}

	return nil
}
