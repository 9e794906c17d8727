package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/utakatalp/bowling-league/internal/api"
	"github.com/utakatalp/bowling-league/internal/bot"
	"github.com/utakatalp/bowling-league/internal/config"
	"github.com/utakatalp/bowling-league/internal/league"
	"github.com/utakatalp/bowling-league/internal/scheduler"
	"github.com/utakatalp/bowling-league/internal/service"
	"github.com/utakatalp/bowling-league/internal/store"
)

const usage = `usage: bowling <command> [flags]

commands:
  serve     serve standings over HTTP and post the weekly report
  migrate   create the database schema
  schedule  generate the round-robin matchups for the stored teams
  seed      load a demo league into the database`

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return errors.New("missing command")
	}

	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}
	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "serve":
		return serve(ctx, cfg, rest)
	case "migrate":
		return withPostgres(ctx, cfg, func(db *store.Postgres) error {
			return db.Migrate(ctx)
		})
	case "schedule":
		return schedule(ctx, cfg, rest)
	case "seed":
		fs := flag.NewFlagSet("seed", flag.ExitOnError)
		weeks := fs.Int("weeks", 3, "weeks of demo games to record")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return withPostgres(ctx, cfg, func(db *store.Postgres) error {
			return store.SeedDemo(ctx, db, *weeks)
		})
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func withPostgres(ctx context.Context, cfg *config.Config, fn func(*store.Postgres) error) error {
	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	db, err := store.NewPostgres(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func schedule(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	weeks := fs.Int("weeks", 30, "weeks in the season")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withPostgres(ctx, cfg, func(db *store.Postgres) error {
		d, err := db.Snapshot(ctx)
		if err != nil {
			return err
		}
		matchups := league.GenerateSchedule(d.Teams, *weeks)
		if len(matchups) == 0 {
			return fmt.Errorf("need at least two teams to schedule, have %d", len(d.Teams))
		}
		if err := db.SaveSchedule(ctx, matchups); err != nil {
			if errors.Is(err, store.ErrScheduleExists) {
				return fmt.Errorf("%w; delete the stored matchups to reschedule", err)
			}
			return err
		}
		slog.Info("Saved schedule", "weeks", *weeks, "matchups", len(matchups))
		return nil
	})
}

func serve(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	memory := fs.Bool("memory", false, "serve a seeded in-memory demo league instead of Postgres")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	var games service.GameStore
	if *memory {
		m := store.NewMemory()
		if err := store.SeedDemo(ctx, m, 3); err != nil {
			return err
		}
		games = m
	} else {
		if cfg.Database.URL == "" {
			return errors.New("DATABASE_URL is required without -memory")
		}
		db, err := store.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		games = db
	}
	standings := service.NewStandingsService(games)

	send := bot.LogSender
	if cfg.TelegramBot.Token != "" {
		tg, err := bot.NewTelegram(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID)
		if err != nil {
			return err
		}
		send = tg.SendMessage
	}

	location, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", cfg.Report.Timezone, "error", err)
		location = time.UTC
	}
	sched, err := scheduler.NewScheduler(standings, send, location)
	if err != nil {
		return err
	}
	day, _ := cfg.Report.Day()
	if err := sched.Start(day, cfg.Report.Hour); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(standings),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("Serving standings", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
