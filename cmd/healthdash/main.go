package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/healthdash/internal/config"
	"github.com/claude/healthdash/internal/dashboard"
	"github.com/claude/healthdash/internal/mcp"
	"github.com/claude/healthdash/internal/provider"
	"github.com/claude/healthdash/internal/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (empty: env only)")
	envFile := flag.String("env-file", ".env", "optional .env file loaded before config")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	log.Info("healthdash starting", "version", Version)

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	loc, err := cfg.Profile.Location()
	if err != nil {
		log.Error("invalid time zone", "error", err)
		os.Exit(1)
	}

	// Open the record provider
	ctx := context.Background()
	src, closeSrc, err := provider.Open(ctx, cfg.Provider)
	if err != nil {
		log.Error("failed to open provider", "kind", cfg.Provider.Kind, "error", err)
		os.Exit(1)
	}
	defer closeSrc()
	if err := src.Ping(ctx); err != nil {
		// Not fatal: the provider may come up later and queries report 503 until then.
		log.Warn("provider not reachable", "kind", cfg.Provider.Kind, "error", err)
	} else {
		log.Info("provider connected", "kind", cfg.Provider.Kind)
	}

	engine := dashboard.New(src, dashboard.Options{
		Location:            loc,
		Age:                 cfg.Profile.Age,
		StepIntervalMinutes: cfg.Dashboard.StepIntervalMinutes,
	}, log)

	// Create server
	srv := server.New(engine, log)
	srv.Mount("/mcp", mcp.NewHTTPHandler(mcp.New(engine, Version, log)))

	// Start server on tsnet or plain TCP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "tz", loc.String())
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
