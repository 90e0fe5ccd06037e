// cmd/web/main.go
//
// Process entry point.
//
// Boot sequence
// -------------
//  1. Bootstrap console logger so early failures are visible.
//  2. Load configuration (dotenv → conf/global.yaml → VELTA_ env).
//  3. Install the file logger under <root>/logs.
//  4. Resolve vault: secret references (database password, CAPTCHA).
//  5. Open the database pool and the optional GeoLite2 reader.
//  6. Assemble the router and serve until SIGINT/SIGTERM, then drain.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/veltadigital/velta/internal/config"
	"github.com/veltadigital/velta/internal/database"
	"github.com/veltadigital/velta/internal/logger"
	"github.com/veltadigital/velta/internal/requestinfo"
	"github.com/veltadigital/velta/internal/secrets"
	"github.com/veltadigital/velta/internal/server"
	"github.com/veltadigital/velta/internal/view"
	"github.com/veltadigital/velta/internal/web"
)

// shutdownGrace bounds connection draining on SIGTERM.
const shutdownGrace = 15 * time.Second

func main() {
	if err := run(); err != nil {
		zap.S().Errorw("fatal", "err", err)
		fmt.Fprintln(os.Stderr, "velta:", err)
		os.Exit(1)
	}
}

func run() error {
	// Dotenv from the working directory; the config loader reads
	// conf/.env separately once the root is discovered.
	_ = godotenv.Load()

	// Bootstrap console logger until the file logger is installed.
	if boot, err := zap.NewDevelopment(); err == nil {
		zap.ReplaceGlobals(boot)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.Paths.Root, isTTY())
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	// Vault client only when the config actually carries references.
	var vc *secrets.Client
	if strings.HasPrefix(cfg.Database.Password, secrets.Prefix) ||
		strings.HasPrefix(cfg.Captcha.Secret, secrets.Prefix) {
		if vc, err = secrets.New(ctx); err != nil {
			return fmt.Errorf("vault: %w", err)
		}
	}
	dbPass, err := vc.Resolve(ctx, cfg.Database.Password)
	if err != nil {
		return fmt.Errorf("resolve db password: %w", err)
	}
	if cfg.Captcha.Secret, err = vc.Resolve(ctx, cfg.Captcha.Secret); err != nil {
		return fmt.Errorf("resolve captcha secret: %w", err)
	}

	db, err := database.Open(fmt.Sprintf(cfg.Database.DSN, dbPass))
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	if err := requestinfo.InitGeo(cfg.Geo.DBPath); err != nil {
		// Geo enrichment is optional; log and continue without it.
		log.Warnw("geoip unavailable", "path", cfg.Geo.DBPath, "err", err)
	}

	app := web.New(cfg, db, view.NewEngine(cfg.Paths.Root))
	srv := server.New(cfg.HTTP.ListenAddr, app.Routes())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Infow("server online",
		"addr", cfg.HTTP.ListenAddr,
		"base_url", cfg.Site.BaseURL,
		"force_https", cfg.HTTP.ForceHTTPS,
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
	case sig := <-stop:
		log.Infow("shutdown requested", "signal", sig.String())
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	log.Infow("server stopped")
	return nil
}

// isTTY reports whether stdout is an interactive terminal.
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
