package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Meertayyab/portfolio/internal/analytics"
	"github.com/Meertayyab/portfolio/internal/components"
	"github.com/Meertayyab/portfolio/internal/config"
	"github.com/Meertayyab/portfolio/internal/contact"
	"github.com/Meertayyab/portfolio/internal/content"
	"github.com/Meertayyab/portfolio/internal/logging"
	"github.com/Meertayyab/portfolio/internal/page"
	"github.com/Meertayyab/portfolio/internal/server"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 24 * time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio site",
	Long: `The serve command renders the portfolio page on every request and serves
static assets, the résumé download, health and metrics endpoints. With
--watch the content file is reloaded whenever it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, appConfig)
	},
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "", "listen address (default :8080 or :$PORT)")
	f.String("content", "", "YAML content file (default: built-in content)")
	f.Bool("watch", false, "reload the content file when it changes")
	f.String("log-level", "info", "log level: debug, info, warn, error")

	_ = v.BindPFlag("addr", f.Lookup("addr"))
	_ = v.BindPFlag("content_file", f.Lookup("content"))
	_ = v.BindPFlag("watch", f.Lookup("watch"))
	_ = v.BindPFlag("log_level", f.Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context, cfg config.Config) error {
	gin.SetMode(cfg.Mode)

	log, err := logging.New(cfg.LogLevel, cfg.Mode == gin.DebugMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := content.NewStore(cfg.ContentFile, log)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if cfg.Watch {
		if err := store.Watch(ctx); err != nil {
			return err
		}
	}

	var backdrop components.Backdrop = components.NoBackdrop{}
	if cfg.Background {
		backdrop = components.DefaultStarfield()
	}
	renderer, err := page.New(backdrop)
	if err != nil {
		return err
	}

	// A typed nil *SMTPRelay must not reach the interface.
	var relay contact.Relay
	if r := contact.NewRelay(cfg.SMTP, log); r != nil {
		relay = r
		log.Info("contact form relay enabled", zap.String("smtp_host", cfg.SMTP.Host))
	} else {
		log.Info("contact form is inert: no SMTP credentials configured")
	}

	retention := time.Duration(cfg.Analytics.RetentionDays) * 24 * time.Hour
	var visits *analytics.Store
	if cfg.Analytics.Enabled {
		visits, err = analytics.Open(ctx, cfg.Analytics.DSN)
		if err != nil {
			return err
		}
		defer visits.Close()
		if retention > 0 {
			go runCleanup(ctx, visits, retention, log)
		}
		log.Info("privacy-conscious visitor tracking enabled")
	}

	srv, err := server.New(server.Options{
		Content:    store,
		Renderer:   renderer,
		Relay:      relay,
		Analytics:  visits,
		Admin:      cfg.Admin,
		Retention:  retention,
		StaticDir:  cfg.StaticDir,
		ImagesDir:  cfg.ImagesDir,
		ResumeFile: cfg.ResumeFile,
		Log:        log,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving portfolio", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// runCleanup purges visits older than retention once at start and then daily.
func runCleanup(ctx context.Context, visits *analytics.Store, retention time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		n, err := visits.Cleanup(ctx, retention)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Warn("error cleaning up old visitor data", zap.Error(err))
		case n > 0:
			log.Info("privacy cleanup: removed old visitor records", zap.Int64("deleted", n))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
