package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naka-gawa/devfolio/internal/config"
	"github.com/naka-gawa/devfolio/internal/gateway"
	"github.com/naka-gawa/devfolio/internal/server"
	"github.com/naka-gawa/devfolio/internal/usecase"
	"github.com/naka-gawa/devfolio/internal/view"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio page and its API",
	Long: `Serves the portfolio page, its static assets and the JSON API
(/api/github/profile, /api/github/repos, /api/analyze). The listen address
defaults to :$PORT, or :5000 when PORT is unset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd, map[string]string{"addr": "addr"})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := buildServer(ctx, cfg, logger)
		if err != nil {
			return err
		}

		httpServer := &http.Server{
			Addr:              cfg.Addr,
			Handler:           srv.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", cfg.Addr).Msg("serving portfolio")
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
		case <-ctx.Done():
			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down: %w", err)
			}
		}
		logger.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address, e.g. :8080 (overrides PORT)")
}

func buildProxy(cfg *config.Config, logger zerolog.Logger) (*usecase.Proxy, error) {
	var fetcher gateway.Fetcher
	if cfg.GitHub.Token != "" {
		f, err := gateway.NewGitHubGateway(cfg.GitHub.Token, cfg.GitHub.APIURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		fetcher = f
	} else {
		logger.Info().Msg("GITHUB_TOKEN not set, serving demo GitHub data")
	}
	return usecase.NewProxy(fetcher, cfg.GitHub.Username, logger), nil
}

func buildServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*server.Server, error) {
	proxy, err := buildProxy(cfg, logger)
	if err != nil {
		return nil, err
	}

	var explainer gateway.Explainer
	if cfg.GenAI.APIKey != "" {
		e, err := gateway.NewGenAIExplainer(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model, logger)
		if err != nil {
			return nil, err
		}
		explainer = e
	} else {
		logger.Info().Msg("GEMINI_API_KEY not set, code analyzer uses local summaries")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	return server.New(proxy, usecase.NewAnalyzer(explainer, logger), renderer, server.Options{
		ProfileURL: cfg.ProfileURL(),
		StaticDir:  cfg.StaticDir,
	}, logger), nil
}
