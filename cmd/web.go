/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/livercheck/routes"
	"github.com/humaidq/livercheck/static"
	"github.com/humaidq/livercheck/templates"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars(portEnvVar),
			Usage:   "the web server port",
		},
		modelFlag(),
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars(csrfSecretEnvVar),
			Usage:   "secret used to sign CSRF tokens (required in production)",
		},
		&cli.StringFlag{
			Name:    "env",
			Value:   "development",
			Sources: cli.EnvVars(runtimeEnvVar),
			Usage:   "runtime environment: development, dev, production or prod",
		},
		&cli.StringFlag{
			Name:    "site-title",
			Sources: cli.EnvVars(siteTitleEnvVar),
			Usage:   "title shown on the prediction page",
		},
	},
	Action: start,
}

type webConfig struct {
	production bool
	csrfSecret string
	siteTitle  string
}

func (c webConfig) validate() error {
	if c.production && c.csrfSecret == "" {
		return errCSRFSecretRequired
	}

	return nil
}

func start(ctx context.Context, cmd *cli.Command) error {
	production, err := parseRuntimeEnv(cmd.String("env"))
	if err != nil {
		return err
	}

	cfg := webConfig{
		production: production,
		csrfSecret: cmd.String("csrf-secret"),
		siteTitle:  cmd.String("site-title"),
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	predictor, err := loadPredictor(cmd)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	f, err := newWebApp(cfg, routes.NewPredictionHandler(predictor))
	if err != nil {
		return err
	}

	port := cmd.String("port")
	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", port),
		Handler:           f,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	appLogger.Info("Starting web server", "port", port, "production", production, "classes", predictor.Classes())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		appLogger.Info("Shutting down web server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

func newWebApp(cfg webConfig, handler *routes.PredictionHandler) (*flamego.Flame, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f := flamego.New()
	f.Map(requestStdLogger)
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)
	f.Use(routes.NoCacheHeaders())
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: cfg.csrfSecret,
	}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())
	f.Use(routes.SiteTitle(cfg.siteTitle))

	f.Get("/", handler.Form)
	f.Post("/", csrf.Validate, handler.Submit)
	f.Post("/api/predict", handler.API)
	f.Get("/healthz", handler.Health)

	configureEmptyNotFoundHandler(f)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}
