/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/livercheck/clinical"
	"github.com/humaidq/livercheck/model"
)

const (
	portEnvVar       = "PORT"
	modelPathEnvVar  = "MODEL_PATH"
	csrfSecretEnvVar = "CSRF_SECRET"
	runtimeEnvVar    = "RUNTIME_ENV"
	siteTitleEnvVar  = "SITE_TITLE"
)

func modelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "model",
		Sources: cli.EnvVars(modelPathEnvVar),
		Usage:   "path to the gradient boosting model artifact (JSON)",
	}
}

// parseRuntimeEnv reports whether the runtime environment is production.
func parseRuntimeEnv(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "development", "dev":
		return false, nil
	case "production", "prod":
		return true, nil
	default:
		return false, errInvalidRuntimeEnv
	}
}

// loadModel loads the artifact named by the --model flag.
func loadModel(cmd *cli.Command) (*model.GradientBoosting, error) {
	path := strings.TrimSpace(cmd.String("model"))
	if path == "" {
		return nil, errModelPathRequired
	}

	return model.Load(path)
}

func loadPredictor(cmd *cli.Command) (*clinical.Predictor, error) {
	gb, err := loadModel(cmd)
	if err != nil {
		return nil, err
	}

	return clinical.NewPredictor(gb), nil
}
