/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/livercheck/clinical"
	"github.com/humaidq/livercheck/reference"
)

// labFlag binds one continuous lab value to its command-line flag.
type labFlag struct {
	name  string
	usage string
	ref   func(*clinical.PatientObservation) *float64
}

var labFlags = []labFlag{
	{"albumin", "albumin", func(o *clinical.PatientObservation) *float64 { return &o.Albumin }},
	{"alkaline-phosphatase", "alkaline phosphatase", func(o *clinical.PatientObservation) *float64 { return &o.AlkalinePhosphatase }},
	{"alanine-aminotransferase", "alanine aminotransferase (SGPT)", func(o *clinical.PatientObservation) *float64 { return &o.AlanineAminotransferase }},
	{"aspartate-aminotransferase", "aspartate aminotransferase (SGOT)", func(o *clinical.PatientObservation) *float64 { return &o.AspartateAminotransferase }},
	{"bilirubin", "bilirubin", func(o *clinical.PatientObservation) *float64 { return &o.Bilirubin }},
	{"cholinesterase", "cholinesterase", func(o *clinical.PatientObservation) *float64 { return &o.Cholinesterase }},
	{"cholesterol", "cholesterol", func(o *clinical.PatientObservation) *float64 { return &o.Cholesterol }},
	{"creatinine", "creatinine", func(o *clinical.PatientObservation) *float64 { return &o.Creatinine }},
	{"gamma-glutamyl-transferase", "gamma glutamyl transferase", func(o *clinical.PatientObservation) *float64 { return &o.GammaGlutamylTransferase }},
	{"protein", "total protein", func(o *clinical.PatientObservation) *float64 { return &o.Protein }},
}

func predictFlags() []cli.Flag {
	flags := []cli.Flag{
		modelFlag(),
		&cli.IntFlag{
			Name:  "age",
			Value: clinical.DefaultAge,
			Usage: "patient age in years (0-120)",
		},
		&cli.StringFlag{
			Name:  "sex",
			Usage: "patient sex: female or male",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the result as JSON",
		},
	}

	for _, lf := range labFlags {
		flags = append(flags, &cli.FloatFlag{
			Name:  lf.name,
			Usage: lf.usage,
		})
	}

	return flags
}

var CmdPredict = &cli.Command{
	Name:   "predict",
	Usage:  "Classify a single observation",
	Flags:  predictFlags(),
	Action: predict,
}

func predict(_ context.Context, cmd *cli.Command) error {
	obs, err := observationFromFlags(cmd)
	if err != nil {
		return err
	}

	predictor, err := loadPredictor(cmd)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	return runPrediction(commandWriter(cmd), predictor, obs, cmd.Bool("json"))
}

func observationFromFlags(cmd *cli.Command) (clinical.PatientObservation, error) {
	obs := clinical.DefaultObservation()
	obs.Age = int(cmd.Int("age"))

	if obs.Age < clinical.MinAge || obs.Age > clinical.MaxAge {
		return obs, errAgeOutOfRange
	}

	sex, err := clinical.ParseSex(cmd.String("sex"))
	if err != nil {
		return obs, err
	}

	obs.Sex = sex

	for _, lf := range labFlags {
		v := cmd.Float(lf.name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return obs, fmt.Errorf("%w: --%s", errNotFiniteLabValue, lf.name)
		}

		if v < 0 {
			return obs, fmt.Errorf("%w: --%s", errNegativeLabValue, lf.name)
		}

		*lf.ref(&obs) = v
	}

	return obs, nil
}

type predictionOutput struct {
	ID          string              `json:"id"`
	Label       string              `json:"label"`
	Tier        clinical.Tier       `json:"tier"`
	Headline    string              `json:"headline"`
	Confidences []confidenceOutput  `json:"confidences"`
	Findings    []reference.Finding `json:"findings"`
}

type confidenceOutput struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Percent     string  `json:"percent"`
}

func runPrediction(w io.Writer, predictor *clinical.Predictor, obs clinical.PatientObservation, asJSON bool) error {
	result, err := predictor.Predict(obs)
	if err != nil {
		if errors.Is(err, clinical.ErrMissingRequiredField) {
			return fmt.Errorf("please select sex with --sex: %w", err)
		}

		return err
	}

	out := predictionOutput{
		ID:       uuid.NewString(),
		Label:    result.PredictedLabel,
		Tier:     result.Tier,
		Headline: result.Tier.Headline(),
		Findings: reference.Assess(obs),
	}

	for _, c := range result.Confidences() {
		out.Confidences = append(out.Confidences, confidenceOutput{
			Label:       c.Label,
			Probability: c.Probability,
			Percent:     c.Percent(),
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	}

	_, err = io.WriteString(w, renderPrediction(out))

	return err
}

var (
	tierColors = map[clinical.Tier]lipgloss.Color{
		clinical.TierPositive:   lipgloss.Color("#2ECC71"),
		clinical.TierCautionary: lipgloss.Color("#F1C40F"),
		clinical.TierAlert:      lipgloss.Color("#E74C3C"),
	}
	labelStyle = lipgloss.NewStyle().Width(28)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B8794"))
)

func renderPrediction(out predictionOutput) string {
	var b strings.Builder

	headline := lipgloss.NewStyle().Bold(true).Foreground(tierColors[out.Tier])
	b.WriteString(headline.Render(out.Headline))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Prediction " + out.ID))
	b.WriteString("\n\n")

	for _, c := range out.Confidences {
		style := lipgloss.NewStyle().Foreground(tierColors[clinical.TierForLabel(c.Label)])
		b.WriteString(labelStyle.Render(clinical.DisplayLabel(c.Label)))
		b.WriteString(style.Render(c.Percent))
		b.WriteString("\n")
	}

	flagged := 0
	for _, f := range out.Findings {
		if !f.OutOfRange() {
			continue
		}

		if flagged == 0 {
			b.WriteString("\nOutside reference range:\n")
		}
		flagged++

		fmt.Fprintf(&b, "  %s %s (%s %s)\n", labelStyle.Render(f.TestName), f.Status, formatValue(f.Value), f.Unit)
	}

	return b.String()
}

func formatValue(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func commandWriter(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}

	return os.Stdout
}
