/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/livercheck/clinical"
	"github.com/humaidq/livercheck/model"
)

var CmdModel = &cli.Command{
	Name:  "model",
	Usage: "Model artifact commands",
	Commands: []*cli.Command{
		{
			Name:  "inspect",
			Usage: "Validate a model artifact and print a summary",
			Flags: []cli.Flag{
				modelFlag(),
				&cli.BoolFlag{
					Name:  "json",
					Usage: "print the summary as JSON",
				},
			},
			Action: modelInspect,
		},
	},
}

func modelInspect(_ context.Context, cmd *cli.Command) error {
	gb, err := loadModel(cmd)
	if err != nil {
		return err
	}

	return writeModelInfo(commandWriter(cmd), gb.Info(), cmd.Bool("json"))
}

var keyStyle = lipgloss.NewStyle().Bold(true).Width(16)

func writeModelInfo(w io.Writer, info model.Info, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(info)
	}

	classes := make([]string, 0, len(info.Classes))
	for _, class := range info.Classes {
		style := lipgloss.NewStyle().Foreground(tierColors[clinical.TierForLabel(class)])
		classes = append(classes, style.Render(class))
	}

	features := strings.Join(info.Features, ", ")
	if !info.FeaturesDeclared {
		features += mutedStyle.Render(" (not declared by artifact)")
	}

	rows := [][2]string{
		{"Path", info.Path},
		{"Format", info.Format},
		{"Classes", strings.Join(classes, ", ")},
		{"Stages", fmt.Sprintf("%d", info.Stages)},
		{"Learning rate", fmt.Sprintf("%g", info.LearningRate)},
		{"Features", features},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(keyStyle.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}
