/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/livercheck/clinical"
)

var tierColors = map[clinical.Tier]string{
	clinical.TierPositive:   "#2ECC71",
	clinical.TierCautionary: "#F1C40F",
	clinical.TierAlert:      "#E74C3C",
}

// renderConfidenceChart draws one horizontal bar per class, coloured by the
// tier of that class, in model class order.
func renderConfidenceChart(chartID string, confidences []clinical.ClassProbability) (string, error) {
	if len(confidences) == 0 {
		return "", nil
	}

	labels := make([]string, 0, len(confidences))
	bars := make([]opts.BarData, 0, len(confidences))
	for _, c := range confidences {
		labels = append(labels, clinical.DisplayLabel(c.Label))
		bars = append(bars, opts.BarData{
			Name:  c.Label,
			Value: math.Round(c.Probability*10000) / 100,
			ItemStyle: &opts.ItemStyle{
				Color: tierColors[c.Tier()],
			},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  fmt.Sprintf("%dpx", 80+48*len(confidences)),
			ChartID: chartID,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Confidence",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "%",
			Type: "value",
			Min:  0,
			Max:  100,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
		}),
	)

	bar.SetXAxis(labels).
		AddSeries("Confidence", bars).
		XYReversal()

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func confidenceChartID(predictionID string) string {
	return "confidence_" + strings.ReplaceAll(predictionID, "-", "")
}
