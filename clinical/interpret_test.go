// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package clinical

import (
	"errors"
	"math"
	"testing"
)

func scenarioProbabilities() []ClassProbability {
	return []ClassProbability{
		{Label: "no_disease", Probability: 0.30},
		{Label: "suspect_disease", Probability: 0.55},
		{Label: "disease", Probability: 0.15},
	}
}

func TestTierForLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  Tier
	}{
		{label: "no_disease", want: TierPositive},
		{label: "suspect_disease", want: TierCautionary},
		{label: "disease", want: TierAlert},
		{label: "hepatic_disease", want: TierAlert},
		{label: "no_disease_variant", want: TierAlert},
		{label: "No_Disease", want: TierAlert},
		{label: " suspect_disease", want: TierAlert},
		{label: "", want: TierAlert},
	}

	for _, tt := range tests {
		if got := TierForLabel(tt.label); got != tt.want {
			t.Fatalf("TierForLabel(%q) = %s, want %s", tt.label, got, tt.want)
		}
	}
}

func TestInterpretSuspectScenario(t *testing.T) {
	t.Parallel()

	probabilities := scenarioProbabilities()

	result, err := Interpret("suspect_disease", probabilities)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	if result.Tier != TierCautionary {
		t.Fatalf("expected cautionary tier, got %s", result.Tier)
	}

	if result.PredictedLabel != "suspect_disease" {
		t.Fatalf("unexpected label %q", result.PredictedLabel)
	}

	confidences := result.Confidences()
	for i, want := range probabilities {
		if confidences[i] != want {
			t.Fatalf("confidence %d: expected %#v, got %#v", i, want, confidences[i])
		}
	}

	if got := confidences[1].Percent(); got != "55.00%" {
		t.Fatalf("expected 55.00%%, got %q", got)
	}

	if got, ok := result.Confidence("disease"); !ok || got != 0.15 {
		t.Fatalf("expected disease confidence 0.15, got %v (%v)", got, ok)
	}
}

func TestInterpretUnknownLabelFallsBackToAlert(t *testing.T) {
	t.Parallel()

	result, err := Interpret("hepatic_disease", []ClassProbability{
		{Label: "no_disease", Probability: 0.1},
		{Label: "hepatic_disease", Probability: 0.9},
	})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	if result.Tier != TierAlert {
		t.Fatalf("expected alert tier, got %s", result.Tier)
	}
}

func TestInterpretKeepsModelOrder(t *testing.T) {
	t.Parallel()

	probabilities := []ClassProbability{
		{Label: "disease", Probability: 0.05},
		{Label: "suspect_disease", Probability: 0.15},
		{Label: "no_disease", Probability: 0.80},
	}

	result, err := Interpret("no_disease", probabilities)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	got := result.Confidences()
	for i := range probabilities {
		if got[i].Label != probabilities[i].Label {
			t.Fatalf("expected label %q at %d, got %q", probabilities[i].Label, i, got[i].Label)
		}
	}

	if result.Tier != TierPositive {
		t.Fatalf("expected positive tier, got %s", result.Tier)
	}
}

func TestInterpretDoesNotRenormalise(t *testing.T) {
	t.Parallel()

	sets := [][]ClassProbability{
		scenarioProbabilities(),
		{{Label: "a", Probability: 0.3333333}, {Label: "b", Probability: 0.3333333}, {Label: "c", Probability: 0.3333339}},
		{{Label: "a", Probability: 0.4999995}, {Label: "b", Probability: 0.5}},
		{{Label: "a", Probability: 1}},
	}

	for i, set := range sets {
		var inputSum float64
		for _, p := range set {
			inputSum += p.Probability
		}

		result, err := Interpret(set[0].Label, set)
		if err != nil {
			t.Fatalf("set %d: Interpret failed: %v", i, err)
		}

		var outputSum float64
		for _, p := range result.Confidences() {
			outputSum += p.Probability
		}

		if outputSum != inputSum {
			t.Fatalf("set %d: expected sum %v, got %v", i, inputSum, outputSum)
		}

		if math.Abs(outputSum-1) > 1e-6 {
			t.Fatalf("set %d: fixture does not sum to 1: %v", i, outputSum)
		}
	}
}

func TestInterpretResultIsImmutable(t *testing.T) {
	t.Parallel()

	probabilities := scenarioProbabilities()

	result, err := Interpret("suspect_disease", probabilities)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	probabilities[0].Probability = 0.99
	returned := result.Confidences()
	returned[1].Label = "changed"

	again := result.Confidences()
	if again[0].Probability != 0.30 || again[1].Label != "suspect_disease" {
		t.Fatalf("result was mutated through a shared slice: %#v", again)
	}
}

func TestInterpretRejectsContractViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		label         string
		probabilities []ClassProbability
	}{
		{name: "label missing", label: "fatty_liver", probabilities: scenarioProbabilities()},
		{name: "empty distribution", label: "no_disease", probabilities: nil},
		{
			name:  "duplicate class",
			label: "no_disease",
			probabilities: []ClassProbability{
				{Label: "no_disease", Probability: 0.5},
				{Label: "no_disease", Probability: 0.5},
			},
		},
		{
			name:          "negative probability",
			label:         "no_disease",
			probabilities: []ClassProbability{{Label: "no_disease", Probability: -0.1}},
		},
		{
			name:          "probability above one",
			label:         "no_disease",
			probabilities: []ClassProbability{{Label: "no_disease", Probability: 1.5}},
		},
		{
			name:          "NaN probability",
			label:         "no_disease",
			probabilities: []ClassProbability{{Label: "no_disease", Probability: math.NaN()}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Interpret(tt.label, tt.probabilities)
			if result != nil {
				t.Fatalf("expected no result, got %#v", result)
			}

			if !errors.Is(err, ErrUnexpectedModelOutput) {
				t.Fatalf("expected ErrUnexpectedModelOutput, got %v", err)
			}

			var outputErr *UnexpectedModelOutputError
			if !errors.As(err, &outputErr) || outputErr.Label != tt.label {
				t.Fatalf("expected UnexpectedModelOutputError for %q, got %#v", tt.label, err)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{in: 0.55, want: "55.00%"},
		{in: 0, want: "0.00%"},
		{in: 1, want: "100.00%"},
		{in: 0.123456, want: "12.35%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayLabelAndHeadline(t *testing.T) {
	t.Parallel()

	if got := DisplayLabel("suspect_disease"); got != "Suspect Disease" {
		t.Fatalf("unexpected display label %q", got)
	}

	if got := DisplayLabel("no_disease"); got != "No Disease" {
		t.Fatalf("unexpected display label %q", got)
	}

	if got := TierAlert.Headline(); got != "Liver Disease Detected" {
		t.Fatalf("unexpected alert headline %q", got)
	}

	if got := TierCautionary.String(); got != "cautionary" {
		t.Fatalf("unexpected tier name %q", got)
	}
}
