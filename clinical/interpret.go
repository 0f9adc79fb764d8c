/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clinical

import (
	"fmt"
	"math"
)

// Class labels with a dedicated tier. Every other label is treated as disease.
const (
	LabelNoDisease      = "no_disease"
	LabelSuspectDisease = "suspect_disease"
)

// Tier is the presentation category of a predicted label.
type Tier int

// Tier values.
const (
	TierPositive Tier = iota
	TierCautionary
	TierAlert
)

func (t Tier) String() string {
	switch t {
	case TierPositive:
		return "positive"
	case TierCautionary:
		return "cautionary"
	default:
		return "alert"
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TierForLabel maps a model label to its tier by exact match. Labels other
// than no_disease and suspect_disease, including ones the model was never
// seen to emit, fall into TierAlert.
func TierForLabel(label string) Tier {
	switch label {
	case LabelNoDisease:
		return TierPositive
	case LabelSuspectDisease:
		return TierCautionary
	default:
		return TierAlert
	}
}

// ClassProbability is one entry of a model's class distribution.
type ClassProbability struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Percent renders the probability as a percentage with two decimals.
func (c ClassProbability) Percent() string {
	return FormatPercent(c.Probability)
}

// Tier returns the tier of the entry's label.
func (c ClassProbability) Tier() Tier {
	return TierForLabel(c.Label)
}

// ClassificationResult is the interpreted outcome of one prediction.
type ClassificationResult struct {
	PredictedLabel string
	Tier           Tier
	confidences    []ClassProbability
}

// Confidences returns the class distribution in the model's class order.
func (r *ClassificationResult) Confidences() []ClassProbability {
	out := make([]ClassProbability, len(r.confidences))
	copy(out, r.confidences)

	return out
}

// Confidence returns the probability reported for label.
func (r *ClassificationResult) Confidence(label string) (float64, bool) {
	for _, c := range r.confidences {
		if c.Label == label {
			return c.Probability, true
		}
	}

	return 0, false
}

// Interpret validates a raw prediction against its distribution and assigns
// the tier. The distribution keeps the model's order and is not normalised.
func Interpret(predictedLabel string, probabilities []ClassProbability) (*ClassificationResult, error) {
	classes := make([]string, 0, len(probabilities))
	for _, p := range probabilities {
		classes = append(classes, p.Label)
	}

	if len(probabilities) == 0 {
		return nil, &UnexpectedModelOutputError{Label: predictedLabel, Classes: classes, Reason: "empty class distribution"}
	}

	seen := make(map[string]struct{}, len(probabilities))
	found := false

	for _, p := range probabilities {
		if _, dup := seen[p.Label]; dup {
			return nil, &UnexpectedModelOutputError{
				Label:   predictedLabel,
				Classes: classes,
				Reason:  fmt.Sprintf("duplicate class %q", p.Label),
			}
		}

		seen[p.Label] = struct{}{}

		if math.IsNaN(p.Probability) || p.Probability < 0 || p.Probability > 1 {
			return nil, &UnexpectedModelOutputError{
				Label:   predictedLabel,
				Classes: classes,
				Reason:  fmt.Sprintf("probability %v for class %q outside [0, 1]", p.Probability, p.Label),
			}
		}

		if p.Label == predictedLabel {
			found = true
		}
	}

	if !found {
		return nil, &UnexpectedModelOutputError{Label: predictedLabel, Classes: classes, Reason: "predicted label missing from distribution"}
	}

	confidences := make([]ClassProbability, len(probabilities))
	copy(confidences, probabilities)

	return &ClassificationResult{
		PredictedLabel: predictedLabel,
		Tier:           TierForLabel(predictedLabel),
		confidences:    confidences,
	}, nil
}

// OrderByClasses returns the distribution re-ordered to match the model's
// declared class order. The class set must match exactly.
func OrderByClasses(classes []string, probabilities []ClassProbability) ([]ClassProbability, error) {
	got := make([]string, 0, len(probabilities))
	byLabel := make(map[string]ClassProbability, len(probabilities))

	for _, p := range probabilities {
		got = append(got, p.Label)
		byLabel[p.Label] = p
	}

	mismatch := func(reason string) error {
		return &UnexpectedModelOutputError{Classes: got, Reason: reason}
	}

	if len(probabilities) != len(classes) || len(byLabel) != len(probabilities) {
		return nil, mismatch(fmt.Sprintf("distribution classes %v do not match model classes %v", got, classes))
	}

	ordered := make([]ClassProbability, 0, len(classes))
	for _, class := range classes {
		p, ok := byLabel[class]
		if !ok {
			return nil, mismatch(fmt.Sprintf("class %q missing from distribution", class))
		}

		ordered = append(ordered, p)
	}

	return ordered, nil
}

// FormatPercent renders a probability in [0, 1] as "55.00%".
func FormatPercent(probability float64) string {
	return fmt.Sprintf("%.2f%%", probability*100)
}
