/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clinical

import (
	"errors"
	"fmt"
)

// Classifier is the contract of a loaded, read-only classification model.
// Implementations must be safe for concurrent inference.
type Classifier interface {
	// Classes returns the model's fixed class order.
	Classes() []string
	Predict(vector FeatureVector) (string, error)
	// PredictProbabilities returns one entry per class. Predictor re-orders
	// the entries to Classes order.
	PredictProbabilities(vector FeatureVector) ([]ClassProbability, error)
}

// Predictor runs the full observation to result pipeline against one model.
type Predictor struct {
	model Classifier
}

// NewPredictor returns a predictor backed by model.
func NewPredictor(model Classifier) *Predictor {
	return &Predictor{model: model}
}

// Classes returns the class order of the underlying model.
func (p *Predictor) Classes() []string {
	return p.model.Classes()
}

// Predict builds the feature vector for obs, runs inference and interprets
// the output. Validation errors are returned unwrapped.
func (p *Predictor) Predict(obs PatientObservation) (*ClassificationResult, error) {
	vector, err := BuildFeatureVector(obs)
	if err != nil {
		return nil, err
	}

	label, err := p.model.Predict(vector)
	if err != nil {
		return nil, fmt.Errorf("failed to predict class: %w", err)
	}

	probabilities, err := p.model.PredictProbabilities(vector)
	if err != nil {
		return nil, fmt.Errorf("failed to predict class probabilities: %w", err)
	}

	ordered, err := OrderByClasses(p.model.Classes(), probabilities)
	if err != nil {
		var outputErr *UnexpectedModelOutputError
		if errors.As(err, &outputErr) {
			outputErr.Label = label
		}

		return nil, err
	}

	return Interpret(label, ordered)
}
