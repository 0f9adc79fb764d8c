/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package model

import (
	"math"

	"github.com/humaidq/livercheck/clinical"
)

// GradientBoosting is a loaded gradient-boosted tree ensemble. It is
// immutable after loading and safe for concurrent inference.
type GradientBoosting struct {
	path         string
	classes      []string
	features     []string
	learningRate float64
	initScores   []float64
	stages       [][]Tree
}

// Info summarises a loaded model.
type Info struct {
	Path         string   `json:"path,omitempty"`
	Format       string   `json:"format"`
	Classes      []string `json:"classes"`
	Features     []string `json:"features"`
	Stages       int      `json:"stages"`
	LearningRate float64  `json:"learning_rate"`
	// FeaturesDeclared is false when the artifact does not state its input
	// order and the application order is assumed.
	FeaturesDeclared bool `json:"features_declared"`
}

var _ clinical.Classifier = (*GradientBoosting)(nil)

func newGradientBoosting(a Artifact) (*GradientBoosting, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	return &GradientBoosting{
		classes:      append([]string(nil), a.Classes...),
		features:     append([]string(nil), a.Features...),
		learningRate: a.LearningRate,
		initScores:   append([]float64(nil), a.InitScores...),
		stages:       a.Stages,
	}, nil
}

// Classes returns the class order of the model.
func (g *GradientBoosting) Classes() []string {
	return append([]string(nil), g.classes...)
}

// Info returns a summary of the model.
func (g *GradientBoosting) Info() Info {
	features := g.features
	declared := len(features) > 0

	if !declared {
		features = clinical.FeatureNames[:]
	}

	return Info{
		Path:             g.path,
		Format:           FormatGradientBoosting,
		Classes:          g.Classes(),
		Features:         append([]string(nil), features...),
		Stages:           len(g.stages),
		LearningRate:     g.learningRate,
		FeaturesDeclared: declared,
	}
}

// Predict returns the most probable class. Ties go to the earlier class.
func (g *GradientBoosting) Predict(vector clinical.FeatureVector) (string, error) {
	probabilities := g.probabilities(vector)

	best := 0
	for k := 1; k < len(probabilities); k++ {
		if probabilities[k] > probabilities[best] {
			best = k
		}
	}

	return g.classes[best], nil
}

// PredictProbabilities returns the class distribution in Classes order.
func (g *GradientBoosting) PredictProbabilities(vector clinical.FeatureVector) ([]clinical.ClassProbability, error) {
	probabilities := g.probabilities(vector)

	out := make([]clinical.ClassProbability, len(g.classes))
	for k, label := range g.classes {
		out[k] = clinical.ClassProbability{Label: label, Probability: probabilities[k]}
	}

	return out, nil
}

func (g *GradientBoosting) rawScores(vector clinical.FeatureVector) []float64 {
	raw := append([]float64(nil), g.initScores...)

	for _, stage := range g.stages {
		for k, tree := range stage {
			raw[k] += g.learningRate * tree.eval(vector)
		}
	}

	return raw
}

func (g *GradientBoosting) probabilities(vector clinical.FeatureVector) []float64 {
	raw := g.rawScores(vector)

	if len(g.classes) == 2 {
		positive := sigmoid(raw[0])
		return []float64{1 - positive, positive}
	}

	return softmax(raw)
}

func (t Tree) eval(vector clinical.FeatureVector) float64 {
	node := 0
	for t.ChildrenLeft[node] != leafChild {
		if vector[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}

	return t.Value[node]
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func softmax(raw []float64) []float64 {
	maxScore := raw[0]
	for _, v := range raw[1:] {
		maxScore = max(maxScore, v)
	}

	out := make([]float64, len(raw))

	var sum float64
	for k, v := range raw {
		out[k] = math.Exp(v - maxScore)
		sum += out[k]
	}

	for k := range out {
		out[k] /= sum
	}

	return out
}
