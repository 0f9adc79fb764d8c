/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/humaidq/livercheck/clinical"
)

// FormatGradientBoosting identifies the tree ensemble artifact layout.
const FormatGradientBoosting = "gradient_boosting"

// leafChild marks a node without children.
const leafChild = -1

// Artifact is the serialized form of a gradient-boosted tree ensemble, with
// trees in the node-array layout used by scikit-learn.
type Artifact struct {
	Format       string    `json:"format"`
	Version      int       `json:"version"`
	Classes      []string  `json:"classes"`
	Features     []string  `json:"features,omitempty"`
	LearningRate float64   `json:"learning_rate"`
	InitScores   []float64 `json:"init_scores"`
	Stages       [][]Tree  `json:"stages"`
}

// Tree is one regression tree. Node i is a leaf when ChildrenLeft[i] is -1,
// otherwise samples with x[Feature[i]] <= Threshold[i] go left.
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// Load reads and validates the artifact at path. Any failure is returned as
// an *ArtifactError.
func Load(path string) (*GradientBoosting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}

	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close model artifact", "path", path, "error", err)
		}
	}()

	gb, err := Parse(f)
	if err != nil {
		var artifactErr *ArtifactError
		if errors.As(err, &artifactErr) {
			artifactErr.Path = path
			return nil, artifactErr
		}

		return nil, &ArtifactError{Path: path, Err: err}
	}

	gb.path = path

	logger.Info("Loaded model artifact",
		"path", path,
		"classes", len(gb.classes),
		"stages", len(gb.stages),
		"learning_rate", gb.learningRate,
	)

	return gb, nil
}

// Parse decodes and validates an artifact from r.
func Parse(r io.Reader) (*GradientBoosting, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ArtifactError{Err: fmt.Errorf("read: %w", err)}
	}

	if err := validateArtifactJSON(raw); err != nil {
		return nil, &ArtifactError{Err: err}
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, &ArtifactError{Err: fmt.Errorf("%w: %w", ErrInvalidArtifact, err)}
	}

	gb, err := newGradientBoosting(artifact)
	if err != nil {
		return nil, &ArtifactError{Err: err}
	}

	return gb, nil
}

// treesPerStage is 1 for binary models and one per class otherwise.
func treesPerStage(classCount int) int {
	if classCount == 2 {
		return 1
	}

	return classCount
}

func (a Artifact) validate() error {
	if len(a.Features) > 0 {
		if len(a.Features) != clinical.FeatureCount {
			return fmt.Errorf("%w: artifact has %d features, expected %d",
				ErrFeatureOrderMismatch, len(a.Features), clinical.FeatureCount)
		}

		for i, name := range a.Features {
			if name != clinical.FeatureNames[i] {
				return fmt.Errorf("%w: feature %d is %q, expected %q",
					ErrFeatureOrderMismatch, i, name, clinical.FeatureNames[i])
			}
		}
	}

	width := treesPerStage(len(a.Classes))
	if len(a.InitScores) != width {
		return fmt.Errorf("%w: got %d, expected %d", errInitScoresWidth, len(a.InitScores), width)
	}

	for _, score := range a.InitScores {
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return fmt.Errorf("%w in init_scores", errNonFinite)
		}
	}

	for s, stage := range a.Stages {
		if len(stage) != width {
			return fmt.Errorf("%w: stage %d has %d trees, expected %d", errStageWidth, s, len(stage), width)
		}

		for k, tree := range stage {
			if err := tree.validate(); err != nil {
				return fmt.Errorf("stage %d tree %d: %w", s, k, err)
			}
		}
	}

	return nil
}

func (t Tree) validate() error {
	n := len(t.ChildrenLeft)
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return errTreeShape
	}

	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]

		if left == leafChild || right == leafChild {
			if left != right {
				return fmt.Errorf("%w: node %d has a single child", errTreeChild, i)
			}

			if math.IsNaN(t.Value[i]) || math.IsInf(t.Value[i], 0) {
				return fmt.Errorf("%w in leaf %d", errNonFinite, i)
			}

			continue
		}

		// Children always follow their parent, which also rules out cycles.
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("%w: node %d", errTreeChild, i)
		}

		if t.Feature[i] < 0 || t.Feature[i] >= clinical.FeatureCount {
			return fmt.Errorf("%w: node %d uses feature %d", errTreeFeature, i, t.Feature[i])
		}

		if math.IsNaN(t.Threshold[i]) || math.IsInf(t.Threshold[i], 0) {
			return fmt.Errorf("%w threshold at node %d", errNonFinite, i)
		}
	}

	return nil
}
