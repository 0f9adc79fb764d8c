// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package clinical

import (
	"errors"
	"math"
	"testing"
)

func scenarioObservation() PatientObservation {
	return PatientObservation{
		Age:                       45,
		Sex:                       SexMale,
		Albumin:                   4.0,
		AlkalinePhosphatase:       90,
		AlanineAminotransferase:   30,
		AspartateAminotransferase: 28,
		Bilirubin:                 0.8,
		Cholinesterase:            5000,
		Cholesterol:               180,
		Creatinine:                1.0,
		GammaGlutamylTransferase:  20,
		Protein:                   7.0,
	}
}

func TestFeatureNamesOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"age", "sex", "albumin", "alkaline_phosphatase", "alanine_aminotransferase",
		"aspartate_aminotransferase", "bilirubin", "cholinesterase", "cholesterol",
		"creatinine", "gamma_glutamyl_transferase", "protein",
	}

	if len(FeatureNames) != len(want) {
		t.Fatalf("expected %d feature names, got %d", len(want), len(FeatureNames))
	}

	for i, name := range want {
		if FeatureNames[i] != name {
			t.Fatalf("feature %d: expected %q, got %q", i, name, FeatureNames[i])
		}
	}
}

func TestBuildFeatureVectorScenario(t *testing.T) {
	t.Parallel()

	vector, err := BuildFeatureVector(scenarioObservation())
	if err != nil {
		t.Fatalf("BuildFeatureVector failed: %v", err)
	}

	want := FeatureVector{45, 1, 4.0, 90, 30, 28, 0.8, 5000, 180, 1.0, 20, 7.0}
	if vector != want {
		t.Fatalf("expected vector %v, got %v", want, vector)
	}
}

func TestBuildFeatureVectorSexCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sex  Sex
		want float64
	}{
		{sex: SexFemale, want: 0},
		{sex: SexMale, want: 1},
	}

	for _, tt := range tests {
		obs := DefaultObservation()
		obs.Sex = tt.sex

		vector, err := BuildFeatureVector(obs)
		if err != nil {
			t.Fatalf("BuildFeatureVector(%s) failed: %v", tt.sex, err)
		}

		if vector[1] != tt.want {
			t.Fatalf("expected sex code %v for %s, got %v", tt.want, tt.sex, vector[1])
		}

		if vector[0] != DefaultAge {
			t.Fatalf("expected default age %d, got %v", DefaultAge, vector[0])
		}
	}
}

func TestBuildFeatureVectorRequiresSex(t *testing.T) {
	t.Parallel()

	observations := []PatientObservation{
		{},
		{Age: 120, Albumin: 99, Cholinesterase: 1e6},
		func() PatientObservation {
			obs := scenarioObservation()
			obs.Sex = SexUnspecified

			return obs
		}(),
	}

	for i, obs := range observations {
		vector, err := BuildFeatureVector(obs)
		if err == nil {
			t.Fatalf("case %d: expected error, got vector %v", i, vector)
		}

		if !errors.Is(err, ErrMissingRequiredField) {
			t.Fatalf("case %d: expected ErrMissingRequiredField, got %v", i, err)
		}

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "sex" {
			t.Fatalf("case %d: expected ValidationError for sex, got %#v", i, err)
		}

		if vector != (FeatureVector{}) {
			t.Fatalf("case %d: expected zero vector on failure, got %v", i, vector)
		}
	}
}

func TestBuildFeatureVectorAcceptsImplausibleValues(t *testing.T) {
	t.Parallel()

	obs := PatientObservation{
		Age:                       120,
		Sex:                       SexFemale,
		Albumin:                   1e9,
		AlkalinePhosphatase:       math.MaxFloat64,
		GammaGlutamylTransferase:  0,
		AspartateAminotransferase: 123456.789,
	}

	vector, err := BuildFeatureVector(obs)
	if err != nil {
		t.Fatalf("expected implausible values to be accepted, got %v", err)
	}

	if vector[2] != 1e9 || vector[3] != math.MaxFloat64 || vector[5] != 123456.789 {
		t.Fatalf("values were altered: %v", vector)
	}
}

func TestBuildFeatureVectorDeterministic(t *testing.T) {
	t.Parallel()

	obs := scenarioObservation()
	obs.Bilirubin = 0.1 + 0.2

	first, err := BuildFeatureVector(obs)
	if err != nil {
		t.Fatalf("BuildFeatureVector failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		next, err := BuildFeatureVector(obs)
		if err != nil {
			t.Fatalf("BuildFeatureVector failed: %v", err)
		}

		for i := range next {
			if math.Float64bits(next[i]) != math.Float64bits(first[i]) {
				t.Fatalf("feature %d differs between runs: %v vs %v", i, first[i], next[i])
			}
		}
	}
}

func TestFeatureVectorSliceIsCopy(t *testing.T) {
	t.Parallel()

	vector := FeatureVector{1, 2, 3}
	slice := vector.Slice()
	slice[0] = 42

	if vector[0] != 1 {
		t.Fatalf("expected vector to be unchanged, got %v", vector)
	}

	if len(slice) != FeatureCount {
		t.Fatalf("expected %d elements, got %d", FeatureCount, len(slice))
	}
}
