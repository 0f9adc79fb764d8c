/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clinical

// FeatureCount is the width of the model input.
const FeatureCount = 12

// FeatureNames is the column order the model was trained against. Any
// reordering produces valid-looking but wrong predictions.
var FeatureNames = [FeatureCount]string{
	"age",
	"sex",
	"albumin",
	"alkaline_phosphatase",
	"alanine_aminotransferase",
	"aspartate_aminotransferase",
	"bilirubin",
	"cholinesterase",
	"cholesterol",
	"creatinine",
	"gamma_glutamyl_transferase",
	"protein",
}

// FeatureVector is one model input row in FeatureNames order.
type FeatureVector [FeatureCount]float64

// BuildFeatureVector converts a complete observation into model input. Only
// the sex field is validated; lab values are passed through unchanged.
func BuildFeatureVector(obs PatientObservation) (FeatureVector, error) {
	sexCode, ok := obs.Sex.Code()
	if !ok {
		return FeatureVector{}, &ValidationError{Field: "sex"}
	}

	return FeatureVector{
		float64(obs.Age),
		sexCode,
		obs.Albumin,
		obs.AlkalinePhosphatase,
		obs.AlanineAminotransferase,
		obs.AspartateAminotransferase,
		obs.Bilirubin,
		obs.Cholinesterase,
		obs.Cholesterol,
		obs.Creatinine,
		obs.GammaGlutamylTransferase,
		obs.Protein,
	}, nil
}

// Slice returns a copy of the vector as a slice.
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])

	return out
}
