/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

// Gender represents biological sex for medical reference ranges
type Gender string

// Gender values represent supported biological-sex categories.
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderUnisex Gender = "Unisex" // For ranges that don't vary by gender
)

// AgeRange represents age-based categorization for reference ranges
type AgeRange string

// AgeRange values represent supported age groups for lab ranges.
const (
	AgePediatric AgeRange = "Pediatric" // 0-17
	AgeAdult     AgeRange = "Adult"     // 18-49
	AgeMiddleAge AgeRange = "MiddleAge" // 50-64
	AgeSenior    AgeRange = "Senior"    // 65+
)

// Lab test names used by the range table.
const (
	TestAlbumin          = "Albumin"
	TestALP              = "Alkaline Phosphatase (ALP)"
	TestALT              = "SGPT (ALT), Serum"
	TestAST              = "SGOT (AST)"
	TestBilirubinTotal   = "Bilirubin Total"
	TestCholinesterase   = "Cholinesterase"
	TestTotalCholesterol = "Total Cholesterol"
	TestCreatinine       = "Creatinine"
	TestGGT              = "GGT"
	TestTotalProtein     = "Total Protein"
)

// Range holds the reference and optimal bounds of one test for an age
// group and gender. Nil bounds are open.
type Range struct {
	TestName     string
	AgeRange     AgeRange
	Gender       Gender
	ReferenceMin *float64
	ReferenceMax *float64
	OptimalMin   *float64
	OptimalMax   *float64
}

// ageRangeFor returns the age range category for an age in years
func ageRangeFor(age int) AgeRange {
	switch {
	case age <= 17:
		return AgePediatric
	case age <= 49:
		return AgeAdult
	case age <= 64:
		return AgeMiddleAge
	default:
		return AgeSenior
	}
}

// DisplayRange returns the reference bounds and the optimal bounds, filling
// a missing optimal bound from the reference range.
func (r *Range) DisplayRange() (refMin, refMax, optMin, optMax *float64, hasOptimal bool) {
	refMin = r.ReferenceMin
	refMax = r.ReferenceMax

	if r.OptimalMin == nil && r.OptimalMax == nil {
		return refMin, refMax, nil, nil, false
	}

	optMin = r.OptimalMin
	if optMin == nil {
		optMin = r.ReferenceMin
	}

	optMax = r.OptimalMax
	if optMax == nil {
		optMax = r.ReferenceMax
	}

	return refMin, refMax, optMin, optMax, true
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// Definitions returns the liver panel reference ranges in conventional US
// units (g/dL, U/L, mg/dL). There is no range for cholinesterase.
func Definitions() []Range {
	return []Range{
		// ===== ALBUMIN (g/dL) =====
		{TestName: TestAlbumin, AgeRange: AgePediatric, Gender: GenderUnisex, ReferenceMin: ptr(3.5), ReferenceMax: ptr(5.0), OptimalMin: ptr(3.5), OptimalMax: ptr(5.0)},
		{TestName: TestAlbumin, AgeRange: AgeAdult, Gender: GenderUnisex, ReferenceMin: ptr(3.5), ReferenceMax: ptr(5.2), OptimalMin: ptr(4.5), OptimalMax: ptr(5.0)},
		{TestName: TestAlbumin, AgeRange: AgeMiddleAge, Gender: GenderUnisex, ReferenceMin: ptr(3.5), ReferenceMax: ptr(5.2), OptimalMin: ptr(4.5), OptimalMax: ptr(5.0)},
		{TestName: TestAlbumin, AgeRange: AgeSenior, Gender: GenderUnisex, ReferenceMin: ptr(3.2), ReferenceMax: ptr(4.8), OptimalMin: ptr(4.0), OptimalMax: ptr(4.8)},

		// ===== ALKALINE PHOSPHATASE (U/L) =====
		// Bone growth keeps pediatric values high
		{TestName: TestALP, AgeRange: AgePediatric, Gender: GenderUnisex, ReferenceMin: ptr(100.0), ReferenceMax: ptr(500.0), OptimalMin: ptr(100.0), OptimalMax: ptr(500.0)},
		{TestName: TestALP, AgeRange: AgeAdult, Gender: GenderUnisex, ReferenceMin: ptr(40.0), ReferenceMax: ptr(130.0), OptimalMin: ptr(60.0), OptimalMax: ptr(100.0)},
		{TestName: TestALP, AgeRange: AgeMiddleAge, Gender: GenderUnisex, ReferenceMin: ptr(40.0), ReferenceMax: ptr(130.0), OptimalMin: ptr(60.0), OptimalMax: ptr(100.0)},
		{TestName: TestALP, AgeRange: AgeSenior, Gender: GenderUnisex, ReferenceMin: ptr(40.0), ReferenceMax: ptr(130.0), OptimalMin: ptr(60.0), OptimalMax: ptr(100.0)},

		// ===== ALT (U/L) =====
		{TestName: TestALT, AgeRange: AgePediatric, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(35.0), OptimalMax: ptr(25.0)},
		{TestName: TestALT, AgeRange: AgePediatric, Gender: GenderFemale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(30.0), OptimalMax: ptr(22.0)},
		{TestName: TestALT, AgeRange: AgeAdult, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(50.0), OptimalMax: ptr(30.0)},
		{TestName: TestALT, AgeRange: AgeAdult, Gender: GenderFemale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(35.0), OptimalMax: ptr(20.0)},
		{TestName: TestALT, AgeRange: AgeMiddleAge, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(50.0), OptimalMax: ptr(30.0)},
		{TestName: TestALT, AgeRange: AgeMiddleAge, Gender: GenderFemale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(35.0), OptimalMax: ptr(20.0)},
		{TestName: TestALT, AgeRange: AgeSenior, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(50.0), OptimalMax: ptr(30.0)},
		{TestName: TestALT, AgeRange: AgeSenior, Gender: GenderFemale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(35.0), OptimalMax: ptr(20.0)},

		// ===== AST (U/L) =====
		{TestName: TestAST, AgeRange: AgePediatric, Gender: GenderUnisex, ReferenceMin: ptr(15.0), ReferenceMax: ptr(50.0), OptimalMin: ptr(15.0), OptimalMax: ptr(50.0)},
		{TestName: TestAST, AgeRange: AgeAdult, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(40.0), OptimalMax: ptr(25.0)},
		{TestName: TestAST, AgeRange: AgeAdult, Gender: GenderFemale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(35.0), OptimalMax: ptr(20.0)},
		{TestName: TestAST, AgeRange: AgeMiddleAge, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(40.0), OptimalMax: ptr(25.0)},
		{TestName: TestAST, AgeRange: AgeMiddleAge, Gender: GenderFemale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(35.0), OptimalMax: ptr(20.0)},
		{TestName: TestAST, AgeRange: AgeSenior, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(40.0), OptimalMax: ptr(25.0)},
		{TestName: TestAST, AgeRange: AgeSenior, Gender: GenderFemale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(35.0), OptimalMax: ptr(20.0)},

		// ===== BILIRUBIN TOTAL (mg/dL) =====
		{TestName: TestBilirubinTotal, AgeRange: AgePediatric, Gender: GenderUnisex, ReferenceMin: ptr(0.3), ReferenceMax: ptr(1.2), OptimalMax: ptr(1.0)},
		{TestName: TestBilirubinTotal, AgeRange: AgeAdult, Gender: GenderUnisex, ReferenceMin: ptr(0.3), ReferenceMax: ptr(1.2), OptimalMax: ptr(1.0)}, // Unless Gilbert's
		{TestName: TestBilirubinTotal, AgeRange: AgeMiddleAge, Gender: GenderUnisex, ReferenceMin: ptr(0.3), ReferenceMax: ptr(1.2), OptimalMax: ptr(1.0)},
		{TestName: TestBilirubinTotal, AgeRange: AgeSenior, Gender: GenderUnisex, ReferenceMin: ptr(0.3), ReferenceMax: ptr(1.2), OptimalMax: ptr(1.0)},

		// ===== TOTAL CHOLESTEROL (mg/dL) =====
		{TestName: TestTotalCholesterol, AgeRange: AgePediatric, Gender: GenderUnisex, ReferenceMax: ptr(200.0)},
		{TestName: TestTotalCholesterol, AgeRange: AgeAdult, Gender: GenderUnisex, ReferenceMax: ptr(200.0)},
		{TestName: TestTotalCholesterol, AgeRange: AgeMiddleAge, Gender: GenderUnisex, ReferenceMax: ptr(200.0)},
		{TestName: TestTotalCholesterol, AgeRange: AgeSenior, Gender: GenderUnisex, ReferenceMax: ptr(200.0)},

		// ===== CREATININE (mg/dL) =====
		{TestName: TestCreatinine, AgeRange: AgePediatric, Gender: GenderUnisex, ReferenceMin: ptr(0.3), ReferenceMax: ptr(0.7), OptimalMin: ptr(0.3), OptimalMax: ptr(0.7)},
		{TestName: TestCreatinine, AgeRange: AgeAdult, Gender: GenderMale, ReferenceMin: ptr(0.74), ReferenceMax: ptr(1.35), OptimalMin: ptr(0.9), OptimalMax: ptr(1.2)},
		{TestName: TestCreatinine, AgeRange: AgeAdult, Gender: GenderFemale, ReferenceMin: ptr(0.59), ReferenceMax: ptr(1.04), OptimalMin: ptr(0.7), OptimalMax: ptr(1.0)},
		{TestName: TestCreatinine, AgeRange: AgeMiddleAge, Gender: GenderMale, ReferenceMin: ptr(0.74), ReferenceMax: ptr(1.35), OptimalMin: ptr(0.9), OptimalMax: ptr(1.2)},
		{TestName: TestCreatinine, AgeRange: AgeMiddleAge, Gender: GenderFemale, ReferenceMin: ptr(0.59), ReferenceMax: ptr(1.04), OptimalMin: ptr(0.7), OptimalMax: ptr(1.0)},
		{TestName: TestCreatinine, AgeRange: AgeSenior, Gender: GenderMale, ReferenceMin: ptr(0.70), ReferenceMax: ptr(1.30), OptimalMin: ptr(0.7), OptimalMax: ptr(1.30)},
		{TestName: TestCreatinine, AgeRange: AgeSenior, Gender: GenderFemale, ReferenceMin: ptr(0.59), ReferenceMax: ptr(1.04), OptimalMin: ptr(0.6), OptimalMax: ptr(1.04)},

		// ===== GGT (U/L) =====
		{TestName: TestGGT, AgeRange: AgePediatric, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(71.0), OptimalMax: ptr(20.0)},
		{TestName: TestGGT, AgeRange: AgePediatric, Gender: GenderFemale, ReferenceMin: ptr(6.0), ReferenceMax: ptr(42.0), OptimalMax: ptr(15.0)},
		{TestName: TestGGT, AgeRange: AgeAdult, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(71.0), OptimalMax: ptr(20.0)},
		{TestName: TestGGT, AgeRange: AgeAdult, Gender: GenderFemale, ReferenceMin: ptr(6.0), ReferenceMax: ptr(42.0), OptimalMax: ptr(15.0)},
		{TestName: TestGGT, AgeRange: AgeMiddleAge, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(71.0), OptimalMax: ptr(20.0)},
		{TestName: TestGGT, AgeRange: AgeMiddleAge, Gender: GenderFemale, ReferenceMin: ptr(6.0), ReferenceMax: ptr(42.0), OptimalMax: ptr(15.0)},
		{TestName: TestGGT, AgeRange: AgeSenior, Gender: GenderMale, ReferenceMin: ptr(10.0), ReferenceMax: ptr(71.0), OptimalMax: ptr(20.0)},
		{TestName: TestGGT, AgeRange: AgeSenior, Gender: GenderFemale, ReferenceMin: ptr(6.0), ReferenceMax: ptr(42.0), OptimalMax: ptr(15.0)},

		// ===== TOTAL PROTEIN (g/dL) =====
		{TestName: TestTotalProtein, AgeRange: AgePediatric, Gender: GenderUnisex, ReferenceMin: ptr(6.4), ReferenceMax: ptr(8.3), OptimalMin: ptr(6.8), OptimalMax: ptr(7.8)},
		{TestName: TestTotalProtein, AgeRange: AgeAdult, Gender: GenderUnisex, ReferenceMin: ptr(6.4), ReferenceMax: ptr(8.3), OptimalMin: ptr(6.8), OptimalMax: ptr(7.8)},
		{TestName: TestTotalProtein, AgeRange: AgeMiddleAge, Gender: GenderUnisex, ReferenceMin: ptr(6.4), ReferenceMax: ptr(8.3), OptimalMin: ptr(6.8), OptimalMax: ptr(7.8)},
		{TestName: TestTotalProtein, AgeRange: AgeSenior, Gender: GenderUnisex, ReferenceMin: ptr(6.4), ReferenceMax: ptr(8.3), OptimalMin: ptr(6.8), OptimalMax: ptr(7.8)},
	}
}
