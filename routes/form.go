/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/humaidq/livercheck/clinical"
)

// observationInput is the wire shape of a submission, shared by the HTML
// form and the JSON API.
type observationInput struct {
	Age                       int     `json:"age" validate:"gte=0,lte=120"`
	Sex                       string  `json:"sex"`
	Albumin                   float64 `json:"albumin" validate:"gte=0"`
	AlkalinePhosphatase       float64 `json:"alkaline_phosphatase" validate:"gte=0"`
	AlanineAminotransferase   float64 `json:"alanine_aminotransferase" validate:"gte=0"`
	AspartateAminotransferase float64 `json:"aspartate_aminotransferase" validate:"gte=0"`
	Bilirubin                 float64 `json:"bilirubin" validate:"gte=0"`
	Cholinesterase            float64 `json:"cholinesterase" validate:"gte=0"`
	Cholesterol               float64 `json:"cholesterol" validate:"gte=0"`
	Creatinine                float64 `json:"creatinine" validate:"gte=0"`
	GammaGlutamylTransferase  float64 `json:"gamma_glutamyl_transferase" validate:"gte=0"`
	Protein                   float64 `json:"protein" validate:"gte=0"`
}

// labField describes one continuous lab input on the form.
type labField struct {
	Name  string
	Label string
	ref   func(*observationInput) *float64
}

var labFields = []labField{
	{"albumin", "Albumin", func(in *observationInput) *float64 { return &in.Albumin }},
	{"alkaline_phosphatase", "Alkaline Phosphatase", func(in *observationInput) *float64 { return &in.AlkalinePhosphatase }},
	{"alanine_aminotransferase", "Alanine Aminotransferase (SGPT)", func(in *observationInput) *float64 { return &in.AlanineAminotransferase }},
	{"aspartate_aminotransferase", "Aspartate Aminotransferase (SGOT)", func(in *observationInput) *float64 { return &in.AspartateAminotransferase }},
	{"bilirubin", "Bilirubin", func(in *observationInput) *float64 { return &in.Bilirubin }},
	{"cholinesterase", "Cholinesterase", func(in *observationInput) *float64 { return &in.Cholinesterase }},
	{"cholesterol", "Cholesterol", func(in *observationInput) *float64 { return &in.Cholesterol }},
	{"creatinine", "Creatinine", func(in *observationInput) *float64 { return &in.Creatinine }},
	{"gamma_glutamyl_transferase", "Gamma Glutamyl Transferase", func(in *observationInput) *float64 { return &in.GammaGlutamylTransferase }},
	{"protein", "Protein", func(in *observationInput) *float64 { return &in.Protein }},
}

// FieldError reports a submitted value outside its domain.
type FieldError struct {
	Field string
	Label string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Label, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldLabel(name string) string {
	switch name {
	case "age":
		return "Age"
	case "sex":
		return "Sex"
	}

	for _, f := range labFields {
		if f.Name == name {
			return f.Label
		}
	}

	return name
}

func defaultInput() observationInput {
	return observationInput{Age: clinical.DefaultAge}
}

// parseObservationForm reads a submitted form. Empty fields keep their
// defaults.
func parseObservationForm(form url.Values) (observationInput, error) {
	in := defaultInput()

	if raw := strings.TrimSpace(form.Get("age")); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return in, &FieldError{Field: "age", Label: fieldLabel("age"), Err: errInvalidInteger}
		}

		in.Age = age
	}

	in.Sex = strings.TrimSpace(form.Get("sex"))

	for _, f := range labFields {
		raw := strings.TrimSpace(form.Get(f.Name))
		if raw == "" {
			continue
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, &FieldError{Field: f.Name, Label: f.Label, Err: errInvalidNumber}
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return in, &FieldError{Field: f.Name, Label: f.Label, Err: errNotFinite}
		}

		*f.ref(&in) = v
	}

	return in, nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validate
}

// toObservation checks value domains and converts the input. A missing sex
// is not rejected here.
func (in observationInput) toObservation() (clinical.PatientObservation, error) {
	if err := inputValidator().Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return clinical.PatientObservation{}, fieldErrorFromValidation(verrs[0])
		}

		return clinical.PatientObservation{}, err
	}

	sex, err := clinical.ParseSex(in.Sex)
	if err != nil {
		return clinical.PatientObservation{}, &FieldError{Field: "sex", Label: fieldLabel("sex"), Err: errUnknownSex}
	}

	return clinical.PatientObservation{
		Age:                       in.Age,
		Sex:                       sex,
		Albumin:                   in.Albumin,
		AlkalinePhosphatase:       in.AlkalinePhosphatase,
		AlanineAminotransferase:   in.AlanineAminotransferase,
		AspartateAminotransferase: in.AspartateAminotransferase,
		Bilirubin:                 in.Bilirubin,
		Cholinesterase:            in.Cholinesterase,
		Cholesterol:               in.Cholesterol,
		Creatinine:                in.Creatinine,
		GammaGlutamylTransferase:  in.GammaGlutamylTransferase,
		Protein:                   in.Protein,
	}, nil
}

func fieldErrorFromValidation(fe validator.FieldError) *FieldError {
	name := fe.Field()

	var msg string

	switch {
	case name == "age":
		msg = fmt.Sprintf("must be between %d and %d", clinical.MinAge, clinical.MaxAge)
	case fe.Tag() == "gte":
		msg = "must not be negative"
	default:
		msg = "is invalid"
	}

	return &FieldError{Field: name, Label: fieldLabel(name), Err: errors.New(msg)}
}

// fieldView is one input as rendered in the form template.
type fieldView struct {
	Name  string
	Label string
	Value string
}

type formView struct {
	Age    string
	Sex    string
	Fields []fieldView
}

func newFormView(in observationInput) formView {
	view := formView{
		Age:    strconv.Itoa(in.Age),
		Fields: make([]fieldView, 0, len(labFields)),
	}

	if sex, err := clinical.ParseSex(in.Sex); err == nil {
		if text, err := sex.MarshalText(); err == nil {
			view.Sex = string(text)
		}
	}

	for _, f := range labFields {
		view.Fields = append(view.Fields, fieldView{
			Name:  f.Name,
			Label: f.Label,
			Value: strconv.FormatFloat(*f.ref(&in), 'f', -1, 64),
		})
	}

	return view
}
