/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	htmltemplate "html/template"
	"io"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/humaidq/livercheck/clinical"
	"github.com/humaidq/livercheck/reference"
)

const (
	missingSexMessage       = "Please select Sex"
	unexpectedOutputMessage = "The model returned an unexpected result. Please try again later."
	malformedFormMessage    = "The submitted form could not be read."
	maxRequestBodyBytes     = 64 << 10
)

// PredictionHandler serves the prediction form and API.
type PredictionHandler struct {
	predictor *clinical.Predictor
	now       func() time.Time
}

// NewPredictionHandler creates handlers backed by the given predictor.
func NewPredictionHandler(predictor *clinical.Predictor) *PredictionHandler {
	return &PredictionHandler{
		predictor: predictor,
		now:       time.Now,
	}
}

// prediction is one successful classification together with its
// reference-range findings.
type prediction struct {
	ID       string
	Result   *clinical.ClassificationResult
	Findings []reference.Finding
}

func (h *PredictionHandler) predict(obs clinical.PatientObservation) (*prediction, error) {
	id := uuid.NewString()
	start := h.now()

	result, err := h.predictor.Predict(obs)
	if err != nil {
		if errors.Is(err, clinical.ErrMissingRequiredField) {
			inferenceLogger.Warn("Rejected incomplete observation", "prediction_id", id, "error", err)
		} else {
			inferenceLogger.Error("Prediction failed", "prediction_id", id, "error", err)
		}

		return nil, err
	}

	inferenceLogger.Info("Prediction complete",
		"prediction_id", id,
		"label", result.PredictedLabel,
		"tier", result.Tier,
		"duration_ms", h.now().Sub(start).Milliseconds(),
	)

	return &prediction{
		ID:       id,
		Result:   result,
		Findings: reference.Assess(obs),
	}, nil
}

// Form renders the empty prediction form.
func (h *PredictionHandler) Form(t template.Template, data template.Data) {
	data["Form"] = newFormView(defaultInput())
	t.HTML(http.StatusOK, "index")
}

// Submit handles the HTML form submission.
func (h *PredictionHandler) Submit(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	req := c.Request().Request
	req.Body = http.MaxBytesReader(c.ResponseWriter(), req.Body, maxRequestBodyBytes)

	if err := req.ParseForm(); err != nil {
		logger.Warn("Failed to parse prediction form", "error", err)
		SetErrorFlash(s, malformedFormMessage)
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	in, err := parseObservationForm(req.PostForm)
	data["Form"] = newFormView(in)

	if err != nil {
		h.renderFormError(t, data, err)
		return
	}

	obs, err := in.toObservation()
	if err != nil {
		h.renderFormError(t, data, err)
		return
	}

	p, err := h.predict(obs)
	if err != nil {
		h.renderFormError(t, data, err)
		return
	}

	view, err := newResultView(p)
	if err != nil {
		logger.Error("Failed to render confidence chart", "prediction_id", p.ID, "error", err)
	}

	data["Result"] = view
	t.HTML(http.StatusOK, "index")
}

func (h *PredictionHandler) renderFormError(t template.Template, data template.Data, err error) {
	var fieldErr *FieldError

	switch {
	case errors.Is(err, clinical.ErrMissingRequiredField):
		setInlineFlash(data, FlashWarning, missingSexMessage)
		t.HTML(http.StatusUnprocessableEntity, "index")
	case errors.As(err, &fieldErr):
		setInlineFlash(data, FlashWarning, fieldErr.Error())
		t.HTML(http.StatusUnprocessableEntity, "index")
	default:
		setInlineFlash(data, FlashError, unexpectedOutputMessage)
		t.HTML(http.StatusInternalServerError, "index")
	}
}

// predictionResponse is the JSON shape returned by the API.
type predictionResponse struct {
	ID          string               `json:"id"`
	Label       string               `json:"label"`
	Display     string               `json:"display"`
	Tier        clinical.Tier        `json:"tier"`
	Headline    string               `json:"headline"`
	Confidences []confidenceResponse `json:"confidences"`
	Findings    []reference.Finding  `json:"findings"`
}

type confidenceResponse struct {
	Label       string        `json:"label"`
	Probability float64       `json:"probability"`
	Percent     string        `json:"percent"`
	Tier        clinical.Tier `json:"tier"`
}

func newPredictionResponse(p *prediction) predictionResponse {
	confidences := p.Result.Confidences()

	resp := predictionResponse{
		ID:          p.ID,
		Label:       p.Result.PredictedLabel,
		Display:     clinical.DisplayLabel(p.Result.PredictedLabel),
		Tier:        p.Result.Tier,
		Headline:    p.Result.Tier.Headline(),
		Confidences: make([]confidenceResponse, 0, len(confidences)),
		Findings:    p.Findings,
	}

	for _, c := range confidences {
		resp.Confidences = append(resp.Confidences, confidenceResponse{
			Label:       c.Label,
			Probability: c.Probability,
			Percent:     c.Percent(),
			Tier:        c.Tier(),
		})
	}

	return resp
}

// API handles JSON prediction requests.
func (h *PredictionHandler) API(c flamego.Context) {
	in := defaultInput()

	body := http.MaxBytesReader(c.ResponseWriter(), c.Request().Body().ReadCloser(), maxRequestBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&in); err != nil {
		writeJSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeJSONError(c, http.StatusBadRequest, "request body must contain a single JSON object")
		return
	}

	obs, err := in.toObservation()
	if err != nil {
		h.writeAPIError(c, err)
		return
	}

	p, err := h.predict(obs)
	if err != nil {
		h.writeAPIError(c, err)
		return
	}

	writeJSON(c, newPredictionResponse(p))
}

func (h *PredictionHandler) writeAPIError(c flamego.Context, err error) {
	var (
		fieldErr      *FieldError
		validationErr *clinical.ValidationError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSONFieldError(c, http.StatusUnprocessableEntity, validationErr.Field, validationErr.Error())
	case errors.As(err, &fieldErr):
		writeJSONFieldError(c, http.StatusUnprocessableEntity, fieldErr.Field, fieldErr.Error())
	default:
		writeJSONError(c, http.StatusInternalServerError, "unexpected model output")
	}
}

type healthResponse struct {
	Status   string   `json:"status"`
	Classes  []string `json:"classes"`
	Features []string `json:"features"`
}

// Health reports that the model is loaded and its input contract.
func (h *PredictionHandler) Health(c flamego.Context) {
	writeJSON(c, healthResponse{
		Status:   "ok",
		Classes:  h.predictor.Classes(),
		Features: append([]string(nil), clinical.FeatureNames[:]...),
	})
}

// confidenceView is one row of the confidence list on the result card.
type confidenceView struct {
	Label   string
	Display string
	Percent string
	Width   string
	Tier    string
}

type resultView struct {
	ID          string
	Label       string
	Display     string
	Headline    string
	Tier        string
	Confidences []confidenceView
	Findings    []reference.Finding
	Chart       htmltemplate.HTML
}

func newResultView(p *prediction) (resultView, error) {
	confidences := p.Result.Confidences()

	view := resultView{
		ID:          p.ID,
		Label:       p.Result.PredictedLabel,
		Display:     clinical.DisplayLabel(p.Result.PredictedLabel),
		Headline:    p.Result.Tier.Headline(),
		Tier:        p.Result.Tier.String(),
		Confidences: make([]confidenceView, 0, len(confidences)),
		Findings:    p.Findings,
	}

	for _, c := range confidences {
		view.Confidences = append(view.Confidences, confidenceView{
			Label:   c.Label,
			Display: clinical.DisplayLabel(c.Label),
			Percent: c.Percent(),
			Width:   c.Percent(),
			Tier:    c.Tier().String(),
		})
	}

	chart, err := renderConfidenceChart(confidenceChartID(p.ID), confidences)
	if err != nil {
		return view, err
	}

	view.Chart = htmltemplate.HTML(chart)

	return view, nil
}
