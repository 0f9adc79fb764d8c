// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flamego/flamego"

	"github.com/humaidq/livercheck/clinical"
	"github.com/humaidq/livercheck/model"
	"github.com/humaidq/livercheck/routes"
)

const testModelPath = "../model/testdata/liver_gb.json"

func newTestPredictor(t *testing.T) *clinical.Predictor {
	t.Helper()

	gb, err := model.Load(testModelPath)
	if err != nil {
		t.Fatalf("failed to load test model: %v", err)
	}

	return clinical.NewPredictor(gb)
}

func TestConfigureEmptyNotFoundHandlerReturnsStatusOnly(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestParseRuntimeEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value          string
		wantProduction bool
		wantErr        error
	}{
		{value: "", wantProduction: false},
		{value: "development", wantProduction: false},
		{value: "DEV", wantProduction: false},
		{value: "production", wantProduction: true},
		{value: " prod ", wantProduction: true},
		{value: "staging", wantErr: errInvalidRuntimeEnv},
	}

	for _, tt := range tests {
		got, err := parseRuntimeEnv(tt.value)
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("parseRuntimeEnv(%q) error = %v, want %v", tt.value, err, tt.wantErr)
		}

		if got != tt.wantProduction {
			t.Fatalf("parseRuntimeEnv(%q) = %v, want %v", tt.value, got, tt.wantProduction)
		}
	}
}

func TestNewWebAppRequiresCSRFSecretInProduction(t *testing.T) {
	t.Parallel()

	handler := routes.NewPredictionHandler(newTestPredictor(t))

	if _, err := newWebApp(webConfig{production: true}, handler); !errors.Is(err, errCSRFSecretRequired) {
		t.Fatalf("expected errCSRFSecretRequired, got %v", err)
	}

	if _, err := newWebApp(webConfig{production: true, csrfSecret: "secret"}, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewWebAppServesForm(t *testing.T) {
	t.Parallel()

	f, err := newWebApp(webConfig{siteTitle: "Liver Clinic"}, routes.NewPredictionHandler(newTestPredictor(t)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{"Liver Clinic", `name="_csrf"`, `name="sex"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}

	if got := rec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Fatalf("unexpected Cache-Control: %q", got)
	}
}

func TestNewWebAppRejectsFormWithoutCSRFToken(t *testing.T) {
	t.Parallel()

	f, err := newWebApp(webConfig{}, routes.NewPredictionHandler(newTestPredictor(t)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("sex=male"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		t.Fatalf("expected submission without CSRF token to be rejected")
	}
}

func TestNewWebAppPredictAPI(t *testing.T) {
	t.Parallel()

	f, err := newWebApp(webConfig{}, routes.NewPredictionHandler(newTestPredictor(t)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"age": 30, "sex": "female", "alanine_aminotransferase": 150, "bilirubin": 3.0, "gamma_glutamyl_transferase": 20}`
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Label string `json:"label"`
		Tier  string `json:"tier"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Label != "disease" || resp.Tier != "alert" {
		t.Fatalf("unexpected prediction: %#v", resp)
	}
}

func TestNewWebAppHealth(t *testing.T) {
	t.Parallel()

	f, err := newWebApp(webConfig{}, routes.NewPredictionHandler(newTestPredictor(t)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}
