// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/livercheck/clinical"
)

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

type testCSRF struct {
	token string
}

func (c testCSRF) Token() string {
	return c.token
}

func (c testCSRF) ValidToken(string) bool {
	return true
}

func (c testCSRF) Error(http.ResponseWriter) {}

func (c testCSRF) Validate(flamego.Context) {}

type templateStub struct {
	called bool
	status int
	name   string
}

func (s *templateStub) HTML(status int, name string) {
	s.called = true
	s.status = status
	s.name = name
}

// stubClassifier returns a fixed label and distribution.
type stubClassifier struct {
	classes []string
	label   string
	probs   []float64
	err     error
}

func (s stubClassifier) Classes() []string {
	return append([]string(nil), s.classes...)
}

func (s stubClassifier) Predict(clinical.FeatureVector) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.label, nil
}

func (s stubClassifier) PredictProbabilities(clinical.FeatureVector) ([]clinical.ClassProbability, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := make([]clinical.ClassProbability, 0, len(s.classes))
	for i, class := range s.classes {
		out = append(out, clinical.ClassProbability{Label: class, Probability: s.probs[i]})
	}

	return out, nil
}

func suspectClassifier() stubClassifier {
	return stubClassifier{
		classes: []string{"no_disease", "suspect_disease", "disease"},
		label:   "suspect_disease",
		probs:   []float64{0.30, 0.55, 0.15},
	}
}
