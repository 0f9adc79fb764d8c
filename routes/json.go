/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/flamego/flamego"
)

type apiError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(c flamego.Context, payload any) {
	writeJSONStatus(c, http.StatusOK, payload)
}

func writeJSONStatus(c flamego.Context, status int, payload any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(payload); err != nil {
		logger.Error("Error encoding JSON response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSONFieldError(c, status, "", message)
}

func writeJSONFieldError(c flamego.Context, status int, field, message string) {
	writeJSONStatus(c, status, apiError{Error: message, Field: field})
}
