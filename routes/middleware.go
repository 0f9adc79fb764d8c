/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
)

// DefaultSiteTitle is used when no title is configured.
const DefaultSiteTitle = "Liver Disease Prediction"

// CSRFInjector automatically injects CSRF token into template data for all routes
func CSRFInjector() flamego.Handler {
	return func(x csrf.CSRF, data template.Data) {
		data["csrf_token"] = x.Token()
	}
}

// FlashInjector exposes a pending session flash message to templates.
func FlashInjector() flamego.Handler {
	return func(flash session.Flash, data template.Data) {
		if msg, ok := flash.(FlashMessage); ok {
			data["Flash"] = msg
		}
	}
}

// SiteTitle sets the page title, falling back to DefaultSiteTitle.
func SiteTitle(title string) flamego.Handler {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultSiteTitle
	}

	return func(data template.Data) {
		data["PageTitle"] = title
	}
}

// NoCacheHeaders disables caching for all page responses and blocks indexing.
// Responses carry patient lab values and must not be stored by proxies.
func NoCacheHeaders() flamego.Handler {
	return func(c flamego.Context) {
		header := c.ResponseWriter().Header()
		header.Set("X-Robots-Tag", "noindex, nofollow, noarchive, nosnippet")

		if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			header.Set("Cache-Control", "no-store, max-age=0")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")
		}

		c.Next()
	}
}
