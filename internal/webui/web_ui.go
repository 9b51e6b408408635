// Package webui serves the embedded dashboard and a plain-HTML debug
// view over the loaded telemetry.
package webui

import (
	"residash.io/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}
