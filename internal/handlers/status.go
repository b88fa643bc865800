// Package handlers implements the ops HTTP surface: health, absorbed-failure
// diagnostics, and a manual chat-list push trigger.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traybridge/traybridge/internal/bridge"
	"github.com/traybridge/traybridge/internal/diag"
	"github.com/traybridge/traybridge/internal/version"
)

// StatusHandler serves bridge health and diagnostics, and lets an operator
// force a chat-list push through the same code path as the inbound
// request-chat-list signal.
type StatusHandler struct {
	channel *bridge.Channel
	diags   *diag.Recorder
}

// NewStatusHandler wires the handler to the bridge channel and diagnostics.
func NewStatusHandler(channel *bridge.Channel, diags *diag.Recorder) *StatusHandler {
	return &StatusHandler{channel: channel, diags: diags}
}

// Register registers the ops routes.
func (h *StatusHandler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/diagnostics", h.Diagnostics)
	e.POST("/push/chat-list", h.PushChatList)
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health reports liveness and the build version.
func (h *StatusHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Version: version.Info()})
}

type diagnosticsResponse struct {
	Records []diag.Record `json:"records"`
}

// Diagnostics returns the recent absorbed failures, oldest first.
func (h *StatusHandler) Diagnostics(c echo.Context) error {
	return c.JSON(http.StatusOK, diagnosticsResponse{Records: h.diags.Recent()})
}

// PushChatList triggers one chat-list push.
func (h *StatusHandler) PushChatList(c echo.Context) error {
	if h.channel == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "bridge channel not configured")
	}
	h.channel.PushChatList(c.Request().Context())
	return c.NoContent(http.StatusAccepted)
}
