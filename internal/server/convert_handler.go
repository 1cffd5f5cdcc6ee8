package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/MeKo-Tech/colorconv/internal/converter"
)

// maxBodyBytes bounds POST bodies; a color value is a few dozen bytes.
const maxBodyBytes = 4 << 10

// Converter is the conversion dependency of ConvertHandler.
type Converter interface {
	Convert(input string) converter.Result
}

// PageConfig is the converter configuration served at /api/config, so a
// page converting in WASM uses the same fallback and theme threshold.
type PageConfig struct {
	DefaultColor   string  `json:"default_color"`
	ThemeThreshold float64 `json:"theme_threshold"`
}

// NewPageConfig reports the resolved configuration of c.
func NewPageConfig(c converter.Config) PageConfig {
	pc := PageConfig{DefaultColor: c.DefaultColor, ThemeThreshold: converter.DefaultThemeThreshold}
	if pc.DefaultColor == "" {
		pc.DefaultColor = converter.DefaultColor
	}
	if c.ThemeThreshold != nil {
		pc.ThemeThreshold = *c.ThemeThreshold
	}
	return pc
}

// ConvertHandlerConfig configures the API handler.
type ConvertHandlerConfig struct {
	CacheControl string
	Page         PageConfig
}

// ConvertHandler serves color conversions over HTTP.
type ConvertHandler struct {
	conv   Converter
	logger *slog.Logger
	cfg    ConvertHandlerConfig

	totalConversions atomic.Int64
	totalFallbacks   atomic.Int64
}

// Status reports conversion counters since start.
type Status struct {
	Conversions int64 `json:"conversions"`
	Fallbacks   int64 `json:"fallbacks"`
}

type convertRequest struct {
	Value string `json:"value"`
}

// NewConvertHandler creates a handler backed by conv.
func NewConvertHandler(conv Converter, cfg ConvertHandlerConfig, logger *slog.Logger) *ConvertHandler {
	if cfg.CacheControl == "" {
		cfg.CacheControl = "no-store"
	}
	if cfg.Page.DefaultColor == "" {
		cfg.Page = NewPageConfig(converter.Config{})
	}
	return &ConvertHandler{
		conv:   conv,
		logger: logger,
		cfg:    cfg,
	}
}

// Handler returns a mux serving /api/convert, /api/config and /api/status.
func (h *ConvertHandler) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", h.serveConvert)
	mux.HandleFunc("/api/config", h.serveConfig)
	mux.HandleFunc("/api/status", h.serveStatus)
	return mux
}

// Status returns a snapshot of the counters.
func (h *ConvertHandler) Status() Status {
	return Status{
		Conversions: h.totalConversions.Load(),
		Fallbacks:   h.totalFallbacks.Load(),
	}
}

func (h *ConvertHandler) serveConvert(w http.ResponseWriter, r *http.Request) {
	var value string
	switch r.Method {
	case http.MethodGet:
		value = r.URL.Query().Get("value")
	case http.MethodPost:
		var req convertRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			h.log().Debug("Rejected convert request", "error", err)
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		value = req.Value
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	res := h.conv.Convert(value)
	h.totalConversions.Add(1)
	if !res.Valid {
		h.totalFallbacks.Add(1)
	}

	h.writeJSON(w, res)
}

func (h *ConvertHandler) serveConfig(w http.ResponseWriter, r *http.Request) {
	if !allowGET(w, r) {
		return
	}
	h.writeJSON(w, h.cfg.Page)
}

func (h *ConvertHandler) serveStatus(w http.ResponseWriter, r *http.Request) {
	if !allowGET(w, r) {
		return
	}
	h.writeJSON(w, h.Status())
}

func allowGET(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (h *ConvertHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", h.cfg.CacheControl)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log().Error("Failed to write response", "error", err)
	}
}

func (h *ConvertHandler) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
