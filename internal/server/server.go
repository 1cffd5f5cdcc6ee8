// Package server hosts the converter page, its JSON API and the WASM build.
package server

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// Config configures the HTTP server.
type Config struct {
	Addr         string
	WASMDir      string
	CacheControl string
	Page         PageConfig
}

// NewMux wires the page, API, optional WASM assets and health check.
// web is the static page root (index.html at its top level).
func NewMux(conv Converter, web fs.FS, cfg Config, logger *slog.Logger) *http.ServeMux {
	api := NewConvertHandler(conv, ConvertHandlerConfig{CacheControl: cfg.CacheControl, Page: cfg.Page}, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/api/", withCORS(api.Handler()))

	if cfg.WASMDir != "" {
		mux.Handle("/wasm/", http.StripPrefix("/wasm/", http.FileServer(http.Dir(cfg.WASMDir))))
	} else {
		mux.HandleFunc("/wasm/", http.NotFound)
	}

	mux.Handle("/", http.FileServer(http.FS(web)))
	return mux
}

// New returns an http.Server for mux with the timeouts used by serve.
func New(cfg Config, mux http.Handler) *http.Server {
	return &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
