package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/colorconv/assets"
	"github.com/MeKo-Tech/colorconv/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live converter page and JSON API",
	Long: `Serve the converter page at /, the conversion API at /api/convert and
/api/status, and optionally a compiled WASM build at /wasm/.

Build the WASM module with GOOS=js GOARCH=wasm go build -o colorconv.wasm ./cmd/wasm
and copy wasm_exec.js from $(go env GOROOT)/lib/wasm next to it.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address (host:port)")
	serveCmd.Flags().String("wasm-dir", "", "Directory containing colorconv.wasm and wasm_exec.js (optional)")
	serveCmd.Flags().String("cache-control", "no-store", "Cache-Control header for API responses")
	serveCmd.Flags().Duration("shutdown-timeout", 5*time.Second, "Grace period for in-flight requests on shutdown")

	mustBind := func(key string, name string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	mustBind("serve.addr", "addr")
	mustBind("serve.wasm_dir", "wasm-dir")
	mustBind("serve.cache_control", "cache-control")
	mustBind("serve.shutdown_timeout", "shutdown-timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	cfg := server.Config{
		Addr:         viper.GetString("serve.addr"),
		WASMDir:      viper.GetString("serve.wasm_dir"),
		CacheControl: viper.GetString("serve.cache_control"),
	}
	shutdownTimeout := viper.GetDuration("serve.shutdown_timeout")

	if cfg.WASMDir != "" {
		if _, err := os.Stat(cfg.WASMDir); err != nil {
			return fmt.Errorf("wasm directory: %w", err)
		}
	}

	conv, err := newConverter()
	if err != nil {
		return err
	}
	cfg.Page = server.NewPageConfig(conv.Config())

	srv := server.New(cfg, server.NewMux(conv, assets.Web(), cfg, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("converter server listening",
		"addr", cfg.Addr,
		"wasm_dir", cfg.WASMDir,
		"default_color", cfg.Page.DefaultColor,
		"theme_threshold", cfg.Page.ThemeThreshold,
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Received interrupt signal, shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
