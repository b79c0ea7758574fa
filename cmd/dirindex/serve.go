package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/srashe/dirindex"
	"github.com/srashe/dirindex/config"
	dirhttp "github.com/srashe/dirindex/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the dirindex HTTP server. Directory requests render a
listing; file requests are served from the same root.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "listen host (default: all interfaces)")
	serveCmd.Flags().Int("port", 3000, "listen port")
	serveCmd.Flags().Bool("hidden", false, "include dot-prefixed entries in listings")
	serveCmd.Flags().Bool("icons", false, "show file type icons in HTML listings")
	serveCmd.Flags().String("view", "tiles", "HTML layout (tiles, details)")
	serveCmd.Flags().String("stylesheet", "", "path to a custom stylesheet")
	serveCmd.Flags().String("template", "", "path to a custom page template")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	view, err := dirindex.ParseView(cfg.Listing.View)
	if err != nil {
		return fmt.Errorf("parse view: %w", err)
	}

	fsys := afero.NewOsFs()
	listing, err := dirhttp.Middleware(dirindex.Config{
		Root:       cfg.Listing.Root,
		Fs:         fsys,
		Hidden:     cfg.Listing.Hidden,
		Icons:      cfg.Listing.Icons,
		View:       view,
		Stylesheet: cfg.Listing.Stylesheet,
		Template:   cfg.Listing.Template,
	})
	if err != nil {
		return fmt.Errorf("build listing middleware: %w", err)
	}

	// Directories get a listing, everything else falls through to the
	// file server over the same root.
	httpFs := afero.NewHttpFs(fsys)
	files := http.FileServer(httpFs.Dir(cfg.Listing.Root))

	r := chi.NewRouter()
	r.Use(dirhttp.RequestLogger(slog.Default()))
	if cfg.CORS.Enabled {
		r.Use(dirhttp.CORSHandler(cfg.CORS))
	}
	r.Handle("/*", listing(files))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "root", cfg.Listing.Root, "view", view)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
