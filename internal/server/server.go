// Package server exposes the transcoding pipeline over HTTP: multipart
// uploads in, one bundled ZIP download out.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/maruwtc/epubcc"
	"github.com/maruwtc/epubcc/internal/config"
)

// uploadField is the multipart form field carrying the archives.
const uploadField = "files"

// bundleFilename is the download name of the outer bundle.
const bundleFilename = "converted-epubs.zip"

// Server handles upload/convert/download requests.
type Server struct {
	cfg        *config.Config
	transcoder *epubcc.Transcoder
	logger     *slog.Logger
}

// New creates a Server. The logger may be nil.
func New(cfg *config.Config, t *epubcc.Transcoder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{cfg: cfg, transcoder: t, logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	// Method-qualified ServeMux patterns ("POST /api/convert") need Go 1.22;
	// guard the method explicitly so the routes work on Go 1.21.
	requireMethod := func(method string, h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				w.Header().Set("Allow", method)
				http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
				return
			}
			h(w, r)
		}
	}
	mux.HandleFunc("/api/convert", requireMethod(http.MethodPost, s.handleConvert))
	mux.HandleFunc("/healthz", requireMethod(http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}))
	return mux
}

// ListenAndServe runs the server until ctx is canceled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Bind,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "bind", s.cfg.Server.Bind)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("parse upload: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	inputs, err := readUploads(r.MultipartForm.File[uploadField])
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	bundle, err := s.transcoder.ProcessBatch(r.Context(), inputs)
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bundleFilename))
	w.Header().Set("Content-Length", fmt.Sprint(len(bundle)))
	if _, err := w.Write(bundle); err != nil {
		s.logger.Warn("write response", "error", err)
		return
	}
	s.logger.Info("batch converted",
		"archives", len(inputs),
		"bundle_bytes", len(bundle),
		"elapsed", time.Since(start))
}

// readUploads collects uploaded archives, sniffing each part so that a
// stray text or image upload is rejected with a clear message instead of a
// parse failure deep in the pipeline.
func readUploads(parts []*multipart.FileHeader) ([]epubcc.Input, error) {
	inputs := make([]epubcc.Input, 0, len(parts))
	for _, part := range parts {
		f, err := part.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %q: %w", part.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read upload %q: %w", part.Filename, err)
		}
		mtype := mimetype.Detect(data)
		if !mtype.Is("application/zip") && !mtype.Is("application/epub+zip") {
			return nil, fmt.Errorf("upload %q is %s, not a ZIP container", part.Filename, mtype)
		}
		inputs = append(inputs, epubcc.Input{Name: part.Filename, Data: data})
	}
	return inputs, nil
}

// statusFor maps pipeline errors to HTTP statuses: bad requests for empty
// batches, unprocessable for archives we could read but not convert, and
// internal errors for bundle serialization.
func statusFor(err error) int {
	var bundleErr *epubcc.BundleError
	switch {
	case epubcc.IsEmptyBatch(err):
		return http.StatusBadRequest
	case errors.As(err, &bundleErr):
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed", "status", status, "error", err)
	http.Error(w, err.Error(), status)
}
