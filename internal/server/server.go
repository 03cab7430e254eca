package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shouni/gemini-photo-kit/internal/runner"
	"github.com/shouni/gemini-photo-kit/pkg/generator"
)

// Server は編集 API のハンドラー群です。
type Server struct {
	runner       *runner.EditRunner
	maxBodyBytes int64
}

// New は Server を初期化します。
// loader は generator.RemoteOnly で包まれるため、リクエストから読めるのは data URL と http(s) だけです。
func New(loader generator.SourceLoader, editor generator.PhotoEditor, maxBodyBytes int64) (*Server, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	editRunner, err := runner.NewEditRunner(generator.RemoteOnly(loader), editor)
	if err != nil {
		return nil, err
	}
	return &Server{runner: editRunner, maxBodyBytes: maxBodyBytes}, nil
}

// Router は chi のルーターに各エンドポイントを登録して返します。
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		requestLogger,
	)

	r.Get("/healthz", s.Health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/edit", s.Edit)
		r.Post("/filter", s.Filter)
		r.Post("/adjust", s.Adjust)
	})
	return r
}

// ListenAndServe は addr で待ち受け、ctx が終了したらグレースフルに停止します。
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTPサーバーを起動します", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("HTTPサーバーを停止します")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger は chi の RequestID を含めてアクセスログを slog に出力します。
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"http_request_id", middleware.GetReqID(r.Context()),
		)
	})
}
