package gin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginlib "github.com/gin-gonic/gin"

	"farm_hub/internal/config"
	"farm_hub/pkg/logger"
)

type Server struct {
	engine          *ginlib.Engine
	addr            string
	shutdownTimeout time.Duration
	log             logger.Logger
}

// NewEngine returns an engine with panic recovery and request logging.
func NewEngine(log logger.Logger, env string) *ginlib.Engine {
	if env == "production" || env == "prod" {
		ginlib.SetMode(ginlib.ReleaseMode)
	}
	r := ginlib.New()
	r.Use(ginlib.Recovery(), RequestLogger(log))
	return r
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine, log logger.Logger) *Server {
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Server{
		engine:          engine,
		addr:            cfg.Address(),
		shutdownTimeout: timeout,
		log:             log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	if s.engine == nil {
		return fmt.Errorf("gin engine is nil")
	}

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", logger.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
