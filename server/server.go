package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ClinicRecords/logger"
	"ClinicRecords/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Options struct {
	WebServerPort string
	CORSOrigins   []string

	JobsEnabled bool
	JobsHandler func()

	// WebServerPreHandler registers routes on the engine before it starts serving.
	WebServerPreHandler func(r *gin.Engine)

	// OnShutdown runs after the listener has drained, in order.
	OnShutdown []func()

	ShutdownTimeout time.Duration
}

func GetDefaultOptions() Options {
	return Options{
		WebServerPort:   "8080",
		CORSOrigins:     []string{"*"},
		JobsEnabled:     true,
		ShutdownTimeout: 10 * time.Second,
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

/*
* gin engine with recovery, request logging, metrics and CORS
* Routes come from the pre handler
 */
func NewEngine(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(logger.Recovery(), logger.Middleware(), metrics.Middleware())
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	}
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r)
	}
	return r
}

// Start serves until SIGINT or SIGTERM.
func Start(opts Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return Run(ctx, opts)
}

/*
* Start the jobs
* Listen in the background
* On ctx cancellation drain the listener, then run the shutdown hooks
 */
func Run(ctx context.Context, opts Options) error {
	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler()
	}
	defer func() {
		for _, fn := range opts.OnShutdown {
			fn()
		}
	}()

	ln, err := net.Listen("tcp", ":"+opts.WebServerPort)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: NewEngine(opts), ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("starting server")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
