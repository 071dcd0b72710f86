package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/krazyTry/vyper-go/internal/metrics"
	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// New builds the router: the redeem logic endpoints plus /metrics.
func New(client *rlf.RedeemLogicFarming, defaults *rlf.RedeemLogicConfig, m *metrics.Metrics, logger zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	NewRedeemLogic(client, defaults).Mount(router, "/redeem-logic")
	router.Path("/metrics").
		Methods(http.MethodGet).
		Name("GET /metrics").
		Handler(m.Handler())
	router.Use(requestLogger(logger))
	return router
}

func requestLogger(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			name := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
				name = route.GetName()
			}
			logger.Debug().
				Str("route", name).
				Str("remote", r.RemoteAddr).
				Dur("elapsed", time.Since(start)).
				Msg("api request")
		})
	}
}

// Serve runs handler on addr until ctx is done.
func Serve(ctx context.Context, addr string, handler http.Handler, readTimeout, writeTimeout time.Duration, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("api server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info().Msg("api server stopping")
	return srv.Shutdown(shutdownCtx)
}
