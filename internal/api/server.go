package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"xoverlay/pkg/sutureext"
)

// NewServer wraps the API handler in a supervised HTTP server service.
func NewServer(address string, handler http.Handler) sutureext.ServiceFunc {
	return sutureext.NewServiceFunc("api.Server", func(ctx context.Context) error {
		server := &http.Server{
			Addr:    address,
			Handler: handler,
		}

		errC := make(chan error, 1)
		go func() { errC <- server.ListenAndServe() }()

		slog.Info("HTTP server listening", "address", address)

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			<-errC
			return ctx.Err()
		case err := <-errC:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
	})
}
