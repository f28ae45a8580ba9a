package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const shutdownTimeout = 5 * time.Second

// RunApp serves until ctx is cancelled or the listener fails.
func RunApp(ctx context.Context, config Config) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config, os.Stdout)
	if err != nil {
		return err
	}

	return serveApp(ctx, &serviceContainer, config.ListenAddr)
}

// serveApp owns the started container: it is closed on return and its close error is reported
// when serving itself succeeded.
func serveApp(ctx context.Context, serviceContainer *ServiceContainer, listenAddr string) (err error) {
	serviceContainer.Start()
	defer func() {
		if closeErr := serviceContainer.Close(); err == nil {
			err = closeErr
		}
	}()

	server := &http.Server{
		Addr:    listenAddr,
		Handler: serviceContainer.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	serviceContainer.Logger.Info("spreadsheet server started", "addr", listenAddr, "livePersist", serviceContainer.EditPersister != nil)

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	// hijacked websocket connections are not tracked by Shutdown, the hub closes them
	serviceContainer.RelayHub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return err
}

func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
