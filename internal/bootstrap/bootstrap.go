// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// App runs a long-lived function and releases registered resources when it ends.
type App struct {
	logger          *slog.Logger
	shutdownTimeout time.Duration

	mu    sync.Mutex
	hooks []shutdownHook
}

// New creates a new App. A nil logger means slog.Default().
func New(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		logger:          logger,
		shutdownTimeout: defaultShutdownTimeout,
	}
}

// WithShutdownTimeout bounds how long all shutdown hooks may take together.
func (a *App) WithShutdownTimeout(timeout time.Duration) *App {
	a.shutdownTimeout = timeout
	return a
}

// AddShutdownHook registers a named resource to release on shutdown.
// Hooks run in reverse registration order, so a resource is released before the ones it depends on.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Run executes run until it returns or the process receives SIGINT or SIGTERM.
// Shutdown hooks run in both cases; their errors are joined with the error of run.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutting down", "cause", context.Cause(ctx))
	case runErr = <-errCh:
	}

	return errors.Join(runErr, a.Shutdown(ctx))
}

// Shutdown releases the registered resources without running anything.
// It is for setup failures that happen before Run. Each hook runs at most once.
func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.shutdownTimeout)
	defer cancel()
	return a.shutdown(shutdownCtx)
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		hook := hooks[i]
		if err := hook.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown %s > %w", hook.name, err))
			continue
		}
		a.logger.Debug("released", "resource", hook.name)
	}
	return errors.Join(errs...)
}
