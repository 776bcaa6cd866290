package notify

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"golang.org/x/time/rate"
)

// DesktopOption configures a Desktop notifier.
type DesktopOption func(*Desktop)

// WithRate limits delivered notifications to every per interval with the
// given burst.
func WithRate(every time.Duration, burst int) DesktopOption {
	return func(desktop *Desktop) {
		desktop.limiter = rate.NewLimiter(rate.Every(every), burst)
	}
}

// WithDisabled makes every permission request come back denied.
func WithDisabled(disabled bool) DesktopOption {
	return func(desktop *Desktop) {
		desktop.disabled = disabled
	}
}

// Desktop sends notifications through the fyne app. Nothing is sent until
// RequestPermission has been granted.
type Desktop struct {
	app      fyne.App
	limiter  *rate.Limiter
	disabled bool

	mu         sync.Mutex
	permission Permission
}

// NewDesktop creates a notifier for app. A nil app yields a notifier that
// reports notifications as unavailable.
func NewDesktop(app fyne.App, opts ...DesktopOption) *Desktop {
	desktop := &Desktop{
		app:        app,
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 3),
		permission: PermissionDenied,
	}
	for _, opt := range opts {
		opt(desktop)
	}
	return desktop
}

// RequestPermission grants notifications unless the app is missing or the
// user disabled them in settings.
func (desktop *Desktop) RequestPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return PermissionUnavailable, err
	}

	desktop.mu.Lock()
	defer desktop.mu.Unlock()

	permission := PermissionGranted
	switch {
	case desktop.app == nil:
		permission = PermissionUnavailable
	case desktop.disabled:
		permission = PermissionDenied
	}
	desktop.permission = permission
	return permission, nil
}

// SetDisabled switches notifications off or back on. Turning them off
// revokes a granted permission; turning them on again needs a new request.
func (desktop *Desktop) SetDisabled(disabled bool) {
	desktop.mu.Lock()
	defer desktop.mu.Unlock()
	desktop.disabled = disabled
	if disabled {
		desktop.permission = PermissionDenied
	}
}

// Notify shows a desktop notification.
func (desktop *Desktop) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	desktop.mu.Lock()
	permission := desktop.permission
	desktop.mu.Unlock()
	if permission != PermissionGranted {
		return ErrNotPermitted
	}
	if !desktop.limiter.Allow() {
		return ErrRateLimited
	}

	desktop.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}
