// Package notify delivers interval-completion notifications to the desktop.
package notify

import (
	"context"
	"errors"
)

// Permission is the outcome of a permission request.
type Permission string

const (
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionUnavailable Permission = "unavailable"
)

var (
	// ErrNotPermitted is returned by Notify before permission was granted.
	ErrNotPermitted = errors.New("notifications not permitted")
	// ErrRateLimited is returned when notifications arrive faster than allowed.
	ErrRateLimited = errors.New("notification rate limited")
)

// Notifier is the platform notification capability.
type Notifier interface {
	RequestPermission(ctx context.Context) (Permission, error)
	Notify(ctx context.Context, title, body string) error
}
