package notify

import (
	"context"
	"sync"
)

// Note is a notification captured by Recorder.
type Note struct {
	Title string
	Body  string
}

// Recorder is an in-memory Notifier for tests and headless runs.
type Recorder struct {
	mu         sync.Mutex
	permission Permission
	err        error
	notes      []Note
	requests   int
}

// NewRecorder returns a recorder that answers permission requests with
// permission and fails every Notify with err (nil for success).
func NewRecorder(permission Permission, err error) *Recorder {
	return &Recorder{permission: permission, err: err}
}

func (recorder *Recorder) RequestPermission(context.Context) (Permission, error) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.requests++
	return recorder.permission, nil
}

func (recorder *Recorder) Notify(_ context.Context, title, body string) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.notes = append(recorder.notes, Note{Title: title, Body: body})
	return recorder.err
}

// Notes returns a copy of every Notify call so far.
func (recorder *Recorder) Notes() []Note {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]Note(nil), recorder.notes...)
}

// Requests returns the number of permission requests.
func (recorder *Recorder) Requests() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.requests
}
