// Package pubsub provides a generic publish/subscribe event system used to
// fan out file watcher notifications, shell output, and log records to the
// UI without coupling producers to the Bubble Tea update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType labels what happened to the payload.
type EventType string

const (
	// File system events published by the watcher.
	FileCreatedEvent  EventType = "file.created"
	FileModifiedEvent EventType = "file.modified"
	FileDeletedEvent  EventType = "file.deleted"
	FileRenamedEvent  EventType = "file.renamed"

	// Shell events published by the interactive shell runner.
	ShellStdoutEvent EventType = "shell.stdout"
	ShellStderrEvent EventType = "shell.stderr"
	ShellExitedEvent EventType = "shell.exited"

	// Log records published by the logger.
	LogEvent EventType = "log"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
