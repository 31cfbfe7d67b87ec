package interfaces

import (
	"context"
	"time"

	"zonekeeper/domain"
)

// Session is one established client session to the coordination ensemble.
//
//go:generate moq -stub -out mock/session.go -pkg mock . Session
type Session interface {
	// Endpoints returns the endpoints the session was established against.
	Endpoints() []string

	// Close ends the session and releases client resources.
	Close() error
}

// Connector opens ensemble sessions.
//
//go:generate moq -stub -out mock/connector.go -pkg mock . Connector
type Connector interface {
	// Connect starts a session against endpoint and returns once it is usable.
	// Returns:
	// 1) (session, nil) when the ensemble answered within timeout;
	// 2) (nil, err) on timeout, refused connection or any transport error.
	Connect(ctx context.Context, endpoint domain.EnsembleEndpoint, timeout time.Duration) (Session, error)
}

// Launcher starts a self-hosted single-node ensemble in the background.
//
//go:generate moq -stub -out mock/launcher.go -pkg mock . Launcher
type Launcher interface {
	// Launch validates the configuration derived from descriptor and dispatches the server run loop.
	// Returns true as soon as the run loop has been dispatched, false when the configuration is invalid.
	// It does not report whether the server is already accepting connections.
	Launch(descriptor *domain.EmbeddedServerDescriptor) bool
}

// ReadinessWaiter is implemented by launchers that can report when a dispatched server accepts clients.
//
//go:generate moq -stub -out mock/readiness_waiter.go -pkg mock . ReadinessWaiter
type ReadinessWaiter interface {
	// WaitReady blocks until the server launched for descriptor is ready or ctx is done.
	WaitReady(ctx context.Context, descriptor *domain.EmbeddedServerDescriptor) error
}

// EnsembleStatus is the read-only view of an acquired ensemble connection.
//
//go:generate moq -stub -out mock/ensemble_status.go -pkg mock . EnsembleStatus
type EnsembleStatus interface {
	State() domain.ConnectionState
	Endpoint() domain.EnsembleEndpoint
	// Embedded returns nil unless the connection went through a self-hosted ensemble.
	Embedded() *domain.EmbeddedServerDescriptor
}
