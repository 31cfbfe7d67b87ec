package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"zonekeeper/domain"
	"zonekeeper/helpers"
	"zonekeeper/interfaces"
	"zonekeeper/observability"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ConnectionHandle is one logical session to the ensemble. It is produced by a single
// Bootstrapper.AcquireConnection call and is read-only for everybody else, except Close on teardown.
type ConnectionHandle struct {
	endpoint domain.EnsembleEndpoint
	state    atomic.Int32

	mu       sync.Mutex
	session  interfaces.Session
	embedded *domain.EmbeddedServerDescriptor
}

func newConnectionHandle(endpoint domain.EnsembleEndpoint) *ConnectionHandle {
	h := &ConnectionHandle{endpoint: endpoint}
	h.setState(domain.StateDisconnected)
	return h
}

func (h *ConnectionHandle) setState(s domain.ConnectionState) {
	h.state.Store(int32(s))
}

func (h *ConnectionHandle) connected(session interfaces.Session, embedded *domain.EmbeddedServerDescriptor) {
	h.mu.Lock()
	h.session = session
	h.embedded = embedded
	h.mu.Unlock()
	h.setState(domain.StateConnected)
}

// State returns the current session state.
func (h *ConnectionHandle) State() domain.ConnectionState {
	return domain.ConnectionState(h.state.Load())
}

// Endpoint returns the endpoint the handle was acquired for.
func (h *ConnectionHandle) Endpoint() domain.EnsembleEndpoint {
	return h.endpoint
}

// Session returns the live session, or nil unless the handle is connected.
func (h *ConnectionHandle) Session() interfaces.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session
}

// Embedded returns the descriptor of the embedded ensemble the session was established through,
// or nil when the external ensemble answered on the first attempt.
func (h *ConnectionHandle) Embedded() *domain.EmbeddedServerDescriptor {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.embedded
}

// Close ends the session and moves the handle to Disconnected. Idempotent.
func (h *ConnectionHandle) Close() error {
	h.mu.Lock()
	session := h.session
	h.session = nil
	h.mu.Unlock()

	h.setState(domain.StateDisconnected)
	if session == nil {
		return nil
	}
	return session.Close()
}

// Bootstrapper resolves a working ensemble session at startup: the configured endpoint first, then,
// only if that fails, one embedded launch followed by exactly one more attempt against the same endpoint.
// There is no polling loop; runtime reconnection is the client library's concern.
type Bootstrapper struct {
	connector   interfaces.Connector
	launcher    interfaces.Launcher
	descriptors func() *domain.EmbeddedServerDescriptor
	readyWait   time.Duration
	logger      log.Logger
}

// BootstrapperOption configures optional Bootstrapper behaviour.
type BootstrapperOption func(*Bootstrapper)

// WithReadyWait makes the bootstrapper wait up to d for the embedded server to report readiness before
// the second attempt, when the launcher implements interfaces.ReadinessWaiter. Zero (the default) keeps
// the immediate retry, so the second attempt may race the embedded server's listener.
func WithReadyWait(d time.Duration) BootstrapperOption {
	return func(b *Bootstrapper) {
		b.readyWait = d
	}
}

// NewBootstrapper creates a Bootstrapper. descriptors is called once per fallback and must return a fresh
// descriptor (new data directory) every time. Panics on nil connector, launcher, descriptors or logger.
func NewBootstrapper(
	connector interfaces.Connector,
	launcher interfaces.Launcher,
	descriptors func() *domain.EmbeddedServerDescriptor,
	logger log.Logger,
	opts ...BootstrapperOption,
) *Bootstrapper {
	b := &Bootstrapper{
		connector:   helpers.NilPanic(connector, "service.bootstrapper.go: connector is required"),
		launcher:    helpers.NilPanic(launcher, "service.bootstrapper.go: launcher is required"),
		descriptors: helpers.NilPanic(descriptors, "service.bootstrapper.go: descriptors is required"),
		logger:      log.WithPrefix(helpers.NilPanic(logger, "service.bootstrapper.go: logger is required"), "component", "bootstrapper"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AcquireConnection returns a Connected handle or a connection_error.
//
// The returned handle is never nil: on error it is in StateFailed and holds no session, so callers can
// still report its state. A rejected embedded configuration is wrapped as embedded_launch_error inside
// the connection_error. Each attempt is bounded by timeout; the embedded server itself has no timeout.
func (b *Bootstrapper) AcquireConnection(ctx context.Context, endpoint domain.EnsembleEndpoint, timeout time.Duration) (*ConnectionHandle, error) {
	h := newConnectionHandle(endpoint)
	h.setState(domain.StateConnecting)

	session, err := b.attempt(ctx, endpoint, timeout, observability.PhaseExternal)
	if err == nil {
		level.Info(b.logger).Log("msg", "ensemble connected", "host", endpoint)
		h.connected(session, nil)
		return h, nil
	}
	level.Warn(b.logger).Log("msg", "ensemble unreachable, starting embedded ensemble", "host", endpoint, "err", err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		h.setState(domain.StateFailed)
		return h, NewConnectionError(fmt.Sprintf("fail to connect ensemble %s", endpoint), ctxErr)
	}

	descriptor := b.descriptors()
	launched := b.launcher.Launch(descriptor)
	observability.RecordEmbeddedLaunch(launched)
	if !launched {
		h.setState(domain.StateFailed)
		launchErr := NewEmbeddedLaunchError(
			fmt.Sprintf("embedded ensemble rejected (data_dir=%s client_port=%d)", descriptor.DataDir, descriptor.ClientPort),
			err,
		)
		level.Error(b.logger).Log("msg", "embedded ensemble not started", "host", endpoint, "err", launchErr)
		return h, NewConnectionError(fmt.Sprintf("fail to connect ensemble %s", endpoint), launchErr)
	}
	level.Info(b.logger).Log("msg", "embedded ensemble dispatched", "data_dir", descriptor.DataDir, "client_port", descriptor.ClientPort)

	b.waitReady(ctx, descriptor)

	session, err = b.attempt(ctx, endpoint, timeout, observability.PhaseEmbedded)
	if err != nil {
		h.setState(domain.StateFailed)
		level.Error(b.logger).Log("msg", "embedded ensemble not reachable", "host", endpoint, "err", err)
		return h, NewConnectionError(fmt.Sprintf("fail to connect ensemble %s after embedded launch", endpoint), err)
	}

	level.Info(b.logger).Log("msg", "embedded ensemble connected", "host", endpoint, "data_dir", descriptor.DataDir)
	h.connected(session, descriptor)
	return h, nil
}

func (b *Bootstrapper) attempt(ctx context.Context, endpoint domain.EnsembleEndpoint, timeout time.Duration, phase string) (interfaces.Session, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	session, err := b.connector.Connect(attemptCtx, endpoint, timeout)
	if err == nil && session == nil {
		err = fmt.Errorf("connector returned no session")
	}
	observability.RecordConnectAttempt(phase, err == nil)
	return session, err
}

func (b *Bootstrapper) waitReady(ctx context.Context, descriptor *domain.EmbeddedServerDescriptor) {
	if b.readyWait <= 0 {
		return
	}
	waiter, ok := b.launcher.(interfaces.ReadinessWaiter)
	if !ok {
		return
	}
	waitCtx, cancel := context.WithTimeout(ctx, b.readyWait)
	defer cancel()
	if err := waiter.WaitReady(waitCtx, descriptor); err != nil {
		level.Warn(b.logger).Log("msg", "embedded ensemble not ready, retrying anyway", "data_dir", descriptor.DataDir, "err", err)
	}
}
