package etcd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sync"

	"zonekeeper/domain"
	"zonekeeper/helpers"
	"zonekeeper/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.etcd.io/etcd/server/v3/embed"
)

// ErrServerStopped is returned by WaitReady when the embedded server exited before it became ready.
var ErrServerStopped = errors.New("embedded ensemble stopped before it was ready")

// ErrUnknownServer is returned by WaitReady for a descriptor this launcher never dispatched.
var ErrUnknownServer = errors.New("embedded ensemble was not launched by this launcher")

// EmbeddedServer is the supervised handle of one dispatched embedded ensemble.
// The launcher never joins it; the owning service stops it on teardown.
type EmbeddedServer struct {
	descriptor *domain.EmbeddedServerDescriptor

	ready     chan struct{}
	done      chan struct{}
	stop      chan struct{}
	stopOnce  sync.Once
	readyOnce sync.Once

	mu  sync.Mutex
	err error
}

func newEmbeddedServer(d *domain.EmbeddedServerDescriptor) *EmbeddedServer {
	return &EmbeddedServer{
		descriptor: d,
		ready:      make(chan struct{}),
		done:       make(chan struct{}),
		stop:       make(chan struct{}),
	}
}

// Descriptor returns the descriptor the server was launched from.
func (s *EmbeddedServer) Descriptor() *domain.EmbeddedServerDescriptor { return s.descriptor }

// Ready is closed once the server accepts client requests.
func (s *EmbeddedServer) Ready() <-chan struct{} { return s.ready }

// Done is closed when the run loop has exited.
func (s *EmbeddedServer) Done() <-chan struct{} { return s.done }

// Err returns the run loop error, if any, after Done is closed.
func (s *EmbeddedServer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stop terminates the server, waits for the run loop to exit and removes the generated data directory.
func (s *EmbeddedServer) Stop() error {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
	return os.RemoveAll(s.descriptor.DataDir)
}

func (s *EmbeddedServer) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

func (s *EmbeddedServer) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// Launcher starts single-node embedded ensembles on background goroutines.
type Launcher struct {
	logger   log.Logger
	logLevel string
	start    func(*embed.Config) (*embed.Etcd, error)

	mu      sync.Mutex
	servers []*EmbeddedServer
}

// LauncherOption configures a Launcher.
type LauncherOption func(*Launcher)

// WithServerLogLevel sets the log level of the embedded server's own logger (default "error").
func WithServerLogLevel(lvl string) LauncherOption {
	return func(l *Launcher) {
		l.logLevel = lvl
	}
}

// NewLauncher creates a Launcher. Panics on nil logger.
func NewLauncher(logger log.Logger, opts ...LauncherOption) *Launcher {
	l := &Launcher{
		logger:   log.WithPrefix(helpers.NilPanic(logger, "adapters.etcd.launcher.go: logger is required"), "component", "embedded_launcher"),
		logLevel: "error",
		start:    embed.StartEtcd,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch builds and validates the embedded configuration, then dispatches the server on a goroutine.
// It returns false only when the configuration is rejected; failures after dispatch are logged as
// run_loop_error and never reach the caller, which is already retrying its connection.
func (l *Launcher) Launch(descriptor *domain.EmbeddedServerDescriptor) bool {
	if descriptor == nil {
		level.Error(l.logger).Log("msg", "start embedded ensemble error", "err", service.NewEmbeddedLaunchError("descriptor is required", nil))
		return false
	}
	cfg, err := l.config(descriptor)
	if err != nil {
		level.Error(l.logger).Log("msg", "start embedded ensemble error", "data_dir", descriptor.DataDir, "client_port", descriptor.ClientPort, "err", err)
		return false
	}

	srv := newEmbeddedServer(descriptor)
	l.mu.Lock()
	l.servers = append(l.servers, srv)
	l.mu.Unlock()

	go l.run(cfg, srv)
	return true
}

func (l *Launcher) config(d *domain.EmbeddedServerDescriptor) (*embed.Config, error) {
	if d.DataDir == "" {
		return nil, service.NewEmbeddedLaunchError("data directory is required", nil)
	}
	if err := checkPort("client", d.ClientPort); err != nil {
		return nil, err
	}
	if err := checkPort("peer", d.PeerPort); err != nil {
		return nil, err
	}
	if d.ClientPort == d.PeerPort {
		return nil, service.NewEmbeddedLaunchError(fmt.Sprintf("client and peer port must differ, both are %d", d.ClientPort), nil)
	}

	clientURL, err := url.Parse(fmt.Sprintf("http://localhost:%d", d.ClientPort))
	if err != nil {
		return nil, service.NewEmbeddedLaunchError("invalid client url", err)
	}
	peerURL, err := url.Parse(fmt.Sprintf("http://localhost:%d", d.PeerPort))
	if err != nil {
		return nil, service.NewEmbeddedLaunchError("invalid peer url", err)
	}

	cfg := embed.NewConfig()
	if d.Name != "" {
		cfg.Name = d.Name
	}
	cfg.Dir = d.DataDir
	cfg.ListenClientUrls = []url.URL{*clientURL}
	cfg.AdvertiseClientUrls = []url.URL{*clientURL}
	cfg.ListenPeerUrls = []url.URL{*peerURL}
	cfg.AdvertisePeerUrls = []url.URL{*peerURL}
	cfg.InitialCluster = cfg.InitialClusterFromName(cfg.Name)
	cfg.LogLevel = l.logLevel

	if err := cfg.Validate(); err != nil {
		return nil, service.NewEmbeddedLaunchError("embedded ensemble config rejected", err)
	}
	return cfg, nil
}

func checkPort(name string, port int) error {
	if port <= 0 || port > 65535 {
		return service.NewEmbeddedLaunchError(fmt.Sprintf("%s port must be 1-65535, got %d", name, port), nil)
	}
	return nil
}

// run is the background run loop. It owns the embed.Etcd instance until Stop or a server failure.
func (l *Launcher) run(cfg *embed.Config, srv *EmbeddedServer) {
	d := srv.descriptor
	logger := log.With(l.logger, "data_dir", d.DataDir, "client_port", d.ClientPort)
	defer close(srv.done)
	defer d.SetRunning(false)

	e, err := l.start(cfg)
	if err != nil {
		runErr := service.NewRunLoopError("start embedded ensemble error", err)
		srv.fail(runErr)
		level.Error(logger).Log("msg", "embedded ensemble failed", "err", runErr)
		return
	}
	defer e.Close()

	select {
	case <-e.Server.ReadyNotify():
		d.SetRunning(true)
		srv.markReady()
		level.Info(logger).Log("msg", "embedded ensemble ready")
	case err := <-e.Err():
		l.runFailed(logger, srv, err)
		return
	case <-srv.stop:
		return
	}

	select {
	case err := <-e.Err():
		l.runFailed(logger, srv, err)
	case <-e.Server.StopNotify():
		l.runFailed(logger, srv, errors.New("embedded ensemble server stopped"))
	case <-srv.stop:
		level.Info(logger).Log("msg", "embedded ensemble stopping")
	}
}

func (l *Launcher) runFailed(logger log.Logger, srv *EmbeddedServer, err error) {
	runErr := service.NewRunLoopError("embedded ensemble run loop error", err)
	srv.fail(runErr)
	level.Error(logger).Log("msg", "embedded ensemble failed", "err", runErr)
}

// WaitReady blocks until the server dispatched for descriptor is ready, has exited, or ctx is done.
func (l *Launcher) WaitReady(ctx context.Context, descriptor *domain.EmbeddedServerDescriptor) error {
	srv := l.server(descriptor)
	if srv == nil {
		return ErrUnknownServer
	}
	select {
	case <-srv.Ready():
		return nil
	case <-srv.Done():
		if err := srv.Err(); err != nil {
			return err
		}
		return ErrServerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Launcher) server(descriptor *domain.EmbeddedServerDescriptor) *EmbeddedServer {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.servers {
		if s.descriptor == descriptor {
			return s
		}
	}
	return nil
}

// Servers returns every server dispatched by this launcher, running or not.
func (l *Launcher) Servers() []*EmbeddedServer {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*EmbeddedServer, len(l.servers))
	copy(out, l.servers)
	return out
}

// Close stops every dispatched server and removes their data directories.
func (l *Launcher) Close() error {
	var errs []error
	for _, s := range l.Servers() {
		if err := s.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
