package etcd

import (
	"context"
	"fmt"
	"time"

	"zonekeeper/domain"
	"zonekeeper/helpers"
	"zonekeeper/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"
)

// healthKey is read to prove a session is usable; the same key etcdctl endpoint health reads.
const healthKey = "health"

var (
	_ interfaces.Connector       = (*Connector)(nil)
	_ interfaces.Session         = (*Session)(nil)
	_ interfaces.Launcher        = (*Launcher)(nil)
	_ interfaces.ReadinessWaiter = (*Launcher)(nil)
)

// Session is an established ensemble client session.
type Session struct {
	client *clientv3.Client
}

// Client exposes the underlying client to services that work with the ensemble.
func (s *Session) Client() *clientv3.Client { return s.client }

// Endpoints returns the endpoints the client was configured with.
func (s *Session) Endpoints() []string { return s.client.Endpoints() }

// Close closes the client.
func (s *Session) Close() error { return s.client.Close() }

// Connector opens sessions with go.etcd.io/etcd/client/v3.
type Connector struct {
	logger log.Logger
}

// NewConnector creates a Connector. Panics on nil logger.
func NewConnector(logger log.Logger) *Connector {
	return &Connector{
		logger: log.WithPrefix(helpers.NilPanic(logger, "adapters.etcd.connector.go: logger is required"), "component", "ensemble_connector"),
	}
}

// Connect creates a client for endpoint and performs one linearizable read; the session is only
// returned once the ensemble has answered within timeout.
func (c *Connector) Connect(ctx context.Context, endpoint domain.EnsembleEndpoint, timeout time.Duration) (interfaces.Session, error) {
	if len(endpoint.Hosts) == 0 {
		return nil, fmt.Errorf("ensemble endpoint has no hosts")
	}
	client, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoint.Hosts,
		DialTimeout: timeout,
		Logger:      zap.NewNop(),
	})
	if err != nil {
		return nil, fmt.Errorf("create ensemble client for %s: %w", endpoint, err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if _, err := client.Get(checkCtx, healthKey); err != nil {
		_ = client.Close()
		level.Debug(c.logger).Log("msg", "ensemble health check failed", "host", endpoint, "err", err)
		return nil, fmt.Errorf("check ensemble %s: %w", endpoint, err)
	}
	return &Session{client: client}, nil
}
