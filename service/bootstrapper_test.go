package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"zonekeeper/domain"
	"zonekeeper/interfaces"
	"zonekeeper/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRefused = errors.New("dial tcp 127.0.0.1:2379: connect: connection refused")

func testEndpoint() domain.EnsembleEndpoint {
	return domain.EnsembleEndpoint{Hosts: []string{"http://127.0.0.1:2379"}}
}

func testDescriptors() (func() *domain.EmbeddedServerDescriptor, *int) {
	calls := 0
	return func() *domain.EmbeddedServerDescriptor {
		calls++
		return &domain.EmbeddedServerDescriptor{Name: "embedded", DataDir: "/tmp/zk-test", ClientPort: 2379, PeerPort: 2380}
	}, &calls
}

// connectSequence returns a ConnectorMock answering each attempt with the next result.
func connectSequence(results ...error) *mock.ConnectorMock {
	c := &mock.ConnectorMock{}
	c.ConnectFunc = func(ctx context.Context, endpoint domain.EnsembleEndpoint, timeout time.Duration) (interfaces.Session, error) {
		n := len(c.ConnectCalls()) - 1
		if n < len(results) && results[n] != nil {
			return nil, results[n]
		}
		return &mock.SessionMock{EndpointsFunc: func() []string { return endpoint.Hosts }}, nil
	}
	return c
}

// readyLauncher is a launcher that also reports readiness.
type readyLauncher struct {
	*mock.LauncherMock
	*mock.ReadinessWaiterMock
}

func TestNewBootstrapper_Panics(t *testing.T) {
	descriptors, _ := testDescriptors()
	connector := &mock.ConnectorMock{}
	launcher := &mock.LauncherMock{}
	logger := log.NewNopLogger()

	t.Run("connector_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.bootstrapper.go: connector is required", func() {
			NewBootstrapper(nil, launcher, descriptors, logger)
		})
	})
	t.Run("launcher_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.bootstrapper.go: launcher is required", func() {
			NewBootstrapper(connector, nil, descriptors, logger)
		})
	})
	t.Run("descriptors_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.bootstrapper.go: descriptors is required", func() {
			NewBootstrapper(connector, launcher, nil, logger)
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.bootstrapper.go: logger is required", func() {
			NewBootstrapper(connector, launcher, descriptors, nil)
		})
	})
}

func TestBootstrapper_ExternalReachable(t *testing.T) {
	descriptors, descriptorCalls := testDescriptors()
	connector := connectSequence(nil)
	launcher := &mock.LauncherMock{LaunchFunc: func(*domain.EmbeddedServerDescriptor) bool { return true }}

	b := NewBootstrapper(connector, launcher, descriptors, log.NewNopLogger())
	h, err := b.AcquireConnection(context.Background(), testEndpoint(), time.Second)
	require.NoError(t, err)
	require.NotNil(t, h)

	assert.Equal(t, domain.StateConnected, h.State())
	assert.NotNil(t, h.Session())
	assert.Nil(t, h.Embedded())
	assert.Equal(t, testEndpoint(), h.Endpoint())
	assert.Len(t, connector.ConnectCalls(), 1)
	assert.Empty(t, launcher.LaunchCalls())
	assert.Equal(t, 0, *descriptorCalls)
}

func TestBootstrapper_EmbeddedFallback(t *testing.T) {
	tests := []struct {
		name          string
		results       []error
		wantErr       bool
		wantConnected bool
	}{
		{name: "second attempt succeeds", results: []error{errRefused, nil}, wantConnected: true},
		{name: "second attempt fails", results: []error{errRefused, context.DeadlineExceeded}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptors, descriptorCalls := testDescriptors()
			connector := connectSequence(tt.results...)
			launcher := &mock.LauncherMock{LaunchFunc: func(*domain.EmbeddedServerDescriptor) bool { return true }}

			b := NewBootstrapper(connector, launcher, descriptors, log.NewNopLogger())
			h, err := b.AcquireConnection(context.Background(), testEndpoint(), 500*time.Millisecond)
			require.NotNil(t, h)

			calls := connector.ConnectCalls()
			require.Len(t, calls, 2)
			assert.Equal(t, calls[0].Endpoint, calls[1].Endpoint)
			assert.Equal(t, 500*time.Millisecond, calls[1].Timeout)
			require.Len(t, launcher.LaunchCalls(), 1)
			assert.Equal(t, 1, *descriptorCalls)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConnectionError(err))
				assert.False(t, IsEmbeddedLaunchError(err))
				assert.ErrorIs(t, err, context.DeadlineExceeded)
				assert.Equal(t, domain.StateFailed, h.State())
				assert.Nil(t, h.Session())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StateConnected, h.State())
			assert.Same(t, launcher.LaunchCalls()[0].Descriptor, h.Embedded())
		})
	}
}

func TestBootstrapper_LaunchRejected(t *testing.T) {
	descriptors, _ := testDescriptors()
	connector := connectSequence(errRefused, nil)
	launcher := &mock.LauncherMock{LaunchFunc: func(*domain.EmbeddedServerDescriptor) bool { return false }}

	b := NewBootstrapper(connector, launcher, descriptors, log.NewNopLogger())
	h, err := b.AcquireConnection(context.Background(), testEndpoint(), time.Second)
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
	assert.True(t, IsEmbeddedLaunchError(err))
	assert.ErrorIs(t, err, errRefused)
	assert.Contains(t, err.Error(), "data_dir=/tmp/zk-test")

	assert.Len(t, connector.ConnectCalls(), 1)
	assert.Len(t, launcher.LaunchCalls(), 1)
	assert.Equal(t, domain.StateFailed, h.State())
}

func TestBootstrapper_CancelledContextSkipsLaunch(t *testing.T) {
	descriptors, _ := testDescriptors()
	ctx, cancel := context.WithCancel(context.Background())
	connector := &mock.ConnectorMock{
		ConnectFunc: func(ctx context.Context, _ domain.EnsembleEndpoint, _ time.Duration) (interfaces.Session, error) {
			cancel()
			return nil, ctx.Err()
		},
	}
	launcher := &mock.LauncherMock{}

	b := NewBootstrapper(connector, launcher, descriptors, log.NewNopLogger())
	h, err := b.AcquireConnection(ctx, testEndpoint(), time.Second)
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
	assert.Empty(t, launcher.LaunchCalls())
	assert.Equal(t, domain.StateFailed, h.State())
}

func TestBootstrapper_AttemptIsBoundedByTimeout(t *testing.T) {
	descriptors, _ := testDescriptors()
	connector := &mock.ConnectorMock{
		ConnectFunc: func(ctx context.Context, _ domain.EnsembleEndpoint, timeout time.Duration) (interfaces.Session, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(timeout), deadline, timeout)
			return &mock.SessionMock{}, nil
		},
	}

	b := NewBootstrapper(connector, &mock.LauncherMock{}, descriptors, log.NewNopLogger())
	_, err := b.AcquireConnection(context.Background(), testEndpoint(), 200*time.Millisecond)
	require.NoError(t, err)
}

func TestBootstrapper_NilSessionIsAFailedAttempt(t *testing.T) {
	descriptors, _ := testDescriptors()
	connector := &mock.ConnectorMock{}
	launcher := &mock.LauncherMock{LaunchFunc: func(*domain.EmbeddedServerDescriptor) bool { return true }}

	b := NewBootstrapper(connector, launcher, descriptors, log.NewNopLogger())
	_, err := b.AcquireConnection(context.Background(), testEndpoint(), time.Second)
	require.Error(t, err)
	assert.Len(t, connector.ConnectCalls(), 2)
}

func TestBootstrapper_ReadyWait(t *testing.T) {
	newLauncher := func(waitErr error) readyLauncher {
		return readyLauncher{
			LauncherMock: &mock.LauncherMock{LaunchFunc: func(*domain.EmbeddedServerDescriptor) bool { return true }},
			ReadinessWaiterMock: &mock.ReadinessWaiterMock{
				WaitReadyFunc: func(ctx context.Context, _ *domain.EmbeddedServerDescriptor) error {
					_, ok := ctx.Deadline()
					assert.True(t, ok)
					return waitErr
				},
			},
		}
	}

	t.Run("disabled by default", func(t *testing.T) {
		descriptors, _ := testDescriptors()
		launcher := newLauncher(nil)
		b := NewBootstrapper(connectSequence(errRefused, nil), launcher, descriptors, log.NewNopLogger())
		_, err := b.AcquireConnection(context.Background(), testEndpoint(), time.Second)
		require.NoError(t, err)
		assert.Empty(t, launcher.WaitReadyCalls())
	})

	t.Run("waits before the second attempt", func(t *testing.T) {
		descriptors, _ := testDescriptors()
		launcher := newLauncher(nil)
		connector := connectSequence(errRefused, nil)
		b := NewBootstrapper(connector, launcher, descriptors, log.NewNopLogger(), WithReadyWait(time.Second))
		_, err := b.AcquireConnection(context.Background(), testEndpoint(), time.Second)
		require.NoError(t, err)
		require.Len(t, launcher.WaitReadyCalls(), 1)
		assert.Same(t, launcher.LaunchCalls()[0].Descriptor, launcher.WaitReadyCalls()[0].Descriptor)
		assert.Len(t, connector.ConnectCalls(), 2)
	})

	t.Run("not ready still retries once", func(t *testing.T) {
		descriptors, _ := testDescriptors()
		launcher := newLauncher(context.DeadlineExceeded)
		connector := connectSequence(errRefused, nil)
		b := NewBootstrapper(connector, launcher, descriptors, log.NewNopLogger(), WithReadyWait(time.Millisecond))
		h, err := b.AcquireConnection(context.Background(), testEndpoint(), time.Second)
		require.NoError(t, err)
		assert.Equal(t, domain.StateConnected, h.State())
		assert.Len(t, connector.ConnectCalls(), 2)
	})
}

func TestConnectionHandle_Close(t *testing.T) {
	session := &mock.SessionMock{}
	h := newConnectionHandle(testEndpoint())
	assert.Equal(t, domain.StateDisconnected, h.State())

	h.connected(session, nil)
	assert.Equal(t, domain.StateConnected, h.State())

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.Len(t, session.CloseCalls(), 1)
	assert.Equal(t, domain.StateDisconnected, h.State())
	assert.Nil(t, h.Session())
}

func TestConnectionHandle_CloseReturnsSessionError(t *testing.T) {
	closeErr := errors.New("close failed")
	h := newConnectionHandle(testEndpoint())
	h.connected(&mock.SessionMock{CloseFunc: func() error { return closeErr }}, nil)
	assert.ErrorIs(t, h.Close(), closeErr)
}
