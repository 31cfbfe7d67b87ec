package domain

import (
	"fmt"
	"strings"
	"sync"
)

// ConnectionState is the lifecycle state of one logical ensemble session.
type ConnectionState int32

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
	StateFailed
)

func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// EnsembleEndpoint is the address list of the target coordination ensemble.
// Hosts always carry a scheme (http:// is added when missing).
type EnsembleEndpoint struct {
	Hosts []string
}

// ParseEnsembleEndpoint splits a comma separated host list ("localhost:2379,10.0.0.2:2379").
func ParseEnsembleEndpoint(raw string) (EnsembleEndpoint, error) {
	var hosts []string
	for _, h := range strings.Split(raw, ",") {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.Contains(h, "://") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}
	if len(hosts) == 0 {
		return EnsembleEndpoint{}, fmt.Errorf("ensemble endpoint %q has no hosts", raw)
	}
	return EnsembleEndpoint{Hosts: hosts}, nil
}

func (e EnsembleEndpoint) String() string {
	return strings.Join(e.Hosts, ",")
}

// EmbeddedServerDescriptor describes one self-hosted single-node ensemble instance.
// A fresh descriptor (and data directory) is generated for every fallback attempt.
type EmbeddedServerDescriptor struct {
	Name       string
	DataDir    string
	ClientPort int
	PeerPort   int

	mu      sync.Mutex
	running bool
}

// SetRunning flips the running flag; the launcher calls it from the background goroutine.
func (d *EmbeddedServerDescriptor) SetRunning(running bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = running
}

// Running reports whether the embedded server is currently serving.
func (d *EmbeddedServerDescriptor) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}
