package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"zonekeeper/adapters/myredis"
	"zonekeeper/config"
	"zonekeeper/domain"
	"zonekeeper/interfaces"
	"zonekeeper/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envGRPCPort   = "SERVICE_PORT_GRPC"
	envConfigPath = "CONFIG_PATH"
	envRedisAddr  = "CONFIG_REDIS_ADDR"
	envRedisKey   = "CONFIG_REDIS_KEY"
)

// ZonekeeperConfig holds the process settings read from the environment by LoadConfig.
// ConfigPath and RedisAddr are optional property layers; see BuildSource.
type ZonekeeperConfig struct {
	HTTPPort   int
	GRPCPort   int
	ConfigPath string
	RedisAddr  string
	RedisKey   string
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP and SERVICE_PORT_GRPC are required, CONFIG_PATH and CONFIG_REDIS_ADDR are optional.
func LoadConfig() (*ZonekeeperConfig, error) {
	httpPort, err := portFromEnv(envHTTPPort)
	if err != nil {
		return nil, err
	}
	grpcPort, err := portFromEnv(envGRPCPort)
	if err != nil {
		return nil, err
	}

	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath != "" && !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}

	redisKey := strings.TrimSpace(os.Getenv(envRedisKey))
	if redisKey == "" {
		redisKey = myredis.DefaultConfigKey
	}

	return &ZonekeeperConfig{
		HTTPPort:   httpPort,
		GRPCPort:   grpcPort,
		ConfigPath: configPath,
		RedisAddr:  strings.TrimSpace(os.Getenv(envRedisAddr)),
		RedisKey:   redisKey,
	}, nil
}

func portFromEnv(name string) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", name, port)
	}
	return port, nil
}

// BuildSource stacks the property layers, highest precedence first:
// environment overlay, Redis hash (CONFIG_REDIS_ADDR), YAML file (CONFIG_PATH), built-in defaults.
// Remote layers are read once; the Redis client is closed before returning.
func BuildSource(ctx context.Context, cfg *ZonekeeperConfig, logger log.Logger) (interfaces.ConfigSource, error) {
	layers := config.Layered{config.NewEnvSource()}

	if cfg.RedisAddr != "" {
		client, err := myredis.NewRedisUniversalClient(cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envRedisAddr, err)
		}
		defer client.Close()

		readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		remote, err := myredis.LoadHashSource(readCtx, client, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		level.Info(logger).Log("msg", "Loaded properties from Redis", "key", cfg.RedisKey, "count", len(remote))
		layers = append(layers, remote)
	}

	if cfg.ConfigPath != "" {
		file, err := config.LoadFile(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", cfg.ConfigPath, err)
		}
		level.Info(logger).Log("msg", "Loaded properties from file", "path", cfg.ConfigPath, "count", len(file))
		layers = append(layers, file)
	}

	return append(layers, config.Defaults(os.TempDir())), nil
}

// EnsembleSettings are the startup properties under "ensemble.".
type EnsembleSettings struct {
	Host           string
	Timeout        time.Duration
	RootNode       string
	ZoneDefinition string

	Endpoint domain.EnsembleEndpoint `bind:"-"`
	Embedded EmbeddedSettings        `bind:"-"`
}

// EmbeddedSettings are the fallback server properties under "ensemble.embedded.".
type EmbeddedSettings struct {
	ClientPort int
	PeerPort   int
	DataRoot   string
	ReadyWait  time.Duration
}

// LoadSettings binds and validates the ensemble properties.
// ensemble.host and a positive ensemble.timeout are required; ensemble.zone_definition must be present but may be empty.
func LoadSettings(src interfaces.ConfigSource) (*EnsembleSettings, error) {
	var s EnsembleSettings
	errs := service.Bind(&s, "ensemble", src)
	errs = append(errs, service.Bind(&s.Embedded, "ensemble.embedded", src)...)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if strings.TrimSpace(s.Host) == "" {
		return nil, fmt.Errorf("%s is required", config.KeyEnsembleHost)
	}
	endpoint, err := domain.ParseEnsembleEndpoint(s.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.KeyEnsembleHost, err)
	}
	s.Endpoint = endpoint

	if s.Timeout <= 0 {
		return nil, fmt.Errorf("%s must be a positive number of milliseconds", config.KeyEnsembleTimeout)
	}
	if _, ok := src.Lookup(config.KeyZoneDefinition); !ok {
		return nil, fmt.Errorf("%s is required", config.KeyZoneDefinition)
	}
	if s.Embedded.DataRoot == "" {
		return nil, fmt.Errorf("%s is required", config.KeyEmbeddedDataRoot)
	}
	return &s, nil
}
