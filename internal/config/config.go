package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/cbusctl/internal/protocol/command"
	"github.com/danmuck/cbusctl/internal/protocol/header"
	"github.com/danmuck/cbusctl/internal/transport"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Serial    SerialConfig
	Node      NodeConfig
	Reconnect ReconnectConfig
	Metrics   MetricsConfig
}

type SerialConfig struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

type NodeConfig struct {
	CANID         uint8
	NodeNumber    uint16
	MajorPriority uint8
}

type ReconnectConfig struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Jitter       bool
	MaxAttempts  int
}

type MetricsConfig struct {
	// Addr is the listen address for /health and /metrics. Empty disables the server.
	Addr string
}

func Default() Config {
	serial := transport.DefaultSerialConfig()
	backoff := transport.DefaultBackoff()
	return Config{
		Serial: SerialConfig{
			Baud:        serial.Baud,
			ReadTimeout: serial.ReadTimeout,
		},
		Node: NodeConfig{
			CANID:         125,
			MajorPriority: header.MajorNormal,
		},
		Reconnect: ReconnectConfig{
			InitialDelay: backoff.InitialDelay,
			MaxDelay:     backoff.MaxDelay,
			Multiplier:   backoff.Multiplier,
			Jitter:       backoff.Jitter,
			MaxAttempts:  backoff.MaxAttempts,
		},
	}
}

type fileConfig struct {
	Serial struct {
		Port        string `toml:"port"`
		Baud        int    `toml:"baud"`
		ReadTimeout string `toml:"read_timeout"`
	} `toml:"serial"`
	Node struct {
		CANID         int `toml:"can_id"`
		NodeNumber    int `toml:"node_number"`
		MajorPriority int `toml:"major_priority"`
	} `toml:"node"`
	Reconnect struct {
		InitialDelay string  `toml:"initial_delay"`
		MaxDelay     string  `toml:"max_delay"`
		Multiplier   float64 `toml:"multiplier"`
		Jitter       bool    `toml:"jitter"`
		MaxAttempts  int     `toml:"max_attempts"`
	} `toml:"reconnect"`
	Metrics struct {
		Addr string `toml:"addr"`
	} `toml:"metrics"`
}

// Load layers the keys present in path over Default and validates the result.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %s", ErrInvalid, undecoded[0])
	}
	cfg, err := apply(Default(), raw, meta)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func apply(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	var err error
	if meta.IsDefined("serial", "port") {
		cfg.Serial.Port = strings.TrimSpace(raw.Serial.Port)
	}
	if meta.IsDefined("serial", "baud") {
		cfg.Serial.Baud = raw.Serial.Baud
	}
	if meta.IsDefined("serial", "read_timeout") {
		if cfg.Serial.ReadTimeout, err = parseDuration("serial.read_timeout", raw.Serial.ReadTimeout); err != nil {
			return Config{}, err
		}
	}

	if meta.IsDefined("node", "can_id") {
		if raw.Node.CANID < 0 || raw.Node.CANID > int(header.MaxCANID) {
			return Config{}, fmt.Errorf("%w: node.can_id %d outside 0..%d", ErrInvalid, raw.Node.CANID, header.MaxCANID)
		}
		cfg.Node.CANID = uint8(raw.Node.CANID)
	}
	if meta.IsDefined("node", "node_number") {
		if raw.Node.NodeNumber < 0 || raw.Node.NodeNumber > 0xFFFF {
			return Config{}, fmt.Errorf("%w: node.node_number %d outside 0..65535", ErrInvalid, raw.Node.NodeNumber)
		}
		cfg.Node.NodeNumber = uint16(raw.Node.NodeNumber)
	}
	if meta.IsDefined("node", "major_priority") {
		if raw.Node.MajorPriority < 0 || raw.Node.MajorPriority > int(header.MaxPriority) {
			return Config{}, fmt.Errorf("%w: node.major_priority %d outside 0..%d", ErrInvalid, raw.Node.MajorPriority, header.MaxPriority)
		}
		cfg.Node.MajorPriority = uint8(raw.Node.MajorPriority)
	}

	if meta.IsDefined("reconnect", "initial_delay") {
		if cfg.Reconnect.InitialDelay, err = parseDuration("reconnect.initial_delay", raw.Reconnect.InitialDelay); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("reconnect", "max_delay") {
		if cfg.Reconnect.MaxDelay, err = parseDuration("reconnect.max_delay", raw.Reconnect.MaxDelay); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("reconnect", "multiplier") {
		cfg.Reconnect.Multiplier = raw.Reconnect.Multiplier
	}
	if meta.IsDefined("reconnect", "jitter") {
		cfg.Reconnect.Jitter = raw.Reconnect.Jitter
	}
	if meta.IsDefined("reconnect", "max_attempts") {
		cfg.Reconnect.MaxAttempts = raw.Reconnect.MaxAttempts
	}

	if meta.IsDefined("metrics", "addr") {
		cfg.Metrics.Addr = strings.TrimSpace(raw.Metrics.Addr)
	}
	return cfg, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func (c Config) Validate() error {
	switch {
	case c.Serial.Port == "":
		return fmt.Errorf("%w: serial.port is required", ErrInvalid)
	case c.Serial.Baud <= 0:
		return fmt.Errorf("%w: serial.baud must be positive", ErrInvalid)
	case c.Serial.ReadTimeout < 0:
		return fmt.Errorf("%w: serial.read_timeout is negative", ErrInvalid)
	case c.Node.CANID > header.MaxCANID:
		return fmt.Errorf("%w: node.can_id exceeds %d", ErrInvalid, header.MaxCANID)
	case c.Node.MajorPriority > header.MaxPriority:
		return fmt.Errorf("%w: node.major_priority exceeds %d", ErrInvalid, header.MaxPriority)
	case c.Reconnect.InitialDelay < 0 || c.Reconnect.MaxDelay < 0:
		return fmt.Errorf("%w: reconnect delays must not be negative", ErrInvalid)
	case c.Reconnect.Multiplier < 1:
		return fmt.Errorf("%w: reconnect.multiplier must be at least 1", ErrInvalid)
	case c.Reconnect.MaxAttempts < 0:
		return fmt.Errorf("%w: reconnect.max_attempts is negative", ErrInvalid)
	}
	return nil
}

func (c Config) SerialConfig() transport.SerialConfig {
	return transport.SerialConfig{
		Port:        c.Serial.Port,
		Baud:        c.Serial.Baud,
		ReadTimeout: c.Serial.ReadTimeout,
	}
}

func (c Config) Backoff() transport.BackoffConfig {
	return transport.BackoffConfig{
		InitialDelay: c.Reconnect.InitialDelay,
		Multiplier:   c.Reconnect.Multiplier,
		MaxDelay:     c.Reconnect.MaxDelay,
		Jitter:       c.Reconnect.Jitter,
		MaxAttempts:  c.Reconnect.MaxAttempts,
	}
}

// Builder returns a command builder carrying this node's identity.
func (c Config) Builder() command.Builder {
	b := command.New(c.Node.CANID).WithNodeNumber(c.Node.NodeNumber)
	b.Major = c.Node.MajorPriority
	return b
}
