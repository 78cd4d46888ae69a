package transport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

type SerialConfig struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

func DefaultSerialConfig() SerialConfig {
	return SerialConfig{Baud: 115200, ReadTimeout: 100 * time.Millisecond}
}

// Opener produces a fresh Port for each connection attempt.
type Opener func() (Port, error)

// OpenSerial opens the adapter 8N1 at cfg.Baud. With a read timeout set, an
// idle line surfaces as a zero-length read instead of blocking forever.
func OpenSerial(cfg SerialConfig) (Port, error) {
	if cfg.Port == "" {
		return nil, fmt.Errorf("%w: open: empty port name", ErrConnectionError)
	}
	mode := &serial.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrConnectionError, cfg.Port, err)
	}
	if cfg.ReadTimeout > 0 {
		if err := p.SetReadTimeout(cfg.ReadTimeout); err != nil {
			p.Close()
			return nil, fmt.Errorf("%w: set read timeout on %s: %v", ErrConnectionError, cfg.Port, err)
		}
	}
	return p, nil
}

// SerialOpener binds cfg into an Opener.
func SerialOpener(cfg SerialConfig) Opener {
	return func() (Port, error) {
		return OpenSerial(cfg)
	}
}

// Ports lists the serial devices visible to the host.
func Ports() ([]string, error) {
	list, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("%w: list ports: %v", ErrConnectionError, err)
	}
	return list, nil
}
