package transport

import "errors"

var (
	// ErrConnectionLost reports that the adapter closed or vanished mid-stream.
	ErrConnectionLost = errors.New("transport: connection lost")
	// ErrConnectionError reports any other read, write or open failure.
	ErrConnectionError = errors.New("transport: connection error")
	ErrClosed          = errors.New("transport: connection closed")
)
