package core

import (
	"errors"
)

var (
	// ErrQueueFull reports a push refused because the queue is at capacity
	// and its overflow policy rejects new events.
	ErrQueueFull = errors.New("event queue is full")
	// ErrBridgeDetached reports an operation that needs a live platform
	// implementation while the event system is inert.
	ErrBridgeDetached = errors.New("no platform implementation attached")
)
