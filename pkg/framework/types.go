package framework

import (
	"context"
	"time"
)

// Named is anything that can report its own name.
type Named interface {
	Name() string
}

// Runnable is a long-running activity that stops when its context
// is canceled.
type Runnable interface {
	Run(context.Context) error
}

// Controller is one step of controlling logic, invoked once per
// loop iteration.
type Controller interface {
	Control(ControlContext) error
}

// ControlFunc adapts a plain func into a Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(cc ControlContext) error {
	return f(cc)
}

// TimeSource tells controlling logic what time it is.
type TimeSource interface {
	Time() time.Time
}

// ControlContext is handed to every Controller during an iteration.
type ControlContext interface {
	TimeSource
	// Context retrieves the context.Context the loop runs under.
	Context() context.Context
	// PriorityLevel is the level the current Controller was
	// registered at.
	PriorityLevel() int
	// Messages exposes messages collected before this iteration.
	Messages() MessageStore

	LoopControl
}

// LoopControl is the part of the loop safe to touch from outside an
// iteration, e.g. from a Runnable goroutine.
type LoopControl interface {
	// PostMessage enqueues the message for the next iteration.
	PostMessage(Message)
	// TriggerNext runs the next iteration without waiting for the
	// tick interval.
	TriggerNext()
}

// PriorityLevels is the number of controller priority levels.
const PriorityLevels int = 16

// Controllers run in ascending priority-level order within an
// iteration.
const (
	PrLvTop    int = 0
	PrLvHigh   int = 4
	PrLvNormal int = 8
	PrLvLow    int = 12
	PrLvIdle   int = PriorityLevels - 1

	// PrLvSense is where sensor inputs are folded into state.
	PrLvSense = PrLvHigh
	// PrLvControl is where decisions are made.
	PrLvControl = PrLvNormal
	// PrLvActuate is where decisions reach the hardware.
	PrLvActuate = PrLvLow
)
