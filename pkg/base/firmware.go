package base

import (
	"context"
	"io"
	"math"
	"sync"
	"time"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
	l0 "github.com/robomotive/diffbase.go/pkg/l0/comm"
)

// Firmware simulates the base firmware behind an io.ReadWriter. It
// accepts drive command frames, integrates wheel motion, and emits
// periodic feedback frames with wrapping tick counters, so the whole
// driver stack can run without hardware.
type Firmware struct {
	Geometry Geometry
	// Period is the feedback frame period. Defaults to 20ms.
	Period time.Duration
	// Battery is reported in feedback frames, 0.1V per LSB.
	Battery byte

	parser  l0.Parser
	frames  chan []byte
	pending []byte
	closed  sync.Once

	lock   sync.Mutex
	speed  float64 // mm/s, last commanded
	radius float64 // mm, last commanded

	clockMs    float64
	leftTicks  float64
	rightTicks float64
}

// NewFirmware creates a Firmware with the given geometry.
func NewFirmware(geom Geometry) *Firmware {
	return &Firmware{
		Geometry: geom,
		Period:   20 * time.Millisecond,
		Battery:  162,
		frames:   make(chan []byte, 16),
	}
}

// Write implements io.Writer. Bytes are fed through the frame parser
// and complete drive commands update the simulated wheel speeds.
func (f *Firmware) Write(p []byte) (int, error) {
	for _, b := range p {
		frame := f.parser.Parse(b)
		if frame == nil {
			continue
		}
		cmd, err := l0.DecodeBaseControl(frame.Payload)
		if err != nil {
			continue
		}
		f.lock.Lock()
		f.speed, f.radius = float64(cmd.Speed), float64(cmd.Radius)
		f.lock.Unlock()
	}
	return len(p), nil
}

// Read implements io.Reader, returning feedback frame bytes as they
// are produced. It blocks until a frame is available and returns
// io.EOF after Close.
func (f *Firmware) Read(p []byte) (int, error) {
	if len(f.pending) == 0 {
		frame, ok := <-f.frames
		if !ok {
			return 0, io.EOF
		}
		f.pending = frame
	}
	n := copy(p, f.pending)
	f.pending = f.pending[n:]
	return n, nil
}

// Close stops producing feedback frames.
func (f *Firmware) Close() error {
	f.closed.Do(func() { close(f.frames) })
	return nil
}

// Run implements Runnable, emitting feedback frames at Period until
// the context is canceled.
func (f *Firmware) Run(ctx context.Context) error {
	period := f.Period
	if period == 0 {
		period = 20 * time.Millisecond
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	defer f.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			f.Step(period)
		}
	}
}

// AddToLoop implements LoopAdder.
func (f *Firmware) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(f)
}

// Step advances the simulated base by dt and emits one feedback
// frame. It is exposed so tests can drive the clock deterministically.
func (f *Firmware) Step(dt time.Duration) {
	f.lock.Lock()
	speed, radius := f.speed, f.radius
	f.lock.Unlock()

	linear, angular := f.wheelMotion(speed, radius)
	track, wheel := f.Geometry.AxleTrack, f.Geometry.WheelRadius
	vLeft := linear - angular*track/2.0
	vRight := linear + angular*track/2.0

	sec := dt.Seconds()
	f.clockMs += sec * 1000.0
	f.leftTicks += vLeft / (wheel * f.Geometry.TickToRad) * sec
	f.rightTicks += vRight / (wheel * f.Geometry.TickToRad) * sec

	sensors := &l0.CoreSensors{
		Timestamp: uint16(int64(f.clockMs)),
		LeftTick:  uint16(int64(f.leftTicks)),
		RightTick: uint16(int64(f.rightTicks)),
		Battery:   f.Battery,
	}
	frame := &l0.Frame{Payload: sensors.Encode()}
	select {
	case f.frames <- frame.Bytes():
	default:
		// reader stalled, drop the frame like a real UART would.
	}
}

// wheelMotion inverts the firmware command representation back to
// Cartesian motion (m/s, rad/s).
func (f *Firmware) wheelMotion(speed, radius float64) (linear, angular float64) {
	track := f.Geometry.AxleTrack
	switch {
	case radius == 0:
		linear = speed / 1000.0
	case math.Abs(radius) <= 1.0:
		angular = 2.0 * speed / (1000.0 * track)
	default:
		offset := 1000.0 * track / 2.0
		if radius < 0 {
			offset = -offset
		}
		angular = speed / (radius + offset)
		linear = radius * angular / 1000.0
	}
	return
}
