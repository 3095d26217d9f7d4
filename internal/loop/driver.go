// Package loop runs a simulation one frame at a time on a single goroutine.
// The driver itself never sleeps or spawns goroutines; a Scheduler decides
// when the next frame runs.
package loop

// Scheduler runs a frame callback at the next frame boundary.
// A scheduler must call each requested fn at most once.
type Scheduler interface {
	RequestFrame(fn func())
}

// TickFunc advances the simulation by one frame. It returns false once the
// simulation has halted and no further frames are wanted.
type TickFunc func() bool

// Driver is a cooperative frame loop. Each frame renders, ticks, and then
// schedules the next frame only while the loop is still running.
type Driver struct {
	sched   Scheduler
	tick    TickFunc
	render  func()
	running bool
	pending bool
	frames  int
}

// NewDriver creates a stopped driver. render may be nil.
func NewDriver(sched Scheduler, tick TickFunc, render func()) *Driver {
	return &Driver{
		sched:  sched,
		tick:   tick,
		render: render,
	}
}

// Start resumes the loop. Starting a running driver is a no-op.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.schedule()
}

// Stop halts the loop after the current frame. A frame already handed to
// the scheduler becomes a no-op.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether the loop wants more frames.
func (d *Driver) Running() bool {
	return d.running
}

// Pending reports whether a frame is waiting on the scheduler.
func (d *Driver) Pending() bool {
	return d.pending
}

// Frames returns the number of frames run since the driver was created.
func (d *Driver) Frames() int {
	return d.frames
}

func (d *Driver) schedule() {
	if d.pending {
		return
	}
	d.pending = true
	d.sched.RequestFrame(d.frame)
}

func (d *Driver) frame() {
	d.pending = false
	if !d.running {
		return
	}

	d.frames++
	if d.render != nil {
		d.render()
	}
	if !d.tick() {
		d.running = false
		return
	}
	if d.running {
		d.schedule()
	}
}
