package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes a profiling session.
type Profiler struct {
	Mode  string // one of [Modes], or empty to disable profiling
	Path  string // output directory
	Quiet bool   // suppress the profiler's own log output
}

// Start begins profiling and returns a [Stopper] that ends it. If Mode is
// empty, or the binary was built without the pprof tag, both Start and Stop
// do nothing.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
