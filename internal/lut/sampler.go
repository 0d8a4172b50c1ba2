package lut

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/darkframe/lutforge/internal/engine"
)

// State is the export lifecycle: Idle -> Exporting -> (Done | Failed).
// Progress resets to zero when a terminal state is entered, and the next
// Export call moves the machine back through Exporting.
type State int

const (
	StateIdle State = iota
	StateExporting
	StateDone
	StateFailed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExporting:
		return "exporting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Progress reports how far through the sample grid an export has gotten.
type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// Percent returns completion in [0,100].
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// ErrExportInFlight is returned when Export is called while another export
// on the same Exporter is still running. One Exporter handles one export at
// a time; there is no cancellation, so the caller either waits or uses a
// second Exporter.
var ErrExportInFlight = errors.New("an export is already in progress")

// progressChunk is how many samples are processed between progress updates
// and scheduler yields.
const progressChunk = 1000

// Exporter samples the grading transform over a 3D grid and serializes the
// result. The zero value is not usable; construct with NewExporter.
//
// State and progress are shared across calls (a UI binds to them), guarded by
// a mutex. Status may be polled from any goroutine while Export runs.
type Exporter struct {
	mu       sync.Mutex
	state    State
	progress Progress
}

// NewExporter returns an idle Exporter.
func NewExporter() *Exporter {
	return &Exporter{state: StateIdle}
}

// Status returns the current state and progress.
func (e *Exporter) Status() (State, Progress) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.progress
}

func (e *Exporter) setProgress(done, total int) {
	e.mu.Lock()
	e.progress = Progress{Done: done, Total: total}
	e.mu.Unlock()
}

// finish records the terminal state and resets progress so the next export
// starts clean. Status reports Done or Failed until Export is called again.
func (e *Exporter) finish(err error) {
	e.mu.Lock()
	if err != nil {
		e.state = StateFailed
	} else {
		e.state = StateDone
	}
	e.progress = Progress{}
	e.mu.Unlock()
}

// Export runs the full pipeline: validate, sample the grading transform over
// a Resolution-cubed grid, and serialize to the requested format. onProgress,
// if non-nil, is invoked roughly every 1,000 samples and once at completion;
// between chunks the goroutine yields so callers on the same thread pool are
// not starved. Validation failures are reported before any sampling starts.
func (e *Exporter) Export(adj engine.Adjustments, opts Options, onProgress func(Progress)) (out string, err error) {
	if opts.Domain == (Domain{}) {
		opts.Domain = Domain{Min: 0, Max: 1}
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if err := adj.Validate(); err != nil {
		return "", err
	}

	e.mu.Lock()
	if e.state == StateExporting {
		e.mu.Unlock()
		return "", ErrExportInFlight
	}
	e.state = StateExporting
	n := opts.Resolution
	total := n * n * n
	e.progress = Progress{Done: 0, Total: total}
	e.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = &engine.ComputationError{Op: "lut sampling", Detail: fmt.Sprint(r)}
			out = ""
		}
		e.finish(err)
	}()

	transform := engine.GradingTransform(adj)
	w := writerFor(opts.Format)

	var sb strings.Builder
	// One line per sample plus a small header; pre-size to skip regrows.
	sb.Grow(total*24 + 256)
	w.writeHeader(&sb, opts)

	step := 1 / float64(n-1)
	done := 0
	for b := 0; b < n; b++ {
		for g := 0; g < n; g++ {
			for r := 0; r < n; r++ {
				or, og, ob := transform(float64(r)*step, float64(g)*step, float64(b)*step)
				w.writeSample(&sb, or, og, ob)

				done++
				if done%progressChunk == 0 {
					e.setProgress(done, total)
					if onProgress != nil {
						onProgress(Progress{Done: done, Total: total})
					}
					runtime.Gosched()
				}
			}
		}
	}

	e.setProgress(total, total)
	if onProgress != nil {
		onProgress(Progress{Done: total, Total: total})
	}
	return sb.String(), nil
}
