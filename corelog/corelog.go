package corelog

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Sink is the core's one log destination. All writers share it; Sink
// guards the underlying writer with a mutex so concurrent callers never
// interleave partial lines, matching §5's "append-only log sink is guarded
// by a mutex" requirement.
type Sink struct {
	mu     sync.Mutex
	logger *log.Logger
	runID  string
}

// New wraps w in a Sink tagged with a freshly generated run ID.
func New(w io.Writer) *Sink {
	return &Sink{
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		runID:  uuid.NewString(),
	}
}

// RunID returns the correlation ID stamped on every line this Sink writes.
func (s *Sink) RunID() string { return s.runID }

// Infof logs a routine informational line.
func (s *Sink) Infof(format string, args ...any) { s.write("INFO", format, args...) }

// Warnf logs a configuration fault or transient I/O fault per §7's error
// taxonomy: reject and continue, but don't lose the reason.
func (s *Sink) Warnf(format string, args ...any) { s.write("WARN", format, args...) }

// Errorf logs a recoverable failure the caller decided not to treat as
// fatal.
func (s *Sink) Errorf(format string, args ...any) { s.write("ERROR", format, args...) }

// Fatalf logs an invariant violation's diagnostic line. It does not itself
// terminate the process — the caller still owns exiting with a non-zero
// status, per §6's exit code contract.
func (s *Sink) Fatalf(format string, args ...any) { s.write("FATAL", format, args...) }

func (s *Sink) write(level, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Printf("[%s] run=%s %s", level, s.runID, fmt.Sprintf(format, args...))
}
