// Package supervisor owns the lifecycle of the external backend process:
// launched once at application startup, killed when the main window closes.
// There is no restart policy and no health checking — if the backend dies
// or never starts, the frontend is expected to connect to a manually
// started one.
package supervisor

import (
	"os"
	"os/exec"
	"sync"

	"github.com/lazylearn/desktop/internal/config"
	"github.com/lazylearn/desktop/internal/logging"
)

// Handle is an opaque reference to the running backend process,
// sufficient to report its PID or kill it.
type Handle struct {
	pid  int
	kill func() error
}

// PID returns the OS process ID of the backend.
func (h *Handle) PID() int { return h.pid }

// Kill sends a forceful kill signal to the backend process.
func (h *Handle) Kill() error { return h.kill() }

// Supervisor holds at most one backend handle behind a mutex.
// The slot is either empty or holds exactly one handle; ownership leaves
// the slot exactly once, via Take.
type Supervisor struct {
	mu     sync.Mutex
	handle *Handle
}

// New returns a Supervisor with an empty slot.
func New() *Supervisor {
	return &Supervisor{}
}

// Launch starts the backend process described by cfg and returns a handle
// to it. Any spawn failure (interpreter missing, bad working directory) is
// downgraded to a logged warning and a nil handle — never fatal to the
// application. The spawn is a blocking call made with no lock held.
func Launch(cfg config.Backend) *Handle {
	cmd := exec.Command(cfg.Interpreter, cfg.Args()...)
	cmd.Dir = cfg.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		logging.Warnf("Failed to start backend: %v. Frontend will connect when backend is manually started.", err)
		return nil
	}
	logging.Infof("Backend started with PID: %d", cmd.Process.Pid)

	// Reap the child if it exits on its own so it doesn't linger as a
	// zombie. Kill after Wait returns ErrProcessDone, which the
	// termination path ignores anyway.
	go func() { _ = cmd.Wait() }()

	return &Handle{pid: cmd.Process.Pid, kill: cmd.Process.Kill}
}

// Store replaces the slot contents. A nil handle empties the slot.
func (s *Supervisor) Store(h *Handle) {
	s.mu.Lock()
	s.handle = h
	s.mu.Unlock()
}

// Take removes and returns the current handle, leaving the slot empty.
// Returns nil if the slot was already empty.
func (s *Supervisor) Take() *Handle {
	s.mu.Lock()
	h := s.handle
	s.handle = nil
	s.mu.Unlock()
	return h
}

// TerminateOnClose kills the backend if one is running. Because Take
// empties the slot first, a duplicate close event finds nothing and is a
// silent no-op — at most one kill attempt per handle. Kill errors
// (process already exited) are ignored.
func (s *Supervisor) TerminateOnClose() {
	h := s.Take()
	if h == nil {
		return
	}
	_ = h.Kill()
	logging.Info("Backend process terminated.")
}
