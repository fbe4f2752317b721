package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/lazylearn/desktop/internal/config"
	"github.com/lazylearn/desktop/internal/greet"
	"github.com/lazylearn/desktop/internal/logging"
	"github.com/lazylearn/desktop/internal/supervisor"
)

// windowState persists the desktop window position and size between restarts.
// Uses absolute screen coordinates so it restores to the correct monitor.
type windowState struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// windowStatePath returns the path to the window state file.
func windowStatePath(dataDir string) string {
	return filepath.Join(dataDir, "window-state.json")
}

// loadWindowState reads saved window state from disk.
// Returns nil if the file doesn't exist or can't be read.
func loadWindowState(dataDir string) *windowState {
	data, err := os.ReadFile(windowStatePath(dataDir))
	if err != nil {
		return nil
	}
	var state windowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	// Sanity check: reject nonsensical sizes
	if state.Width < 400 || state.Height < 300 {
		return nil
	}
	return &state
}

// saveWindowState persists the current window position and size to disk.
func saveWindowState(dataDir string, window *application.WebviewWindow) {
	w, h := window.Size()
	if w < 400 || h < 300 {
		return
	}
	x, y := window.Position()
	state := windowState{X: x, Y: y, Width: w, Height: h}
	data, err := json.Marshal(state)
	if err != nil {
		return
	}
	_ = os.WriteFile(windowStatePath(dataDir), data, 0644)
}

// ensureDataDir returns the per-user data directory, creating it if needed.
func ensureDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".lazylearn")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// RunDesktop opens the main window and supervises the backend process for
// the lifetime of the application.
func RunDesktop() {
	c := *ShellConfig
	if cfgFile != "" {
		loaded, err := config.LoadFile(c, cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31mError: cannot load config %s: %v\033[0m\n", cfgFile, err)
			os.Exit(1)
		}
		c = loaded
	}

	dataDir, err := ensureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError: failed to initialize data directory: %v\033[0m\n", err)
		os.Exit(1)
	}

	// Enforce single instance with lock file
	lockFile, err := acquireLock(dataDir)
	if err != nil {
		fmt.Printf("\033[31mError: %v\033[0m\n", err)
		fmt.Println("\033[33mLazy Learn is already running. Only one instance allowed per computer.\033[0m")
		os.Exit(1)
	}
	defer releaseLock(lockFile)

	// Spawn the backend synchronously, before the event loop starts.
	// The window cannot close before setup completes, so the launch
	// always happens-before any termination attempt. The spawn itself
	// runs with no lock held; only the Store acquires the slot mutex.
	sup := supervisor.New()
	sup.Store(supervisor.Launch(c.Backend))

	wailsApp := application.New(application.Options{
		Name: "Lazy Learn",
		Services: []application.Service{
			application.NewService(&greet.Service{}),
		},
		Linux: application.LinuxOptions{
			ProgramName: "lazylearn",
		},
		OnShutdown: func() {
			fmt.Println("\n\033[32mLazy Learn stopped.\033[0m")
		},
	})

	// Restore saved window size or use configured defaults
	winWidth, winHeight := c.Window.Width, c.Window.Height
	saved := loadWindowState(dataDir)
	if saved != nil {
		winWidth = saved.Width
		winHeight = saved.Height
	}

	window := wailsApp.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:      "main",
		Title:     c.Window.Title,
		Width:     winWidth,
		Height:    winHeight,
		MinWidth:  c.Window.MinWidth,
		MinHeight: c.Window.MinHeight,
		URL:       c.Frontend.URL,
	})

	if saved != nil {
		window.SetPosition(saved.X, saved.Y)
	}

	// Kill the backend when the main window closes. The hook never
	// cancels the event — cleanup is best-effort and the window always
	// closes. A duplicate close event finds the slot empty and does
	// nothing. Platform-specific hook registered alongside the Common
	// one on Windows, where the event mapping in the alpha framework
	// can be unreliable.
	closeHandler := func(event *application.WindowEvent) {
		saveWindowState(dataDir, window)
		sup.TerminateOnClose()
	}
	window.RegisterHook(events.Common.WindowClosing, closeHandler)
	if goruntime.GOOS == "windows" {
		window.RegisterHook(events.Windows.WindowClosing, closeHandler)
	}

	if verbose {
		logging.Infof("Web UI: %s", c.Frontend.URL)
		logging.Infof("Data: %s", dataDir)
	}

	// Run Wails event loop on main thread (blocks until the app quits).
	// macOS requires the event loop on the main thread for window
	// operations to work.
	if err := wailsApp.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Desktop error: %v\n", err)
	}

	// Quit paths that bypass the window-close hook (Cmd+Q, SIGTERM
	// handled by the framework) still must not leak the backend.
	// Take-semantics make this a no-op when the hook already ran.
	sup.TerminateOnClose()
}
