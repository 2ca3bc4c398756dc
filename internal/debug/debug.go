package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// EnableDebug turns logging on at build time:
//
//	go build -ldflags "-X github.com/standardbeagle/navmatch/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// Component tags a log line with the subsystem that wrote it
type Component string

const (
	ComponentLoad   Component = "LOAD"
	ComponentSearch Component = "SEARCH"
	ComponentCLI    Component = "CLI"
)

var (
	quiet atomic.Bool

	mu      sync.Mutex
	output  io.Writer
	logFile *os.File
)

// SetQuietMode silences all logging, e.g. while the CLI writes JSON to stdout
func SetQuietMode(enabled bool) {
	quiet.Store(enabled)
}

// SetDebugOutput redirects log lines to w. nil drops them.
func SetDebugOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// InitDebugLogFile sends log lines to a new timestamped file under the temp
// directory and returns its path
func InitDebugLogFile() (string, error) {
	dir := filepath.Join(os.TempDir(), "navmatch-debug-logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create debug log directory: %w", err)
	}

	path := filepath.Join(dir, "debug-"+time.Now().Format("2006-01-02T150405")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create debug log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	logFile = f
	output = f
	return path, nil
}

// CloseDebugLog closes the file opened by InitDebugLogFile. Safe to call twice.
func CloseDebugLog() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	output = nil
	return err
}

// IsDebugEnabled reports whether the build flag or DEBUG=1|true is set and
// quiet mode is off
func IsDebugEnabled() bool {
	if quiet.Load() {
		return false
	}
	if EnableDebug == "true" {
		return true
	}
	v := os.Getenv("DEBUG")
	return v == "1" || v == "true"
}

func write(prefix, format string, args []any) {
	if !IsDebugEnabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return
	}
	fmt.Fprintf(output, prefix+format, args...)
}

// Printf writes an untagged debug line
func Printf(format string, args ...any) {
	write("[DEBUG] ", format, args)
}

// Log writes a line tagged [DEBUG:component]
func Log(component Component, format string, args ...any) {
	write("[DEBUG:"+string(component)+"] ", format, args)
}

func LogLoad(format string, args ...any) {
	Log(ComponentLoad, format, args...)
}

func LogSearch(format string, args ...any) {
	Log(ComponentSearch, format, args...)
}

func LogCLI(format string, args ...any) {
	Log(ComponentCLI, format, args...)
}
