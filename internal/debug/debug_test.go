package debug

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetState restores package state when the test ends
func resetState(t *testing.T) {
	t.Helper()
	build := EnableDebug
	wasQuiet := quiet.Load()
	mu.Lock()
	out, file := output, logFile
	mu.Unlock()

	t.Cleanup(func() {
		EnableDebug = build
		quiet.Store(wasQuiet)
		mu.Lock()
		output, logFile = out, file
		mu.Unlock()
	})
}

func TestIsDebugEnabled(t *testing.T) {
	resetState(t)
	t.Setenv("DEBUG", "")

	EnableDebug = "false"
	SetQuietMode(false)
	assert.False(t, IsDebugEnabled())

	EnableDebug = "true"
	assert.True(t, IsDebugEnabled())

	SetQuietMode(true)
	assert.False(t, IsDebugEnabled(), "quiet mode wins over the build flag")

	SetQuietMode(false)
	EnableDebug = "invalid"
	assert.False(t, IsDebugEnabled())

	t.Setenv("DEBUG", "1")
	assert.True(t, IsDebugEnabled())

	t.Setenv("DEBUG", "true")
	assert.True(t, IsDebugEnabled())
}

func TestLog(t *testing.T) {
	resetState(t)

	var buf bytes.Buffer
	EnableDebug = "true"
	SetQuietMode(false)
	SetDebugOutput(&buf)

	LogSearch("compiled %q\n", "B.Q")
	LogLoad("%d symbols\n", 3)
	LogCLI("done\n")
	Log(Component("CACHE"), "hit\n")
	Printf("plain\n")

	out := buf.String()
	assert.Contains(t, out, `[DEBUG:SEARCH] compiled "B.Q"`)
	assert.Contains(t, out, "[DEBUG:LOAD] 3 symbols")
	assert.Contains(t, out, "[DEBUG:CLI] done")
	assert.Contains(t, out, "[DEBUG:CACHE] hit")
	assert.Contains(t, out, "[DEBUG] plain")
}

func TestLogDisabled(t *testing.T) {
	resetState(t)
	t.Setenv("DEBUG", "")

	var buf bytes.Buffer
	EnableDebug = "false"
	SetDebugOutput(&buf)

	LogSearch("hidden\n")
	assert.Empty(t, buf.String())

	EnableDebug = "true"
	SetQuietMode(true)
	LogSearch("quiet\n")
	assert.Empty(t, buf.String())

	SetQuietMode(false)
	SetDebugOutput(nil)
	assert.NotPanics(t, func() { LogSearch("no writer\n") })
}

func TestLogConcurrent(t *testing.T) {
	resetState(t)

	var buf bytes.Buffer
	EnableDebug = "true"
	SetQuietMode(false)
	SetDebugOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			LogSearch("line\n")
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, bytes.Count(buf.Bytes(), []byte("[DEBUG:SEARCH] line\n")))
}

func TestDebugLogFile(t *testing.T) {
	resetState(t)

	path, err := InitDebugLogFile()
	require.NoError(t, err)
	defer os.Remove(path)

	EnableDebug = "true"
	SetQuietMode(false)
	LogLoad("to file\n")
	require.NoError(t, CloseDebugLog())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[DEBUG:LOAD] to file")
	assert.NoError(t, CloseDebugLog(), "closing twice is a no-op")
}
