package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/nfa2dfa/internal/codec"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest writes content to a file named name in a temporary directory
// and returns an app configured to convert it, plus its output and log
// buffers.
func setupAppTest(t *testing.T, name, content string, loader codec.Loader) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewConfig(Config{InputPath: path, LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(out, logBuffer, cfg, loader)

	t.Cleanup(func() {
		if os.Getenv("NFA2DFA_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
