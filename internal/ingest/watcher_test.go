package ingest

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the test read log output written from the watcher
// goroutine without racing.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func waitForPath(t *testing.T, events <-chan string, want string) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-events:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestWatcherEmitsNewGuide(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, nil, WatchConfig{Roots: []string{root}})
	require.NoError(t, err)

	path := filepath.Join(root, "guia.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	waitForPath(t, events, path)
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, nil, WatchConfig{Roots: []string{root}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notas.txt"), []byte("x"), 0o644))

	select {
	case got := <-events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherInitialScan(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "pendiente.jpg")
	require.NoError(t, os.WriteFile(existing, []byte("jpg"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, nil, WatchConfig{Roots: []string{root}, InitialScan: true})
	require.NoError(t, err)

	waitForPath(t, events, existing)
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), nil, WatchConfig{})
	assert.Error(t, err)
}

// A rapid burst of writes under an active debounce window must still
// deliver every distinct path, without corrupting the pending set.
func TestWatcherDebouncedBurst(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, nil, WatchConfig{
		Roots:    []string{root},
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	guia := filepath.Join(root, "guia.pdf")
	foto := filepath.Join(root, "foto.jpg")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(guia, []byte("%PDF"), 0o644))
		require.NoError(t, os.WriteFile(foto, []byte("jpg"), 0o644))
	}

	seen := map[string]bool{}
	deadline := time.After(3 * time.Second)
	for !seen[guia] || !seen[foto] {
		select {
		case got := <-events:
			seen[got] = true
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}
}

func TestWatcherLogsDroppedEvents(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var logs syncBuffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	// Buffer of one and no consumer: everything past the first emit
	// has to be dropped, and each drop must leave a trace in the log.
	_, _, err := StartWatcher(ctx, logger, WatchConfig{
		Roots:  []string{root},
		Buffer: 1,
	})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		name := filepath.Join(root, "guia"+string(rune('a'+i))+".pdf")
		require.NoError(t, os.WriteFile(name, []byte("%PDF"), 0o644))
	}

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "ingest.watcher.dropped")
	}, 3*time.Second, 20*time.Millisecond)
}
