package audio

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingRunner records started clips and blocks until canceled.
type blockingRunner struct {
	mu       sync.Mutex
	started  []string
	canceled []string
	startCh  chan string
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{startCh: make(chan string, 8)}
}

func (r *blockingRunner) run(ctx context.Context, path string) error {
	name := filepath.Base(path)
	r.mu.Lock()
	r.started = append(r.started, name)
	r.mu.Unlock()
	r.startCh <- name
	<-ctx.Done()
	r.mu.Lock()
	r.canceled = append(r.canceled, name)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *blockingRunner) canceledClips() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.canceled...)
}

func writeClips(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name)+ClipExt)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))
	}
	return dir
}

func waitStart(t *testing.T, r *blockingRunner) string {
	t.Helper()
	select {
	case name := <-r.startCh:
		return name
	case <-time.After(2 * time.Second):
		t.Fatal("clip did not start")
		return ""
	}
}

func TestPlayStopsPreviousClip(t *testing.T) {
	dir := writeClips(t, "checkpoint", "complete")
	runner := newBlockingRunner()
	m := NewManager(dir, runner.run, nil)

	require.NoError(t, m.Play("checkpoint"))
	assert.Equal(t, "checkpoint.wav", waitStart(t, runner))
	assert.Equal(t, "checkpoint", m.playing())

	require.NoError(t, m.Play("complete"))
	assert.Equal(t, "complete.wav", waitStart(t, runner))
	assert.Equal(t, "complete", m.playing())
	assert.Eventually(t, func() bool {
		canceled := runner.canceledClips()
		return len(canceled) == 1 && canceled[0] == "checkpoint.wav"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Close())
	assert.Equal(t, "", m.playing())
	assert.Len(t, runner.canceledClips(), 2)
}

func TestStopCurrent(t *testing.T) {
	dir := writeClips(t, "he/א")
	runner := newBlockingRunner()
	m := NewManager(dir, runner.run, nil)

	require.NoError(t, m.Play("he/א"))
	waitStart(t, runner)
	m.StopCurrent()
	assert.Equal(t, "", m.playing())
	assert.Eventually(t, func() bool { return len(runner.canceledClips()) == 1 }, 2*time.Second, 10*time.Millisecond)
	m.StopCurrent()
	require.NoError(t, m.Close())
}

func TestPlayFinishedClipClearsCurrent(t *testing.T) {
	dir := writeClips(t, "complete")
	done := make(chan struct{})
	m := NewManager(dir, func(context.Context, string) error {
		defer close(done)
		return nil
	}, nil)
	require.NoError(t, m.Play("complete"))
	<-done
	assert.Eventually(t, func() bool { return m.playing() == "" }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, m.Close())
}

func TestPlayRejectsMissingAndEscapingClips(t *testing.T) {
	m := NewManager(t.TempDir(), newBlockingRunner().run, nil)
	assert.ErrorIs(t, m.Play("missing"), ErrClipNotFound)
	assert.Error(t, m.Play("../outside"))
	assert.Error(t, m.Play(""))
	require.NoError(t, m.Close())
	assert.Error(t, m.Play("missing"))
}

func TestExecRunnerEmptyCommand(t *testing.T) {
	err := ExecRunner("  ")(context.Background(), "clip.wav")
	assert.Error(t, err)
}

func TestPlayMissingClipStopsPrevious(t *testing.T) {
	dir := writeClips(t, "he/א")
	runner := newBlockingRunner()
	m := NewManager(dir, runner.run, nil)

	require.NoError(t, m.Play("he/א"))
	waitStart(t, runner)
	assert.ErrorIs(t, m.Play("he/ב"), ErrClipNotFound)
	assert.Equal(t, "", m.playing())
	assert.Eventually(t, func() bool {
		canceled := runner.canceledClips()
		return len(canceled) == 1 && canceled[0] == "א.wav"
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, m.Close())
}
