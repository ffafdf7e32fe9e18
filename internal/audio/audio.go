// Package audio plays short sound clips through an external player. At most
// one clip plays at a time: starting a clip stops the previous one.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// ClipExt is the file extension of sound clips.
const ClipExt = ".wav"

// ErrClipNotFound is returned by Play when the clip file does not exist.
var ErrClipNotFound = errors.New("clip not found")

// Runner plays the file at path and returns when playback ends or ctx is
// canceled.
type Runner func(ctx context.Context, path string) error

// ExecRunner returns a Runner that invokes command with the clip path as its
// last argument.
func ExecRunner(command string) Runner {
	parts := strings.Fields(command)
	return func(ctx context.Context, path string) error {
		if len(parts) == 0 {
			return fmt.Errorf("player command is empty")
		}
		cmd := exec.CommandContext(ctx, parts[0], append(parts[1:], path)...)
		return cmd.Run()
	}
}

// Manager owns the currently playing clip.
type Manager struct {
	dir    string
	run    Runner
	logger *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	current string
	seq     uint64
	wg      sync.WaitGroup
	closed  bool
}

// NewManager creates a manager resolving clips under dir.
func NewManager(dir string, run Runner, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{dir: dir, run: run, logger: logger}
}

// Play stops the current clip and starts clip in the background. Clip names
// may contain a subdirectory, such as "he/א". The current clip is stopped
// even when clip cannot be resolved.
func (m *Manager) Play(clip string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("audio manager is closed")
	}
	m.stopLocked()

	path, err := m.resolve(clip)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.seq++
	seq := m.seq
	m.cancel = cancel
	m.current = clip
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		err := m.run(ctx, path)
		if err != nil && ctx.Err() == nil {
			m.logger.Debug("clip playback failed", slog.String("clip", clip), slog.String("error", err.Error()))
		}
		m.finish(seq)
	}()
	return nil
}

// StopCurrent stops the playing clip, if any.
func (m *Manager) StopCurrent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

// playing returns the name of the playing clip, or "".
func (m *Manager) playing() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Close stops playback and waits for the player to exit.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.closed = true
	m.stopLocked()
	m.mu.Unlock()
	m.wg.Wait()
	return nil
}

func (m *Manager) stopLocked() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.current = ""
}

func (m *Manager) finish(seq uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seq != seq {
		return
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.current = ""
}

func (m *Manager) resolve(clip string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(clip))
	if clip == "" || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid clip name %q", clip)
	}
	path := filepath.Join(m.dir, clean+ClipExt)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrClipNotFound, clip)
		}
		return "", fmt.Errorf("failed to stat clip: %w", err)
	}
	return path, nil
}
