// Package voxelcore holds the ambient concerns shared by the voxel world
// core packages (pos, tile, mesh, world, light): logging and fail-fast
// diagnostics. The domain logic itself lives in the subpackages.
package voxelcore

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is the diagnostic sink accepted by world.ChunkStorage and
// light.StorageWorld. None of it is required for correctness — every core
// operation in spec.md runs identically with a nop logger. Trimmed to the
// three methods those two call sites actually exercise (no Infof/Warnf/
// Errorf split, no stdout/stderr pair) — a voxel chunk or light world only
// ever emits debug traces of its own mutations, never leveled application
// events.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
}

// DefaultLogger is a mutex-guarded *log.Logger wrapper, debug-gated.
type DefaultLogger struct {
	mu    sync.Mutex
	debug bool
	out   *log.Logger
}

func NewDefaultLogger(debug bool) *DefaultLogger {
	return &DefaultLogger{
		debug: debug,
		out:   log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(fmt.Sprintf("DEBUG: "+format, args...))
}

// Tagged scopes a Logger to one chunk or light-world instance, prefixing
// every message with tag (typically its uuid.UUID debug tag) so traces from
// many concurrently-meshed chunks or concurrently-lit world regions can be
// told apart in a shared log stream. This is the one piece of Logger
// plumbing world.ChunkStorage and light.StorageWorld actually need beyond a
// bare on/off switch.
func (l *DefaultLogger) Tagged(tag string) Logger {
	return &taggedLogger{parent: l, tag: tag}
}

type taggedLogger struct {
	parent *DefaultLogger
	tag    string
}

func (t *taggedLogger) DebugEnabled() bool    { return t.parent.DebugEnabled() }
func (t *taggedLogger) SetDebug(enabled bool) { t.parent.SetDebug(enabled) }
func (t *taggedLogger) Debugf(format string, args ...any) {
	t.parent.Debugf("%s: "+format, append([]any{t.tag}, args...)...)
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything. Safe default for
// callers that don't care about diagnostics.
func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
