package scene

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrUnknownScene is returned when a transition names a scene that was never registered.
var ErrUnknownScene = errors.New("scene: unknown scene")

type opKind int

const (
	opStart opKind = iota
	opStop
)

type op struct {
	kind opKind
	key  Key
}

type entry struct {
	key    Key
	hooks  Hooks
	active bool
	ctx    *Context

	updates      int64
	lastDuration time.Duration
}

// Stats holds update timing for one scene.
type Stats struct {
	Key          Key
	Active       bool
	Updates      int64
	LastDuration time.Duration
}

// Manager owns the registered scenes and applies transitions between them.
// Transitions requested while Update runs are queued and applied, in order,
// once every active scene has been updated.
type Manager struct {
	log     *zap.SugaredLogger
	events  *Emitter
	entries map[Key]*entry
	order   []Key

	updating bool
	flushing bool
	pending  []op
	quit     bool
}

// NewManager creates a manager with its own event bus.
func NewManager(log *zap.SugaredLogger) *Manager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{
		log:     log,
		events:  NewEmitter(),
		entries: make(map[Key]*entry),
	}
}

// Events returns the shared event bus.
func (m *Manager) Events() *Emitter {
	return m.events
}

// Register adds a scene. Scenes update and draw in registration order.
func (m *Manager) Register(key Key, hooks Hooks) error {
	if _, found := m.entries[key]; found {
		return fmt.Errorf("scene: %s already registered", key)
	}
	e := &entry{key: key, hooks: hooks}
	e.ctx = &Context{Key: key, Scenes: m, Events: m.events, Log: m.log.With("scene", string(key))}
	m.entries[key] = e
	m.order = append(m.order, key)
	return nil
}

// Start stops every active scene and starts key.
func (m *Manager) Start(key Key) error {
	if err := m.check(key); err != nil {
		return err
	}
	for _, k := range m.order {
		if k != key && m.entries[k].active {
			m.enqueue(op{kind: opStop, key: k})
		}
	}
	m.enqueue(op{kind: opStop, key: key})
	m.enqueue(op{kind: opStart, key: key})
	return nil
}

// Switch stops from and starts to.
func (m *Manager) Switch(from, to Key) error {
	if err := m.check(from); err != nil {
		return err
	}
	if err := m.check(to); err != nil {
		return err
	}
	m.enqueue(op{kind: opStop, key: from})
	m.enqueue(op{kind: opStop, key: to})
	m.enqueue(op{kind: opStart, key: to})
	return nil
}

// Run starts key alongside the active scenes. Running an active scene does nothing.
func (m *Manager) Run(key Key) error {
	if err := m.check(key); err != nil {
		return err
	}
	m.enqueue(op{kind: opStart, key: key})
	return nil
}

// Stop shuts key down if it is active.
func (m *Manager) Stop(key Key) error {
	if err := m.check(key); err != nil {
		return err
	}
	m.enqueue(op{kind: opStop, key: key})
	return nil
}

// IsActive reports whether key is running.
func (m *Manager) IsActive(key Key) bool {
	e, found := m.entries[key]
	return found && e.active
}

// Active returns the running scenes in registration order.
func (m *Manager) Active() []Key {
	var keys []Key
	for _, k := range m.order {
		if m.entries[k].active {
			keys = append(keys, k)
		}
	}
	return keys
}

// Quit asks the runtime to stop after the current frame.
func (m *Manager) Quit() {
	m.quit = true
}

// Quitting reports whether Quit was called.
func (m *Manager) Quitting() bool {
	return m.quit
}

// Update runs every active scene once, then applies queued transitions.
func (m *Manager) Update(frame *Frame) {
	m.updating = true
	for _, k := range m.order {
		e := m.entries[k]
		if !e.active || e.hooks.Update == nil {
			continue
		}
		start := time.Now()
		e.hooks.Update(e.ctx, frame)
		e.lastDuration = time.Since(start)
		e.updates++
	}
	m.updating = false
	m.flush()
}

// Stats returns update statistics for every registered scene.
func (m *Manager) Stats() []Stats {
	out := make([]Stats, 0, len(m.order))
	for _, k := range m.order {
		e := m.entries[k]
		out = append(out, Stats{Key: k, Active: e.active, Updates: e.updates, LastDuration: e.lastDuration})
	}
	return out
}

func (m *Manager) check(key Key) error {
	if _, found := m.entries[key]; !found {
		return fmt.Errorf("%w: %s", ErrUnknownScene, key)
	}
	return nil
}

func (m *Manager) enqueue(o op) {
	m.pending = append(m.pending, o)
	if !m.updating && !m.flushing {
		m.flush()
	}
}

// flush applies pending ops. Hooks run during flush may queue more ops,
// which are applied after the ones already queued.
func (m *Manager) flush() {
	m.flushing = true
	defer func() { m.flushing = false }()

	for len(m.pending) > 0 {
		o := m.pending[0]
		m.pending = m.pending[1:]
		e := m.entries[o.key]

		switch o.kind {
		case opStart:
			if e.active {
				continue
			}
			e.active = true
			m.log.Debugw("scene started", "scene", string(o.key))
			if e.hooks.Create != nil {
				e.hooks.Create(e.ctx)
			}
		case opStop:
			if !e.active {
				continue
			}
			e.active = false
			m.log.Debugw("scene stopped", "scene", string(o.key))
			if e.hooks.Shutdown != nil {
				e.hooks.Shutdown(e.ctx)
			}
		}
	}
}
