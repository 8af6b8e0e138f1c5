package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// recorder registers scenes that append their lifecycle calls to a shared log.
type recorder struct {
	calls []string
}

func (r *recorder) hooks(name string) Hooks {
	return Hooks{
		Create:   func(*Context) { r.calls = append(r.calls, name+".create") },
		Update:   func(*Context, *Frame) { r.calls = append(r.calls, name+".update") },
		Shutdown: func(*Context) { r.calls = append(r.calls, name+".shutdown") },
	}
}

func newTestManager(t *testing.T, names ...string) (*Manager, *recorder) {
	t.Helper()
	m := NewManager(zaptest.NewLogger(t).Sugar())
	r := &recorder{}
	for _, n := range names {
		require.NoError(t, m.Register(Key(n), r.hooks(n)))
	}
	return m, r
}

func TestManager_RegisterDuplicate(t *testing.T) {
	m, _ := newTestManager(t, "a")
	assert.Error(t, m.Register("a", Hooks{}))
}

func TestManager_UnknownScene(t *testing.T) {
	m, _ := newTestManager(t, "a")
	assert.ErrorIs(t, m.Start("nope"), ErrUnknownScene)
	assert.ErrorIs(t, m.Switch("a", "nope"), ErrUnknownScene)
	assert.ErrorIs(t, m.Run("nope"), ErrUnknownScene)
	assert.ErrorIs(t, m.Stop("nope"), ErrUnknownScene)
}

func TestManager_StartOutsideUpdateIsImmediate(t *testing.T) {
	m, r := newTestManager(t, "menu", "world")
	require.NoError(t, m.Start("menu"))

	assert.True(t, m.IsActive("menu"))
	assert.Equal(t, []string{"menu.create"}, r.calls)

	require.NoError(t, m.Start("world"))
	assert.Equal(t, []Key{"world"}, m.Active())
	assert.Equal(t, []string{"menu.create", "menu.shutdown", "world.create"}, r.calls)
}

func TestManager_TransitionsDuringUpdateAreQueued(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t).Sugar())
	r := &recorder{}

	menuHooks := r.hooks("menu")
	menuHooks.Update = func(ctx *Context, _ *Frame) {
		r.calls = append(r.calls, "menu.update")
		require.NoError(t, ctx.Scenes.Switch("menu", "world"))
		require.NoError(t, ctx.Scenes.Run("ui"))
		assert.True(t, ctx.Scenes.IsActive("menu"), "switch is applied after the frame")
	}
	require.NoError(t, m.Register("menu", menuHooks))
	require.NoError(t, m.Register("world", r.hooks("world")))
	require.NoError(t, m.Register("ui", r.hooks("ui")))

	require.NoError(t, m.Start("menu"))
	m.Update(&Frame{})

	assert.Equal(t, []Key{"world", "ui"}, m.Active())
	assert.Equal(t, []string{
		"menu.create",
		"menu.update",
		"menu.shutdown",
		"world.create",
		"ui.create",
	}, r.calls)

	r.calls = nil
	m.Update(&Frame{})
	assert.Equal(t, []string{"world.update", "ui.update"}, r.calls, "registration order")
}

func TestManager_RunActiveSceneIsNoop(t *testing.T) {
	m, r := newTestManager(t, "ui")
	require.NoError(t, m.Run("ui"))
	require.NoError(t, m.Run("ui"))
	assert.Equal(t, []string{"ui.create"}, r.calls)
}

func TestManager_SwitchRestartsTarget(t *testing.T) {
	m, r := newTestManager(t, "over", "world")
	require.NoError(t, m.Run("over"))
	require.NoError(t, m.Run("world"))
	r.calls = nil

	require.NoError(t, m.Switch("over", "world"))
	assert.Equal(t, []string{"over.shutdown", "world.shutdown", "world.create"}, r.calls)
	assert.Equal(t, []Key{"world"}, m.Active())
}

func TestManager_StopInactiveIsNoop(t *testing.T) {
	m, r := newTestManager(t, "a")
	require.NoError(t, m.Stop("a"))
	assert.Empty(t, r.calls)
}

func TestManager_TransitionFromCreateHook(t *testing.T) {
	m := NewManager(nil)
	r := &recorder{}
	world := r.hooks("world")
	world.Create = func(ctx *Context) {
		r.calls = append(r.calls, "world.create")
		require.NoError(t, ctx.Scenes.Run("ui"))
	}
	require.NoError(t, m.Register("world", world))
	require.NoError(t, m.Register("ui", r.hooks("ui")))
	require.NoError(t, m.Register("hud", r.hooks("hud")))

	require.NoError(t, m.Run("world"))
	assert.Equal(t, []string{"world.create", "ui.create"}, r.calls)
}

func TestManager_Stats(t *testing.T) {
	m, _ := newTestManager(t, "a", "b")
	require.NoError(t, m.Run("a"))
	m.Update(&Frame{})
	m.Update(&Frame{})

	stats := m.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, int64(2), stats[0].Updates)
	assert.True(t, stats[0].Active)
	assert.Equal(t, int64(0), stats[1].Updates)
}

func TestManager_Quit(t *testing.T) {
	m, _ := newTestManager(t)
	assert.False(t, m.Quitting())
	m.Quit()
	assert.True(t, m.Quitting())
}

func TestEmitter_OnOff(t *testing.T) {
	e := NewEmitter()
	var got []any
	off := e.On("score", func(p any) { got = append(got, p) })
	e.On("score", func(p any) { got = append(got, "second") })

	e.Emit("score", 3)
	off()
	e.Emit("score", 4)
	e.Emit("other", 5)

	assert.Equal(t, []any{3, "second", "second"}, got)
	assert.Equal(t, 1, e.ListenerCount("score"))
}

func TestEmitter_UnsubscribeDuringEmit(t *testing.T) {
	e := NewEmitter()
	calls := 0
	var off func()
	off = e.On("reset", func(any) {
		calls++
		off()
	})
	e.On("reset", func(any) { calls++ })

	e.Emit("reset", nil)
	e.Emit("reset", nil)
	assert.Equal(t, 3, calls)
}
