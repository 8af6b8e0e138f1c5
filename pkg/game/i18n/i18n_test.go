package i18n

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT_English(t *testing.T) {
	require.NoError(t, SetLocale("en"))
	assert.Equal(t, "Tile World", T("GAME_TITLE"))
	assert.Equal(t, "Explored: 12", fmt.Sprintf(T("HUD_SCORE"), 12))
	assert.Equal(t, "Road ends: 1/4", fmt.Sprintf(T("HUD_ROADS"), 1, 4))
}

func TestT_LeavesVerbsForCaller(t *testing.T) {
	require.NoError(t, SetLocale("en"))
	assert.Equal(t, "Loading %d%%", T("LOADING"))
	assert.Equal(t, "Loading 50%", fmt.Sprintf(T("LOADING"), 50))
}

func TestT_UnknownKeyPassesThrough(t *testing.T) {
	require.NoError(t, SetLocale("en"))
	assert.Equal(t, "NOT_A_KEY", T("NOT_A_KEY"))
}

func TestSetLocale(t *testing.T) {
	t.Cleanup(func() { _ = SetLocale(DefaultLocale) })

	require.NoError(t, SetLocale("de_DE.UTF-8"))
	assert.Equal(t, "Kachelwelt", T("GAME_TITLE"))

	assert.Error(t, SetLocale("xx"))
	assert.Equal(t, "Kachelwelt", T("GAME_TITLE"), "previous catalog kept")
}

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"de", "en"}, Locales())
}
