package cli

import (
	"context"
	"os"
	"testing"

	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_PromptsForBackend(t *testing.T) {
	env := newEnv(t, "")
	env.scr.keys = []rune("xJ")

	require.NoError(t, env.app.Start(context.Background()))
	assert.Equal(t, models.BackendJSON, env.app.backend.Kind())
	assert.Contains(t, env.scr.out.String(), "[S] pour SQL")
	assert.Empty(t, env.scr.keys)
}

func TestStart_PromptEndsWithoutChoice(t *testing.T) {
	env := newEnv(t, "")
	env.scr.keys = []rune("x")

	require.Error(t, env.app.Start(context.Background()))
}

func TestStart_UsesDefaultBackend(t *testing.T) {
	env := newEnv(t, models.BackendSQL)

	require.NoError(t, env.app.Start(context.Background()))
	assert.Equal(t, models.BackendSQL, env.app.backend.Kind())
	assert.NotContains(t, env.scr.out.String(), "Choisissez")
}

func TestStart_RestoresSession(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t, models.BackendJSON)
	require.NoError(t, env.app.Start(ctx))

	env.register(t, "Alice", "alice@example.com", "pw")
	env.login(t, "alice@example.com", "pw")

	env.cfg.DefaultBackend = models.BackendSQL
	env.restart(t)
	require.NoError(t, env.app.Start(ctx))

	assert.Equal(t, models.BackendJSON, env.app.backend.Kind(), "session decides the backend")
	assert.True(t, env.app.isLoggedIn())
	assert.Equal(t, "Alice", env.app.user.Name())
	assert.Contains(t, env.app.menuText(), "Vous êtes connecté(e) en tant que : Alice")
}

func TestStart_StaleSessionIsCleared(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t, models.BackendJSON)
	require.NoError(t, env.sessions.Save(ctx, 42, models.BackendJSON))

	require.NoError(t, env.app.Start(ctx))
	assert.False(t, env.app.isLoggedIn())
	_, ok := env.sessions.Load(ctx)
	assert.False(t, ok)
}

func TestStart_CorruptSessionIgnored(t *testing.T) {
	env := newEnv(t, models.BackendSQL)
	require.NoError(t, os.WriteFile(env.cfg.SessionPath, []byte("{garbage"), 0o600))

	require.NoError(t, env.app.Start(context.Background()))
	assert.Equal(t, models.BackendSQL, env.app.backend.Kind())
	assert.False(t, env.app.isLoggedIn())
}

func TestRun_QuitClosesBackend(t *testing.T) {
	env := newEnv(t, models.BackendJSON)
	env.scr.keys = []rune("q")

	require.NoError(t, env.app.Run(context.Background()))
	assert.Nil(t, env.app.backend)
}

func TestMenuText(t *testing.T) {
	env := newEnv(t, models.BackendSQL)
	require.NoError(t, env.app.Start(context.Background()))

	text := env.app.menuText()
	assert.Contains(t, text, "Bienvenue sur TweetHeure !")
	assert.Contains(t, text, "Vous n'êtes pas connecté(e).")
	assert.Contains(t, text, "Stockage : SQL")
	for _, key := range []string{"[C]", "[L]", "[O]", "[P]", "[V]", "[M]", "[R]", "[B]", "[Q]"} {
		assert.Contains(t, text, key)
	}
}
