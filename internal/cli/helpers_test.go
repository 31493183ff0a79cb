package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/tweetheure/internal/config"
	"github.com/dmitrijs2005/tweetheure/internal/cryptox"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/session"
	"github.com/dmitrijs2005/tweetheure/internal/storage/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeScreen replays scripted prompt answers and key presses and records
// everything shown.
type fakeScreen struct {
	prompts  []string
	keys     []rune
	keyErr   error
	out      strings.Builder
	messages []string
	asked    []string
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{}
}

func (f *fakeScreen) Display(text string) { f.out.WriteString(text) }
func (f *fakeScreen) Clear()              {}

func (f *fakeScreen) Prompt(label string) string {
	f.asked = append(f.asked, label)
	if len(f.prompts) == 0 {
		return ""
	}
	p := f.prompts[0]
	f.prompts = f.prompts[1:]
	return p
}

func (f *fakeScreen) PromptSecret(label string) string {
	return f.Prompt(label)
}

func (f *fakeScreen) ReadKey() (rune, error) {
	if len(f.keys) == 0 {
		if f.keyErr != nil {
			return 0, f.keyErr
		}
		return 0, io.EOF
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *fakeScreen) Pause(message string, _ time.Duration) {
	f.messages = append(f.messages, message)
}

func (f *fakeScreen) lastMessage() string {
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

type testEnv struct {
	cfg      *config.Config
	scr      *fakeScreen
	sessions *session.FileStore
	app      *App
}

func newEnv(t *testing.T, defaultBackend models.BackendKind) *testEnv {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SQLitePath = filepath.Join(dir, "tweetheure.db")
	cfg.JSONPath = filepath.Join(dir, "data.json")
	cfg.SessionPath = filepath.Join(dir, ".session")
	cfg.DefaultBackend = defaultBackend

	hasher, err := cryptox.NewPasswordHasher(cryptox.AlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)

	env := &testEnv{cfg: cfg, scr: newFakeScreen()}
	env.sessions = session.NewFileStore(cfg.SessionPath, logging.Nop())
	env.app = NewApp(Options{
		Screen:         env.scr,
		Logger:         logging.Nop(),
		Sessions:       env.sessions,
		Hasher:         hasher,
		Open:           repomanager.NewOpener(cfg, logging.Nop()),
		DefaultBackend: cfg.DefaultBackend,
	})
	t.Cleanup(func() { _ = env.app.Close() })
	return env
}

// restart builds a fresh App over the same files, as a new process would.
func (e *testEnv) restart(t *testing.T) {
	t.Helper()
	require.NoError(t, e.app.Close())
	hasher, err := cryptox.NewPasswordHasher(cryptox.AlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)
	e.scr = newFakeScreen()
	e.app = NewApp(Options{
		Screen:         e.scr,
		Logger:         logging.Nop(),
		Sessions:       e.sessions,
		Hasher:         hasher,
		Open:           repomanager.NewOpener(e.cfg, logging.Nop()),
		DefaultBackend: e.cfg.DefaultBackend,
	})
}

func (e *testEnv) register(t *testing.T, name, email, password string) {
	t.Helper()
	e.scr.prompts = append(e.scr.prompts, name, email, password)
	require.NoError(t, e.app.Register(context.Background()))
}

func (e *testEnv) login(t *testing.T, email, password string) {
	t.Helper()
	e.scr.prompts = append(e.scr.prompts, email, password)
	require.NoError(t, e.app.Login(context.Background()))
}
