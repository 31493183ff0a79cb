package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/tweetheure/internal/cryptox"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/screen"
	"github.com/dmitrijs2005/tweetheure/internal/services"
	"github.com/dmitrijs2005/tweetheure/internal/session"
	"github.com/dmitrijs2005/tweetheure/internal/storage"
	"github.com/dmitrijs2005/tweetheure/internal/storage/repomanager"
)

type App struct {
	screen   screen.Screen
	log      logging.Logger
	sessions session.Store
	hasher   cryptox.PasswordHasher
	open     repomanager.Opener

	defaultBackend models.BackendKind
	delay          time.Duration

	backend  storage.Backend
	accounts services.AccountService
	content  services.ContentService
	user     services.UserSession
}

// Options carries the collaborators of an App.
type Options struct {
	Screen         screen.Screen
	Logger         logging.Logger
	Sessions       session.Store
	Hasher         cryptox.PasswordHasher
	Open           repomanager.Opener
	DefaultBackend models.BackendKind
	MessageDelay   time.Duration
}

func NewApp(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		screen:         opts.Screen,
		log:            log,
		sessions:       opts.Sessions,
		hasher:         opts.Hasher,
		open:           opts.Open,
		defaultBackend: opts.DefaultBackend,
		delay:          opts.MessageDelay,
	}
}

// Run starts the application and blocks in the menu until the user quits or
// input ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}
	defer a.Close()

	runMenu(ctx, a, a.screen)
	a.screen.Clear()
	return nil
}

// Start picks and opens the backend and restores a saved session.
//
// A saved session decides the backend. Without one the configured default
// is used, and without that the user is asked.
func (a *App) Start(ctx context.Context) error {
	rec, hasSession := a.sessions.Load(ctx)

	kind := a.defaultBackend
	if hasSession {
		kind = rec.BackendKind
	}
	if kind == "" {
		var err error
		if kind, err = a.chooseBackend(); err != nil {
			return err
		}
	}

	if err := a.useBackend(ctx, kind); err != nil {
		return err
	}

	if hasSession {
		ok, err := a.accounts.Restore(ctx, &a.user, rec)
		if err != nil {
			a.log.Error(ctx, "session restore failed", "error", err)
		} else if !ok {
			a.log.Info(ctx, "saved session not restored", "user_id", rec.UserID)
		}
	}
	return nil
}

func (a *App) Close() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend = nil
	return err
}

func (a *App) chooseBackend() (models.BackendKind, error) {
	a.screen.Clear()
	a.screen.Display(screen.Banner)
	a.screen.Display("Choisissez le mode de stockage :\n[S] pour SQL\n[J] pour JSON\n")

	for {
		key, err := a.screen.ReadKey()
		if err != nil {
			return "", fmt.Errorf("choose backend: %w", err)
		}
		if kind, err := models.ParseBackendKind(string(key)); err == nil {
			return kind, nil
		}
	}
}

// useBackend opens kind and rebuilds the services over it. The previous
// backend, if any, is closed only after the new one opened.
func (a *App) useBackend(ctx context.Context, kind models.BackendKind) error {
	backend, err := a.open(ctx, kind)
	if err != nil {
		return err
	}

	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.log.Warn(ctx, "closing previous backend failed", "backend", a.backend.Kind(), "error", err)
		}
	}

	a.backend = backend
	a.accounts = services.NewAccountService(backend, a.hasher, a.sessions, a.log)
	a.content = services.NewContentService(backend, a.log)
	a.log.Info(ctx, "using backend", "backend", kind)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.user.Authenticated()
}

func backendLabel(kind models.BackendKind) string {
	return strings.ToUpper(string(kind))
}

// menuText renders the banner, login status and key list.
func (a *App) menuText() string {
	var b strings.Builder
	b.WriteString(screen.Banner)
	b.WriteString("\nBienvenue sur TweetHeure !\n")
	if a.isLoggedIn() {
		fmt.Fprintf(&b, "Vous êtes connecté(e) en tant que : %s\n", a.user.Name())
	} else {
		b.WriteString("Vous n'êtes pas connecté(e).\n")
	}
	if a.backend != nil {
		fmt.Fprintf(&b, "Stockage : %s\n", backendLabel(a.backend.Kind()))
	}
	b.WriteString("Appuyez sur:\n")
	b.WriteString("[C] pour Créer un compte\n")
	b.WriteString("[L] pour Se connecter\n")
	b.WriteString("[O] pour Se déconnecter\n")
	b.WriteString("[P] pour Publier un post\n")
	b.WriteString("[V] pour Voir les posts\n")
	b.WriteString("[M] pour Commenter un post\n")
	b.WriteString("[R] pour Voir un post aléatoire\n")
	b.WriteString("[B] pour Changer de stockage\n")
	b.WriteString("[Q] pour Quitter\n")
	return b.String()
}

func (a *App) message(text string) {
	a.screen.Pause(text, a.delay)
}

// internalError logs err and shows a generic message.
func (a *App) internalError(ctx context.Context, op string, err error) error {
	a.log.Error(ctx, op+" failed", "error", err)
	a.message("❌ Erreur : une erreur interne est survenue.")
	return err
}

var errCancelled = errors.New("cancelled")
