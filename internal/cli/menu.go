package cli

import (
	"context"
	"unicode"

	"github.com/dmitrijs2005/tweetheure/internal/screen"
)

// execIface is the command surface the menu loop drives. App satisfies it;
// tests use a stub.
type execIface interface {
	menuText() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddPost(ctx context.Context) error
	ViewPosts(ctx context.Context) error
	AddComment(ctx context.Context) error
	RandomPost(ctx context.Context) error
	SwitchBackend(ctx context.Context) error
}

// runMenu draws the menu and dispatches single key presses, case
// insensitively, until Q, Ctrl-C or the end of input. Unknown keys redraw the menu.
// Handler errors are ignored here; handlers report and log their own.
func runMenu(ctx context.Context, a execIface, scr screen.Screen) {
	for {
		scr.Clear()
		scr.Display(a.menuText())

		key, err := scr.ReadKey()
		if err != nil {
			return
		}

		switch unicode.ToLower(key) {
		case 'c':
			_ = a.Register(ctx)
		case 'l':
			_ = a.Login(ctx)
		case 'o':
			_ = a.Logout(ctx)
		case 'p':
			_ = a.AddPost(ctx)
		case 'v':
			_ = a.ViewPosts(ctx)
		case 'm':
			_ = a.AddComment(ctx)
		case 'r':
			_ = a.RandomPost(ctx)
		case 'b':
			_ = a.SwitchBackend(ctx)
		case 'q':
			return
		}
	}
}
