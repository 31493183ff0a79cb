package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

func (a *App) AddPost(ctx context.Context) error {
	a.screen.Clear()
	if !a.isLoggedIn() {
		a.message("❌ Vous devez être connecté(e) pour publier un post.")
		return common.ErrNotAuthenticated
	}

	title := a.screen.Prompt("Titre du post : ")
	content := a.screen.Prompt("Contenu du post : ")

	if _, err := a.content.AddPost(ctx, &a.user, title, content); err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			a.message("❌ Vous devez être connecté(e) pour publier un post.")
			return err
		}
		return a.internalError(ctx, "add post", err)
	}

	a.message("✅ Post ajouté avec succès.")
	return nil
}

// ViewPosts lists every post with its comments and waits for a key.
func (a *App) ViewPosts(ctx context.Context) error {
	views, ok, err := a.loadPosts(ctx)
	if !ok {
		return err
	}

	a.screen.Clear()
	a.screen.Display(renderPosts(views))
	a.waitKey()
	return nil
}

func (a *App) RandomPost(ctx context.Context) error {
	view, err := a.content.RandomPost(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoPosts) {
			a.message("⚠️ Aucun post disponible.")
			return nil
		}
		return a.internalError(ctx, "random post", err)
	}

	a.screen.Clear()
	a.screen.Display("Post aléatoire :\n")
	a.screen.Display(renderPost(*view))
	a.waitKey()
	return nil
}

// AddComment requires a login, shows the posts, asks which one to comment
// and checks it exists before asking for the text.
func (a *App) AddComment(ctx context.Context) error {
	a.screen.Clear()
	if !a.isLoggedIn() {
		a.message("❌ Vous devez être connecté(e) pour commenter.")
		return common.ErrNotAuthenticated
	}

	views, ok, err := a.loadPosts(ctx)
	if !ok {
		return err
	}

	a.screen.Clear()
	a.screen.Display(renderPosts(views))

	postID, err := strconv.ParseInt(strings.TrimSpace(a.screen.Prompt("\nID du post à commenter : ")), 10, 64)
	if err != nil || postID <= 0 {
		a.message("⚠️ Ce post n'existe pas.")
		return common.ErrPostNotFound
	}

	exists, err := a.content.PostExists(ctx, postID)
	if err != nil {
		return a.internalError(ctx, "post lookup", err)
	}
	if !exists {
		a.message("⚠️ Ce post n'existe pas.")
		return common.ErrPostNotFound
	}

	content := a.screen.Prompt("Votre commentaire : ")

	_, err = a.content.AddComment(ctx, &a.user, postID, content)
	switch {
	case err == nil:
		a.message("✅ Commentaire ajouté.")
		return nil
	case errors.Is(err, common.ErrPostNotFound):
		a.message("⚠️ Ce post n'existe pas.")
		return err
	default:
		return a.internalError(ctx, "add comment", err)
	}
}

// loadPosts fetches the post views. ok is false when there is nothing to
// show, in which case the user has already been told why.
func (a *App) loadPosts(ctx context.Context) ([]models.PostView, bool, error) {
	views, err := a.content.ListPosts(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoPosts) {
			a.message("⚠️ Aucun post disponible.")
			return nil, false, nil
		}
		return nil, false, a.internalError(ctx, "list posts", err)
	}
	return views, true, nil
}

func (a *App) waitKey() {
	a.screen.Display("\nAppuyez sur une touche pour revenir au menu...")
	_, _ = a.screen.ReadKey()
}

func renderPosts(views []models.PostView) string {
	var b strings.Builder
	for _, v := range views {
		b.WriteString(renderPost(v))
	}
	return b.String()
}

func renderPost(v models.PostView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n📌 %s (par %s)\n", v.Title, v.AuthorName)
	fmt.Fprintf(&b, "   %s\n", v.Content)
	fmt.Fprintf(&b, "   [ID du post : %d]\n", v.ID)
	if len(v.Comments) == 0 {
		b.WriteString("   Aucun commentaire\n")
		return b.String()
	}
	b.WriteString("   Commentaires :\n")
	for _, c := range v.Comments {
		fmt.Fprintf(&b, "   - %s : %s\n", c.AuthorName, c.Content)
	}
	return b.String()
}
