// Package session persists "who is logged in, through which backend" between
// runs of the program.
package session

import (
	"context"

	"github.com/dmitrijs2005/tweetheure/internal/models"
)

// Store keeps at most one session record.
//
// Load never returns an error: a missing or unusable record means there is
// no session.
type Store interface {
	Save(ctx context.Context, userID int64, kind models.BackendKind) error
	Load(ctx context.Context) (*models.Session, bool)
	Clear(ctx context.Context) error
}
