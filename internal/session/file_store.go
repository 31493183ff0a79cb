package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/filex"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/google/uuid"
)

const filePerm = 0o600

// record is the sidecar file layout. user_id may be written as a number or
// as a numeric string. Older files name the backend storage_mode; it is read
// when backend_kind is absent and never written.
type record struct {
	SessionID   string      `json:"session_id"`
	UserID      json.Number `json:"user_id"`
	BackendKind string      `json:"backend_kind"`
	StorageMode string      `json:"storage_mode,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// FileStore keeps the session record in a small JSON file next to the data.
type FileStore struct {
	path string
	log  logging.Logger
	now  func() time.Time
}

func NewFileStore(path string, log logging.Logger) *FileStore {
	if log == nil {
		log = logging.Nop()
	}
	return &FileStore{path: path, log: log.With("component", "session"), now: time.Now}
}

// Save overwrites any previous record with a new session for userID.
func (s *FileStore) Save(ctx context.Context, userID int64, kind models.BackendKind) error {
	rec := record{
		SessionID:   uuid.NewString(),
		UserID:      json.Number(fmt.Sprint(userID)),
		BackendKind: string(kind),
		CreatedAt:   s.now().UTC(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := filex.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.log.Debug(ctx, "session saved", "session_id", rec.SessionID, "user_id", userID, "backend", kind)
	return nil
}

func (s *FileStore) Load(ctx context.Context) (*models.Session, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn(ctx, "session unreadable", "path", s.path, "error", err)
		}
		return nil, false
	}

	sess, err := decode(data)
	if err != nil {
		s.log.Warn(ctx, "session ignored", "path", s.path, "error", err)
		return nil, false
	}
	return sess, true
}

func decode(data []byte) (*models.Session, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptSession, err)
	}

	userID, err := rec.UserID.Int64()
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("%w: bad user_id %q", common.ErrCorruptSession, rec.UserID)
	}

	raw := rec.BackendKind
	if raw == "" {
		raw = rec.StorageMode
	}
	kind := models.BackendKind(raw)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown backend_kind %q", common.ErrCorruptSession, raw)
	}

	return &models.Session{
		SessionID:   rec.SessionID,
		UserID:      userID,
		BackendKind: kind,
		CreatedAt:   rec.CreatedAt,
	}, nil
}

// Clear removes the record. A missing file is not an error.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	s.log.Debug(ctx, "session cleared")
	return nil
}
