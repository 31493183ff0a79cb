// Package jsonstore is the document storage backend. The whole dataset lives
// in one JSON file with three collections (users, posts, comments). Every
// operation re-reads the file, so edits made by another process between
// calls are picked up, and every mutation rewrites it in full.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/filex"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

const filePerm = 0o644

type userDoc struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type postDoc struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type commentDoc struct {
	ID      int64  `json:"id"`
	PostID  int64  `json:"post_id"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}

type document struct {
	Users    []userDoc    `json:"users"`
	Posts    []postDoc    `json:"posts"`
	Comments []commentDoc `json:"comments"`
}

func emptyDocument() *document {
	return &document{
		Users:    []userDoc{},
		Posts:    []postDoc{},
		Comments: []commentDoc{},
	}
}

type Options struct {
	Path string
	// AtomicWrites writes through a temp file and rename instead of
	// truncating the data file in place.
	AtomicWrites bool
	Logger       logging.Logger
}

type Store struct {
	mu     sync.Mutex
	path   string
	atomic bool
	log    logging.Logger
}

// Open returns a store over the file at opts.Path, creating it with empty
// collections when it does not exist.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("json store path is empty")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	s := &Store{path: opts.Path, atomic: opts.AtomicWrites, log: log.With("backend", "json")}

	if !filex.Exists(s.path) {
		if err := s.save(emptyDocument()); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "created data file", "path", s.path)
	}
	return s, nil
}

func (s *Store) Kind() models.BackendKind {
	return models.BackendJSON
}

func (s *Store) Close() error {
	return nil
}

// load reads the whole file. A missing or unparsable file yields empty
// collections; the latter is logged as a warning.
func (s *Store) load(ctx context.Context) (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyDocument(), nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	doc := emptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		s.log.Warn(ctx, "data file unreadable, using empty collections",
			"path", s.path, "error", fmt.Errorf("%w: %v", common.ErrCorruptStore, err))
		return emptyDocument(), nil
	}

	if doc.Users == nil {
		doc.Users = []userDoc{}
	}
	if doc.Posts == nil {
		doc.Posts = []postDoc{}
	}
	if doc.Comments == nil {
		doc.Comments = []commentDoc{}
	}
	return doc, nil
}

func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}

	if s.atomic {
		err = filex.WriteFileAtomic(s.path, data, filePerm)
	} else {
		err = filex.WriteFile(s.path, data, filePerm)
	}
	if err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}

// update runs fn on a freshly loaded document and persists it when fn
// succeeds.
func (s *Store) update(ctx context.Context, fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) view(ctx context.Context, fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

func (d *document) userByID(id int64) (userDoc, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return userDoc{}, false
}

func (d *document) postByID(id int64) (postDoc, bool) {
	for _, p := range d.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return postDoc{}, false
}

func nextUserID(d *document) int64 {
	var last int64
	for _, u := range d.Users {
		if u.ID > last {
			last = u.ID
		}
	}
	return last + 1
}

func nextPostID(d *document) int64 {
	var last int64
	for _, p := range d.Posts {
		if p.ID > last {
			last = p.ID
		}
	}
	return last + 1
}

func nextCommentID(d *document) int64 {
	var last int64
	for _, c := range d.Comments {
		if c.ID > last {
			last = c.ID
		}
	}
	return last + 1
}
