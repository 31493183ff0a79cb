package models

import (
	"fmt"
	"strings"
	"time"
)

// BackendKind names one of the two storage variants.
type BackendKind string

const (
	BackendSQL  BackendKind = "sql"
	BackendJSON BackendKind = "json"
)

// ParseBackendKind accepts "sql"/"json" and the single-letter menu keys
// "s"/"j", case-insensitively.
func ParseBackendKind(s string) (BackendKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sql", "s":
		return BackendSQL, nil
	case "json", "j":
		return BackendJSON, nil
	default:
		return "", fmt.Errorf("unknown backend %q", s)
	}
}

func (k BackendKind) Valid() bool {
	return k == BackendSQL || k == BackendJSON
}

// Other returns the variant that is not k.
func (k BackendKind) Other() BackendKind {
	if k == BackendSQL {
		return BackendJSON
	}
	return BackendSQL
}

// Session is the persisted "who is logged in, through which backend" record.
type Session struct {
	SessionID   string
	UserID      int64
	BackendKind BackendKind
	CreatedAt   time.Time
}
