package services

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Pagination cursors are opaque tokens encoding the creation instant of
// the last item on a page. The encoding is reversible on purpose: a token
// handed back as "afterCursor" must decode to an equivalent instant.

// EncodeCursor packs an instant into an opaque pagination token.
func EncodeCursor(t time.Time) string {
	return base64.URLEncoding.EncodeToString([]byte(t.UTC().Format(time.RFC3339Nano)))
}

// DecodeCursor unpacks a token produced by EncodeCursor.
func DecodeCursor(cursor string) (time.Time, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cursor: %v", err)
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cursor: %v", err)
	}
	return t, nil
}
