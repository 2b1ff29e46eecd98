package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("record not found")

const (
	// Key prefixes for different entity types
	PostKeyPrefix     = "post:"
	PostTimeKeyPrefix = "post_ts:"
	CommentKeyPrefix  = "comment:"
)

// postKey addresses a post document by ID.
func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

// postTimeKey is the secondary index entry for descending creation-time
// scans. The zero-padded nanosecond timestamp makes lexicographic key
// order equal chronological order.
func postTimeKey(t time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", PostTimeKeyPrefix, t.UnixNano(), id))
}

// commentKey embeds the post ID and creation time so a reverse prefix
// scan yields one post's comments most-recent-first.
func commentKey(postID string, t time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d:%s", CommentKeyPrefix, postID, t.UnixNano(), id))
}

// commentPostPrefix is the scan prefix for all comments of one post.
func commentPostPrefix(postID string) []byte {
	return []byte(CommentKeyPrefix + postID + ":")
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
