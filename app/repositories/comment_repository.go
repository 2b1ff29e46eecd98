package repositories

import (
	"fmt"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment. The key embeds post ID and creation time
// for efficient most-recent-first listing per post.
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if comment.ID == "" {
			comment.ID = uuid.NewString()
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		return txn.Set(commentKey(comment.PostID, comment.CreatedAt, comment.ID), data)
	})
}

// GetByID retrieves a comment by ID. Comment keys are addressed by post
// and time, so a lookup by bare ID scans the comment keyspace.
func (r *BadgerCommentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	var found bool

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %v", err)
			}
			if comment.ID == id {
				found = true
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &comment, nil
}

// ListByPost retrieves all comments for a post, most recent first.
func (r *BadgerCommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	var comments []*models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Reverse = true
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		prefix := commentPostPrefix(postID)
		seek := append(append([]byte{}, prefix...), 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %v", err)
			}
			comments = append(comments, &comment)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete deletes a comment by ID.
func (r *BadgerCommentRepository) Delete(id string) error {
	comment, err := r.GetByID(id)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(commentKey(comment.PostID, comment.CreatedAt, comment.ID))
	})
}
