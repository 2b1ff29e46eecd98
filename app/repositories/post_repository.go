package repositories

import (
	"fmt"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post, assigning it a store ID, and writes its
// creation-time index entry in the same transaction.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if post.ID == "" {
			post.ID = uuid.NewString()
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		if err := txn.Set(postKey(post.ID), data); err != nil {
			return err
		}
		return txn.Set(postTimeKey(post.CreatedAt, post.ID), []byte(post.ID))
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		return readPost(txn, id, &post)
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves posts ordered by creation time descending. Category
// equality and the strictly-before bound are applied during the scan; the
// limit counts posts that survived both predicates.
func (r *BadgerPostRepository) List(opts PostListOptions) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Reverse = true
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		prefix := []byte(PostTimeKeyPrefix)
		seek := append(append([]byte{}, prefix...), 0xff)
		if !opts.Before.IsZero() {
			// Index keys at exactly the bound sort after this seek key,
			// so the reverse scan starts strictly below it.
			seek = postTimeKey(opts.Before, "")
		}

		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if opts.Limit > 0 && len(posts) >= opts.Limit {
				break
			}

			var id string
			err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			})
			if err != nil {
				return err
			}

			var post models.Post
			if err := readPost(txn, id, &post); err != nil {
				return fmt.Errorf("failed to read post %s: %v", id, err)
			}
			if !opts.Before.IsZero() && !post.CreatedAt.Before(opts.Before) {
				continue
			}
			if opts.Category != "" && post.Category != opts.Category {
				continue
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates an existing post. The creation-time index entry is left
// alone: CreatedAt never changes after create.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post by ID along with its index entry.
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var post models.Post
		if err := readPost(txn, id, &post); err != nil {
			return err
		}

		if err := txn.Delete(postTimeKey(post.CreatedAt, post.ID)); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}

// readPost point-reads a post document inside a transaction.
func readPost(txn *badger.Txn, id string, post *models.Post) error {
	item, err := txn.Get(postKey(id))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, post)
	})
}
