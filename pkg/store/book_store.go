package store

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// BookStore manages book records. Book names are unique.
// Deleting a book leaves it on employees' reading lists; readers filter it out.
// NOTE: This store does NOT handle locking - callers must ensure proper synchronization
type BookStore struct {
	records   recordSet
	allocator *IDAllocator
	names     *UniqueIndex
}

// newBookStore creates a new BookStore instance
func newBookStore(c cache.Cache, allocator *IDAllocator) *BookStore {
	return &BookStore{
		records:   recordSet{cache: c, kind: bookKind},
		allocator: allocator,
		names:     NewUniqueIndex(c, bookNamesKey, "book name"),
	}
}

func (s *BookStore) Create(ctx context.Context, book types.Book) (int64, error) {
	if err := validateRecord(book); err != nil {
		return 0, err
	}
	if err := s.names.ensureUnclaimed(ctx, book.Name); err != nil {
		return 0, err
	}

	id, err := s.allocator.Allocate(ctx, bookKind)
	if err != nil {
		return 0, err
	}
	if err := s.names.Claim(ctx, book.Name); err != nil {
		return 0, err
	}
	if err := s.records.insert(ctx, id, bookFields(book)); err != nil {
		return 0, err
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"book_id": id,
		"name":    book.Name,
	}).Info("book created")
	return id, nil
}

func (s *BookStore) Get(ctx context.Context, id int64) (*types.Book, error) {
	fields, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return bookFromFields(id, fields), nil
}

func (s *BookStore) List(ctx context.Context) ([]types.Book, error) {
	stored, err := s.records.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	books := make([]types.Book, 0, len(stored))
	for _, rec := range stored {
		books = append(books, *bookFromFields(rec.id, rec.fields))
	}
	return books, nil
}

func (s *BookStore) Update(ctx context.Context, id int64, update types.BookUpdate) (*types.Book, error) {
	if err := validateRecord(update); err != nil {
		return nil, err
	}
	current, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}

	nameChanged := changed(update.Name, current[fieldName])
	if nameChanged {
		if err := s.names.ensureUnclaimed(ctx, *update.Name); err != nil {
			return nil, err
		}
	}

	updates := bookUpdateFields(update)
	if err := s.records.write(ctx, id, updates); err != nil {
		return nil, err
	}
	if nameChanged {
		if err := s.names.move(ctx, current[fieldName], *update.Name); err != nil {
			return nil, err
		}
	}

	logger.Logger(ctx).WithField("book_id", id).Info("book updated")
	return bookFromFields(id, mergeFields(current, updates)), nil
}

// Delete removes the book and frees its name. Reading lists are not touched
// Deleting an unknown id is a no-op
func (s *BookStore) Delete(ctx context.Context, id int64) error {
	fields, err := s.records.load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.names.Release(ctx, fields[fieldName]); err != nil {
		return err
	}
	if err := s.records.remove(ctx, id); err != nil {
		return err
	}

	logger.Logger(ctx).WithField("book_id", id).Info("book deleted")
	return nil
}
