package catalog

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 128

// Service is the read side of the catalog used by the store and the console.
type Service struct {
	repo  Repository
	books *lru.Cache[string, *Book]
}

func NewService(repo Repository, cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	c, err := lru.New[string, *Book](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("catalog cache: %w", err)
	}
	return &Service{repo: repo, books: c}, nil
}

func (s *Service) Add(ctx context.Context, b *Book) error {
	if err := s.repo.Add(ctx, b); err != nil {
		return err
	}
	s.books.Add(b.ID(), b)
	return nil
}

// All lists every book in insertion order.
func (s *Service) All(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Book, error) {
	if b, ok := s.books.Get(id); ok {
		return b, nil
	}
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.books.Add(id, b)
	return b, nil
}

// Recommend returns the highest adjusted-price book of each kind. An empty
// catalog gives an empty map.
func (s *Service) Recommend(ctx context.Context) (map[Kind]*Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BestByCategory(books), nil
}
