package services

import (
	"context"
	"errors"
	"sync"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type notice struct {
	Message  string
	Severity Severity
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Notify(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{message, severity})
}

func (n *recordingNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.notices))
	for _, x := range n.notices {
		out = append(out, x.Message)
	}
	return out
}

// countingStore wraps a MemoryStore and counts writes per key.
type countingStore struct {
	*repositories.MemoryStore
	mu     sync.Mutex
	writes map[string]int
	fail   error
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: repositories.NewMemoryStore(), writes: map[string]int{}}
}

func (s *countingStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.writes[key]++
	fail := s.fail
	s.mu.Unlock()
	if fail != nil {
		return fail
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *countingStore) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

var errDiskFull = errors.New("disk full")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func salmon() *models.LineItem {
	return &models.LineItem{ID: "m1", Name: "Grilled Salmon", Price: dec("28.99")}
}

func soup() *models.LineItem {
	return &models.LineItem{ID: "s2", Name: "Soup of the Day", Price: dec("8.99")}
}

func newTestCart(store repositories.KeyValueStore, notifier Notifier) *CartService {
	repo := repositories.NewCartRepository(store, repositories.JSONCodec{})
	return NewCartService(repo, notifier, zap.NewNop(), dec("0.0825"))
}
