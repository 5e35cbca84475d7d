package services

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier reports human-readable status. Delivery is best effort.
type Notifier interface {
	Notify(message string, severity Severity)
}

type Subscriber func(message string, severity Severity)

// NotificationService fans messages out to its subscribers. Build one per process
// and hand it to the services that report status.
type NotificationService struct {
	mu          sync.RWMutex
	subscribers map[uint64]Subscriber
	nextID      uint64
	logger      *zap.Logger
}

func NewNotificationService(logger *zap.Logger) *NotificationService {
	return &NotificationService{
		subscribers: make(map[uint64]Subscriber),
		logger:      logger,
	}
}

// Subscribe registers fn and returns a function that removes it again.
func (s *NotificationService) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

func (s *NotificationService) Notify(message string, severity Severity) {
	if severity == "" {
		severity = SeverityInfo
	}

	s.mu.RLock()
	ids := make([]uint64, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	subs := make([]Subscriber, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		subs = append(subs, s.subscribers[id])
	}
	s.mu.RUnlock()

	s.logger.Debug("notify", zap.String("message", message), zap.String("severity", string(severity)), zap.Int("subscribers", len(subs)))

	for _, fn := range subs {
		s.deliver(fn, message, severity)
	}
}

func (s *NotificationService) deliver(fn Subscriber, message string, severity Severity) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("notification subscriber panicked", zap.Any("panic", r))
		}
	}()
	fn(message, severity)
}
