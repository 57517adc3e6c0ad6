package subscriber

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"newsletter/internal/subscriptions/models"
	"newsletter/internal/subscriptions/ports"
	id "newsletter/pkg/domain"
	"newsletter/pkg/platform/sentinel"
	"newsletter/pkg/requestcontext"
)

// InMemory is a process-local subscriber store. It enforces the same
// uniqueness and referential rules as the PostgreSQL schema and doubles as its
// own StoreTx: RunInTx serialises transactions and restores a snapshot when
// the callback fails.
type InMemory struct {
	txMu sync.Mutex

	mu                sync.RWMutex
	subscribers       map[id.SubscriberID]models.Subscriber
	subscriberByEmail map[string]id.SubscriberID
	tokens            map[string]id.SubscriberID
	tokenBySubscriber map[id.SubscriberID]models.SubscriptionToken
}

func NewInMemory() *InMemory {
	return &InMemory{
		subscribers:       make(map[id.SubscriberID]models.Subscriber),
		subscriberByEmail: make(map[string]id.SubscriberID),
		tokens:            make(map[string]id.SubscriberID),
		tokenBySubscriber: make(map[id.SubscriberID]models.SubscriptionToken),
	}
}

// RunInTx runs fn against the store. Writes made by fn are discarded if it
// returns an error.
func (s *InMemory) RunInTx(ctx context.Context, fn func(store ports.SubscriberStore) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted: %w", err)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *InMemory) FindPendingTokenByEmail(_ context.Context, email models.SubscriberEmail) (models.SubscriptionToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscriberID, ok := s.subscriberByEmail[email.String()]
	if !ok {
		return models.SubscriptionToken{}, sentinel.ErrNotFound
	}
	if subscriber := s.subscribers[subscriberID]; !subscriber.IsPending() {
		return models.SubscriptionToken{}, sentinel.ErrNotFound
	}
	token, ok := s.tokenBySubscriber[subscriberID]
	if !ok {
		return models.SubscriptionToken{}, sentinel.ErrNotFound
	}
	return token, nil
}

func (s *InMemory) InsertSubscriber(ctx context.Context, subscriber models.NewSubscriber) (id.SubscriberID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.subscriberByEmail[subscriber.Email.String()]; taken {
		return id.SubscriberID{}, fmt.Errorf("insert subscriber: %w", sentinel.ErrAlreadyUsed)
	}
	subscriberID := id.NewSubscriberID()
	s.subscribers[subscriberID] = models.Subscriber{
		ID:           subscriberID,
		Name:         subscriber.Name,
		Email:        subscriber.Email,
		SubscribedAt: requestcontext.Now(ctx),
		Status:       models.StatusPendingConfirmation,
	}
	s.subscriberByEmail[subscriber.Email.String()] = subscriberID
	return subscriberID, nil
}

func (s *InMemory) StoreToken(_ context.Context, subscriberID id.SubscriberID, token models.SubscriptionToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscribers[subscriberID]; !ok {
		return fmt.Errorf("store token for unknown subscriber %s: %w", subscriberID, sentinel.ErrInvalidState)
	}
	if _, taken := s.tokens[token.String()]; taken {
		return fmt.Errorf("store token: %w", sentinel.ErrAlreadyUsed)
	}
	if _, taken := s.tokenBySubscriber[subscriberID]; taken {
		return fmt.Errorf("store second token for subscriber %s: %w", subscriberID, sentinel.ErrAlreadyUsed)
	}
	s.tokens[token.String()] = subscriberID
	s.tokenBySubscriber[subscriberID] = token
	return nil
}

func (s *InMemory) FindSubscriberIDByToken(_ context.Context, token models.SubscriptionToken) (id.SubscriberID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscriberID, ok := s.tokens[token.String()]
	if !ok {
		return id.SubscriberID{}, sentinel.ErrNotFound
	}
	return subscriberID, nil
}

func (s *InMemory) MarkConfirmed(_ context.Context, subscriberID id.SubscriberID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriber, ok := s.subscribers[subscriberID]
	if !ok {
		return fmt.Errorf("mark subscriber %s confirmed: %w", subscriberID, sentinel.ErrNotFound)
	}
	subscriber.Confirm()
	s.subscribers[subscriberID] = subscriber
	return nil
}

// FindByID returns a copy of the stored subscriber.
func (s *InMemory) FindByID(_ context.Context, subscriberID id.SubscriberID) (*models.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscriber, ok := s.subscribers[subscriberID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &subscriber, nil
}

// FindByEmail returns a copy of the subscriber registered with email.
func (s *InMemory) FindByEmail(ctx context.Context, email models.SubscriberEmail) (*models.Subscriber, error) {
	s.mu.RLock()
	subscriberID, ok := s.subscriberByEmail[email.String()]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.FindByID(ctx, subscriberID)
}

// Count returns the number of subscriber rows and token rows.
func (s *InMemory) Count() (subscribers, tokens int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers), len(s.tokens)
}

type memorySnapshot struct {
	subscribers       map[id.SubscriberID]models.Subscriber
	subscriberByEmail map[string]id.SubscriberID
	tokens            map[string]id.SubscriberID
	tokenBySubscriber map[id.SubscriberID]models.SubscriptionToken
}

func (s *InMemory) snapshot() memorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memorySnapshot{
		subscribers:       maps.Clone(s.subscribers),
		subscriberByEmail: maps.Clone(s.subscriberByEmail),
		tokens:            maps.Clone(s.tokens),
		tokenBySubscriber: maps.Clone(s.tokenBySubscriber),
	}
}

func (s *InMemory) restore(snap memorySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = snap.subscribers
	s.subscriberByEmail = snap.subscriberByEmail
	s.tokens = snap.tokens
	s.tokenBySubscriber = snap.tokenBySubscriber
}
