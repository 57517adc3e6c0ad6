//go:build integration

package subscriber_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"newsletter/internal/subscriptions/models"
	"newsletter/internal/subscriptions/ports"
	"newsletter/internal/subscriptions/store/subscriber"
	id "newsletter/pkg/domain"
	"newsletter/pkg/platform/sentinel"
	"newsletter/pkg/requestcontext"
	"newsletter/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *subscriber.PostgresStore
	tx       *subscriber.PostgresTx
	ctx      context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = subscriber.NewPostgres(s.postgres.DB)
	s.tx = subscriber.NewPostgresTx(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	// Truncate in dependency order
	err := s.postgres.TruncateTables(context.Background(), "subscription_tokens", "subscribers")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) newSubscriber(email string) models.NewSubscriber {
	sub, err := models.ParseNewSubscriber("Ursula Le Guin", email)
	s.Require().NoError(err)
	return sub
}

func (s *PostgresStoreSuite) token(raw string) models.SubscriptionToken {
	tok, err := models.ParseSubscriptionToken(raw)
	s.Require().NoError(err)
	return tok
}

func (s *PostgresStoreSuite) TestInsertAndFind() {
	sub := s.newSubscriber("ursula@example.com")
	subscriberID, err := s.store.InsertSubscriber(s.ctx, sub)
	s.Require().NoError(err)
	s.Require().NoError(s.store.StoreToken(s.ctx, subscriberID, s.token("aaaaaaaaaaaaaaaaaaaaaaaaa")))

	found, err := s.store.FindByID(s.ctx, subscriberID)
	s.Require().NoError(err)
	s.Equal("Ursula Le Guin", found.Name.String())
	s.Equal("ursula@example.com", found.Email.String())
	s.Equal(models.StatusPendingConfirmation, found.Status)
	s.True(found.SubscribedAt.Equal(requestcontext.Now(s.ctx)))

	tok, err := s.store.FindPendingTokenByEmail(s.ctx, sub.Email)
	s.Require().NoError(err)
	s.Equal("aaaaaaaaaaaaaaaaaaaaaaaaa", tok.String())

	owner, err := s.store.FindSubscriberIDByToken(s.ctx, tok)
	s.Require().NoError(err)
	s.Equal(subscriberID, owner)
}

func (s *PostgresStoreSuite) TestConstraints() {
	sub := s.newSubscriber("ursula@example.com")
	subscriberID, err := s.store.InsertSubscriber(s.ctx, sub)
	s.Require().NoError(err)
	s.Require().NoError(s.store.StoreToken(s.ctx, subscriberID, s.token("aaaaaaaaaaaaaaaaaaaaaaaaa")))

	s.Run("duplicate email", func() {
		_, err := s.store.InsertSubscriber(s.ctx, sub)
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("second token for one subscriber", func() {
		err := s.store.StoreToken(s.ctx, subscriberID, s.token("bbbbbbbbbbbbbbbbbbbbbbbbb"))
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("token for an unknown subscriber", func() {
		err := s.store.StoreToken(s.ctx, id.NewSubscriberID(), s.token("ccccccccccccccccccccccccc"))
		s.ErrorIs(err, sentinel.ErrInvalidState)
	})

	s.Run("unknown token", func() {
		_, err := s.store.FindSubscriberIDByToken(s.ctx, s.token("ddddddddddddddddddddddddd"))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestMarkConfirmed() {
	sub := s.newSubscriber("ursula@example.com")
	subscriberID, err := s.store.InsertSubscriber(s.ctx, sub)
	s.Require().NoError(err)
	s.Require().NoError(s.store.StoreToken(s.ctx, subscriberID, s.token("aaaaaaaaaaaaaaaaaaaaaaaaa")))

	s.Require().NoError(s.store.MarkConfirmed(s.ctx, subscriberID))
	s.Require().NoError(s.store.MarkConfirmed(s.ctx, subscriberID))

	found, err := s.store.FindByID(s.ctx, subscriberID)
	s.Require().NoError(err)
	s.Equal(models.StatusConfirmed, found.Status)

	_, err = s.store.FindPendingTokenByEmail(s.ctx, sub.Email)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.MarkConfirmed(s.ctx, id.NewSubscriberID()), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRunInTxRollsBack() {
	sub := s.newSubscriber("ursula@example.com")
	boom := errors.New("abort")

	err := s.tx.RunInTx(s.ctx, func(store ports.SubscriberStore) error {
		subscriberID, err := store.InsertSubscriber(s.ctx, sub)
		if err != nil {
			return err
		}
		if err := store.StoreToken(s.ctx, subscriberID, s.token("aaaaaaaaaaaaaaaaaaaaaaaaa")); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.store.FindPendingTokenByEmail(s.ctx, sub.Email)
	s.ErrorIs(err, sentinel.ErrNotFound)
	var n int
	s.Require().NoError(s.postgres.DB.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n))
	s.Zero(n)
}

// TestConcurrentSubscribeSameEmail verifies that concurrent transactions for
// one email leave exactly one subscriber row.
func (s *PostgresStoreSuite) TestConcurrentSubscribeSameEmail() {
	sub := s.newSubscriber("ursula@example.com")
	const goroutines = 20

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := models.NewTokenGenerator(nil)
			err := s.tx.RunInTx(s.ctx, func(store ports.SubscriberStore) error {
				subscriberID, err := store.InsertSubscriber(s.ctx, sub)
				if err != nil {
					return err
				}
				tok, err := gen.Generate()
				if err != nil {
					return err
				}
				return store.StoreToken(s.ctx, subscriberID, tok)
			})
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, sentinel.ErrAlreadyUsed):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successes.Load())
	s.Equal(int32(goroutines-1), conflicts.Load())

	var n int
	s.Require().NoError(s.postgres.DB.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM subscription_tokens`).Scan(&n))
	s.Equal(1, n)
}
