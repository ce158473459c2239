package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/storage"
)

var ErrEmailTaken = errors.New("email is already in use")

type UserRepository interface {
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, bool)
	EmailExists(ctx context.Context, email string) bool
	Append(ctx context.Context, user domain.User) error
}

type UserLedger struct {
	ledger *ledger[domain.User]
}

func NewUserLedger(store storage.Store, key string) *UserLedger {
	return &UserLedger{ledger: newLedger[domain.User](store, key)}
}

// FindByCredentials matches email and password exactly; first match wins.
func (l *UserLedger) FindByCredentials(ctx context.Context, email, password string) (*domain.User, bool) {
	for _, u := range l.ledger.list(ctx) {
		if u.Email == email && u.Password == password {
			found := u
			return &found, true
		}
	}
	return nil, false
}

func (l *UserLedger) EmailExists(ctx context.Context, email string) bool {
	return emailIn(l.ledger.list(ctx), email)
}

// Append adds the user unless the email is already registered, checked under
// the same lock as the write.
func (l *UserLedger) Append(ctx context.Context, user domain.User) error {
	_, err := l.ledger.appendIf(ctx, user, func(existing []domain.User, _ *domain.User) error {
		if emailIn(existing, user.Email) {
			return ErrEmailTaken
		}
		return nil
	})
	return err
}

func emailIn(users []domain.User, email string) bool {
	for _, u := range users {
		if u.Email == email {
			return true
		}
	}
	return false
}

var _ UserRepository = (*UserLedger)(nil)
