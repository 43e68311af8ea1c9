package swap

import (
	"context"
	"fmt"
	"strings"

	"mnestswap/internal/adapters"
	"mnestswap/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service struct {
	converter *Converter
	account   domain.Account
	sessions  adapters.SessionStore
}

func (s *Service) Account() domain.Account {
	return s.account
}

// Convert applies edit to an empty form without touching any session.
func (s *Service) Convert(_ context.Context, edit domain.Edit) (domain.FormState, error) {
	return s.converter.Apply(domain.FormState{}, edit, s.account.ExchangeRate)
}

func (s *Service) CreateSession(ctx context.Context) (domain.Session, error) {
	session := domain.Session{ID: uuid.New()}
	if err := s.sessions.Set(session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	logrus.WithContext(ctx).WithField("session_id", session.ID).Debug("Session created")
	return session, nil
}

func (s *Service) GetSession(_ context.Context, id uuid.UUID) (domain.Session, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

// ApplyEdit updates the session form; a rejected edit leaves the stored form as it was.
func (s *Service) ApplyEdit(ctx context.Context, id uuid.UUID, edit domain.Edit) (domain.FormState, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return domain.FormState{}, err
	}

	next, err := s.converter.Apply(session.Form, edit, s.account.ExchangeRate)
	if err != nil {
		return session.Form, err
	}

	session.Form = next
	if err = s.sessions.Set(session); err != nil {
		return domain.FormState{}, fmt.Errorf("failed to store session %s: %w", id, err)
	}
	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"session_id":  id,
		"field":       edit.Field,
		"source":      next.Source,
		"destination": next.Destination,
	}).Debug("Swap form updated")
	return next, nil
}

func (s *Service) ResetSession(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSession(ctx, id); err != nil {
		return err
	}
	s.sessions.Delete(id)
	return nil
}

// SetWalletAccount records the address the wallet widget reports for a session.
// An empty address marks the wallet as disconnected.
func (s *Service) SetWalletAccount(ctx context.Context, id uuid.UUID, address string) error {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return err
	}
	session.WalletAddress = strings.TrimSpace(address)
	if err = s.sessions.Set(session); err != nil {
		return fmt.Errorf("failed to store session %s: %w", id, err)
	}
	return nil
}

func NewService(converter *Converter, account domain.Account, sessions adapters.SessionStore) *Service {
	return &Service{converter: converter, account: account, sessions: sessions}
}
