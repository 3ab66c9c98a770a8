package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/google/uuid"
)

type AddressRepo interface {
	ListAddresses(ctx context.Context) ([]entities.Address, error)
	GetAddress(ctx context.Context, id string) (entities.Address, error)
	SaveAddress(ctx context.Context, a entities.Address) error
	DeleteAddress(ctx context.Context, id string) error
}

// addressService owns the address book. Every mutation runs under one lock so the
// single-default invariant holds between calls.
type addressService struct {
	mu     sync.Mutex
	logger *slog.Logger
	repo   AddressRepo
	strict bool
}

// NewAddressService returns ErrAddressNotFound for unknown ids in strict mode and
// ignores them otherwise.
func NewAddressService(logger *slog.Logger, repo AddressRepo, strict bool) *addressService {
	return &addressService{
		logger: logger.With(slog.String("service", "address")),
		repo:   repo,
		strict: strict,
	}
}

func (s *addressService) ListAddresses(ctx context.Context) ([]entities.Address, error) {
	return s.repo.ListAddresses(ctx)
}

func (s *addressService) GetAddress(ctx context.Context, id string) (entities.Address, error) {
	return s.repo.GetAddress(ctx, id)
}

// DefaultAddress returns false when the address book is empty.
func (s *addressService) DefaultAddress(ctx context.Context) (entities.Address, bool, error) {
	list, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return entities.Address{}, false, err
	}
	for _, a := range list {
		if a.IsDefault {
			return a, true, nil
		}
	}
	return entities.Address{}, false, nil
}

func (s *addressService) AddAddress(ctx context.Context, fields entities.AddressFields) (entities.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to list addresses: %w", err)
	}

	a := entities.Address{ID: newAddressID()}
	fields.Apply(&a)

	if len(list) == 0 || fields.IsDefault {
		if err := s.setDefault(ctx, list, ""); err != nil {
			return entities.Address{}, err
		}
		a.IsDefault = true
	}

	if err := s.repo.SaveAddress(ctx, a); err != nil {
		return entities.Address{}, fmt.Errorf("failed to save address: %w", err)
	}

	s.logger.Debug("address added", slog.String("id", a.ID), slog.Bool("default", a.IsDefault))
	return a, s.ensureDefault(ctx)
}

// UpdateAddress replaces the editable fields. Asking for IsDefault makes the address
// the default; the current default cannot be unset this way.
func (s *addressService) UpdateAddress(ctx context.Context, id string, fields entities.AddressFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.GetAddress(ctx, id)
	if err != nil {
		return s.notFound(err, id)
	}

	fields.Apply(&a)
	if fields.IsDefault && !a.IsDefault {
		list, err := s.repo.ListAddresses(ctx)
		if err != nil {
			return fmt.Errorf("failed to list addresses: %w", err)
		}
		if err := s.setDefault(ctx, list, id); err != nil {
			return err
		}
		a.IsDefault = true
	}

	if err := s.repo.SaveAddress(ctx, a); err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}

	s.logger.Debug("address updated", slog.String("id", id))
	return s.ensureDefault(ctx)
}

// DeleteAddress removes the address; if it was the default the first remaining
// address becomes the default.
func (s *addressService) DeleteAddress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.GetAddress(ctx, id)
	if err != nil {
		return s.notFound(err, id)
	}

	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	if a.IsDefault {
		list, err := s.repo.ListAddresses(ctx)
		if err != nil {
			return fmt.Errorf("failed to list addresses: %w", err)
		}
		if len(list) > 0 {
			if err := s.setDefault(ctx, list, list[0].ID); err != nil {
				return err
			}
		}
	}

	s.logger.Debug("address deleted", slog.String("id", id), slog.Bool("was_default", a.IsDefault))
	return s.ensureDefault(ctx)
}

func (s *addressService) SetDefaultAddress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.GetAddress(ctx, id); err != nil {
		return s.notFound(err, id)
	}

	list, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list addresses: %w", err)
	}
	if err := s.setDefault(ctx, list, id); err != nil {
		return err
	}

	s.logger.Debug("default address changed", slog.String("id", id))
	return s.ensureDefault(ctx)
}

// setDefault marks id as the only default among list. An empty id clears all defaults.
func (s *addressService) setDefault(ctx context.Context, list []entities.Address, id string) error {
	for _, a := range list {
		want := a.ID == id
		if a.IsDefault == want {
			continue
		}
		a.IsDefault = want
		if err := s.repo.SaveAddress(ctx, a); err != nil {
			return fmt.Errorf("failed to save address: %w", err)
		}
	}
	return nil
}

// ensureDefault repairs the book if it ever ends up with zero or several defaults.
func (s *addressService) ensureDefault(ctx context.Context) error {
	list, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list addresses: %w", err)
	}
	if len(list) == 0 {
		return nil
	}

	keep := ""
	count := 0
	for _, a := range list {
		if a.IsDefault {
			if keep == "" {
				keep = a.ID
			}
			count++
		}
	}
	if count == 1 {
		return nil
	}

	if keep == "" {
		keep = list[0].ID
	}
	s.logger.Warn("default address invariant repaired", slog.Int("defaults", count), slog.String("default", keep))
	return s.setDefault(ctx, list, keep)
}

func (s *addressService) notFound(err error, id string) error {
	if !errors.Is(err, entities.ErrAddressNotFound) {
		return fmt.Errorf("failed to get address: %w", err)
	}
	if s.strict {
		return err
	}
	s.logger.Debug("ignoring unknown address", slog.String("id", id))
	return nil
}

func newAddressID() string {
	return "addr_" + uuid.NewString()[:8]
}
