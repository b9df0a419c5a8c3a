package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/roadtrip-service/internal/domain"
)

// TripRepository defines the persistence contract for trips and their ordered stops.
type TripRepository interface {
	// Save persists a trip with its stops in one transaction and returns the assigned id.
	Save(ctx context.Context, trip *domain.Trip) (uuid.UUID, error)

	// GetByID returns a trip with stops ordered by stop_order, or ErrTripNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)

	// GetByUserID returns all trips of a user, newest first.
	GetByUserID(ctx context.Context, userID string) ([]*domain.Trip, error)

	// UpdateMetadata patches trip name/description/image_url.
	UpdateMetadata(ctx context.Context, id uuid.UUID, meta domain.TripMetadata) error

	// Delete removes a trip and cascades to its stops.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteStop removes the stop at index and renumbers later stops down by one.
	// Both happen in the same transaction so stop order stays dense and zero-based.
	DeleteStop(ctx context.Context, tripID uuid.UUID, index int) error

	// ListAll returns every persisted trip, grouped-friendly ordering by user then recency.
	ListAll(ctx context.Context) ([]*domain.Trip, error)
}
