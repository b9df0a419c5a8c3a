package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/domain/repository"
	"github.com/roadtrip-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type tripRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTripRepository(db *DB) repository.TripRepository {
	return &tripRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *tripRepository) Save(ctx context.Context, trip *domain.Trip) (uuid.UUID, error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return uuid.Nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	tripQuery := `
		INSERT INTO trips (id, user_id, name, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	if err := tx.QueryRowContext(
		ctx, tripQuery,
		trip.ID, trip.UserID, trip.Name, trip.Description, trip.ImageURL,
	).Scan(&trip.CreatedAt); err != nil {
		r.logger.Error("Failed to insert trip", zap.String("trip_id", trip.ID.String()), zap.Error(err))
		return uuid.Nil, errors.ErrDatabaseError
	}

	stopQuery := `
		INSERT INTO stops (trip_id, latitude, longitude, stop_type, time_minutes, cost, stop_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	// Slice position is the persisted stop_order, so order stays dense by construction.
	for i, stop := range trip.Stops {
		if _, err := tx.ExecContext(
			ctx, stopQuery,
			trip.ID, stop.Latitude, stop.Longitude, stop.Category.String(),
			stop.TimeMinutes, stop.Cost, i,
		); err != nil {
			r.logger.Error("Failed to insert stop",
				zap.String("trip_id", trip.ID.String()),
				zap.Int("stop_order", i),
				zap.Error(err))
			return uuid.Nil, errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit trip save", zap.Error(err))
		return uuid.Nil, errors.ErrDatabaseError
	}

	return trip.ID, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	tripQuery := `
		SELECT id, user_id, name, description, image_url, created_at
		FROM trips
		WHERE id = $1
	`

	var trip domain.Trip
	err := r.db.GetContext(ctx, &trip, tripQuery, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTripNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get trip", zap.String("trip_id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stops, err := r.getStops(ctx, id)
	if err != nil {
		return nil, err
	}
	trip.Stops = stops

	return &trip, nil
}

func (r *tripRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Trip, error) {
	query := `
		SELECT id, user_id, name, description, image_url, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	trips := []*domain.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, userID); err != nil {
		r.logger.Error("Failed to get user trips", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, trip := range trips {
		stops, err := r.getStops(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		trip.Stops = stops
	}

	return trips, nil
}

func (r *tripRepository) UpdateMetadata(ctx context.Context, id uuid.UUID, meta domain.TripMetadata) error {
	updates := []string{}
	args := []interface{}{}
	argIdx := 1

	if meta.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *meta.Name)
		argIdx++
	}
	if meta.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *meta.Description)
		argIdx++
	}
	if meta.ImageURL != nil {
		updates = append(updates, fmt.Sprintf("image_url = $%d", argIdx))
		args = append(args, *meta.ImageURL)
		argIdx++
	}

	if len(updates) == 0 {
		return errors.ErrInvalidRequest
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE trips SET %s WHERE id = $%d", strings.Join(updates, ", "), argIdx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update trip", zap.String("trip_id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTripNotFound
	}

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	// Stops first, then the trip itself.
	if _, err := tx.ExecContext(ctx, `DELETE FROM stops WHERE trip_id = $1`, id); err != nil {
		r.logger.Error("Failed to delete trip stops", zap.String("trip_id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete trip", zap.String("trip_id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTripNotFound
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit trip delete", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *tripRepository) DeleteStop(ctx context.Context, tripID uuid.UUID, index int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`DELETE FROM stops WHERE trip_id = $1 AND stop_order = $2`,
		tripID, index,
	)
	if err != nil {
		r.logger.Error("Failed to delete stop",
			zap.String("trip_id", tripID.String()),
			zap.Int("stop_order", index),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrStopNotFound
	}

	// Shift later stops down by one so stop_order stays dense and zero-based.
	// Same transaction as the delete: either both land or neither does.
	if _, err := tx.ExecContext(
		ctx,
		`UPDATE stops SET stop_order = stop_order - 1 WHERE trip_id = $1 AND stop_order > $2`,
		tripID, index,
	); err != nil {
		r.logger.Error("Failed to renumber stops",
			zap.String("trip_id", tripID.String()),
			zap.Int("stop_order", index),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit stop delete", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *tripRepository) ListAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `
		SELECT id, user_id, name, description, image_url, created_at
		FROM trips
		ORDER BY user_id, created_at DESC
	`

	trips := []*domain.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query); err != nil {
		r.logger.Error("Failed to list trips", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, trip := range trips {
		stops, err := r.getStops(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		trip.Stops = stops
	}

	return trips, nil
}

func (r *tripRepository) getStops(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	query := `
		SELECT latitude, longitude, stop_type, time_minutes, cost
		FROM stops
		WHERE trip_id = $1
		ORDER BY stop_order
	`

	stops := []domain.Stop{}
	if err := r.db.SelectContext(ctx, &stops, query, tripID); err != nil {
		r.logger.Error("Failed to get trip stops", zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stops, nil
}
