package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-restaurant/app/models"
)

var ErrDuplicateReservation = errors.New("reservation id already recorded")

// ReservationRepository keeps bookings in the order they were made.
type ReservationRepository interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Append(ctx context.Context, reservation models.Reservation) error
}

type reservationRepository struct {
	store KeyValueStore
	codec Codec
}

func NewReservationRepository(store KeyValueStore, codec Codec) ReservationRepository {
	return &reservationRepository{store: store, codec: codec}
}

func (r *reservationRepository) List(ctx context.Context) ([]models.Reservation, error) {
	data, err := r.store.Get(ctx, ReservationsKey)
	if err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	if err := r.codec.Unmarshal(ReservationsKey, data, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Append adds reservation at the end. An unreadable stored list is replaced.
func (r *reservationRepository) Append(ctx context.Context, reservation models.Reservation) error {
	reservations, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrKeyNotFound) && !errors.Is(err, ErrMalformed) {
		return err
	}

	for _, existing := range reservations {
		if existing.ID == reservation.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateReservation, reservation.ID)
		}
	}

	reservations = append(reservations, reservation)
	data, err := r.codec.Marshal(ReservationsKey, reservations)
	if err != nil {
		return fmt.Errorf("failed to encode reservations: %w", err)
	}
	return r.store.Set(ctx, ReservationsKey, data)
}
