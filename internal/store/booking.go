package store

import (
	"context"

	"healthmate-api/internal/model"
)

func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	// status comes from the column default, never from the caller
	_, err := s.pool.Exec(ctx,
		`INSERT INTO bookings (id, user_id, name, email, address, date, time)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		b.ID, b.UserID, b.Name, b.Email, b.Address, b.Date, b.Time,
	)
	return err
}

// CancelBooking flips pending -> cancelled in one conditional statement and
// reports how many rows changed. Zero means the booking was missing, owned
// by someone else, or already cancelled.
func (s *Store) CancelBooking(ctx context.Context, id, userID string) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE bookings SET status = $1
		 WHERE id = $2 AND user_id = $3 AND status = $4`,
		model.StatusCancelled, id, userID, model.StatusPending,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) ListBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, email, address, date, time, status, created_at
		 FROM bookings
		 WHERE user_id = $1
		 ORDER BY date DESC, created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Name, &b.Email, &b.Address,
			&b.Date, &b.Time, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
