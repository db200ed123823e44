package store

import (
	"context"

	"healthmate-api/internal/model"
)

func (s *Store) CreateHealthRecord(ctx context.Context, r *model.HealthRecord) error {
	// date is server-assigned via the column default; back-dating is not possible
	_, err := s.pool.Exec(ctx,
		`INSERT INTO health_data (id, user_id, weight, blood_pressure, steps, notes)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		r.ID, r.UserID, r.Weight, r.BloodPressure, r.Steps, r.Notes,
	)
	return err
}

// DeleteHealthRecord removes a record only if userID owns it and reports
// how many rows went away.
func (s *Store) DeleteHealthRecord(ctx context.Context, id, userID string) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM health_data WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) ListHealthRecords(ctx context.Context, userID string) ([]model.HealthRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, date, weight, blood_pressure, steps, notes, created_at
		 FROM health_data
		 WHERE user_id = $1
		 ORDER BY date DESC, created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HealthRecord
	for rows.Next() {
		var r model.HealthRecord
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.Date, &r.Weight,
			&r.BloodPressure, &r.Steps, &r.Notes, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
