package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campuscs/mentormatch/internal/survey"
)

// ImportRoster stores every participant of a parsed roster under a new
// import batch. The whole import is one transaction: either the full
// roster lands or nothing does.
func (db *DB) ImportRoster(ctx context.Context, sourceFile, tagDelimiter string, roster *survey.Roster) (*ImportBatch, error) {
	batch := &ImportBatch{
		ID:          uuid.New().String(),
		SourceFile:  sourceFile,
		MenteeCount: len(roster.Mentees),
		MentorCount: len(roster.Mentors),
		ImportedAt:  time.Now(),
	}

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO import_batches (id, source_file, mentee_count, mentor_count, imported_at)
			VALUES (?, ?, ?, ?, ?)
		`, batch.ID, batch.SourceFile, batch.MenteeCount, batch.MentorCount, batch.ImportedAt)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, mentee := range roster.Mentees {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO participants (
					id, batch_id, email, name, role, year, time_zone, capacity,
					available_time, experience, fields, topics, hobbies, created_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				uuid.New().String(), batch.ID, mentee.Email, mentee.Name,
				survey.RoleMentee, mentee.Year, mentee.TimeZone, nil,
				mentee.AvailableTime, mentee.Experience,
				mentee.InterestedFields.Join(tagDelimiter),
				mentee.DesiredTopics.Join(tagDelimiter),
				mentee.Hobbies.Join(tagDelimiter),
				now,
			)
			if err != nil {
				return err
			}
		}

		for _, mentor := range roster.Mentors {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO participants (
					id, batch_id, email, name, role, year, time_zone, capacity,
					available_time, experience, fields, topics, hobbies, created_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				uuid.New().String(), batch.ID, mentor.Email, mentor.Name,
				survey.RoleMentor, mentor.Year, mentor.TimeZone, mentor.Capacity,
				mentor.AvailableTime, mentor.Experience,
				mentor.ExperiencedFields.Join(tagDelimiter),
				mentor.KnowledgeableTopics.Join(tagDelimiter),
				mentor.Hobbies.Join(tagDelimiter),
				now,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch, nil
}

// ListOptions controls roster queries
type ListOptions struct {
	// Role filters to "Mentor" or "Mentee"; empty means both
	Role string

	// BatchID filters to one import batch; empty means all
	BatchID string
}

// ListParticipants retrieves stored participants ordered by role then email
func (db *DB) ListParticipants(ctx context.Context, opts ListOptions) ([]Participant, error) {
	query := `
		SELECT id, batch_id, email, name, role, year, time_zone, capacity,
		       available_time, experience, fields, topics, hobbies, created_at
		FROM participants
	`
	var conditions []string
	var args []interface{}

	if opts.Role != "" {
		conditions = append(conditions, "role = ?")
		args = append(args, opts.Role)
	}
	if opts.BatchID != "" {
		conditions = append(conditions, "batch_id = ?")
		args = append(args, opts.BatchID)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY role, email"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		var name sql.NullString
		var capacity sql.NullInt64

		err := rows.Scan(
			&p.ID, &p.BatchID, &p.Email, &name, &p.Role, &p.Year, &p.TimeZone,
			&capacity, &p.AvailableTime, &p.Experience,
			&p.Fields, &p.Topics, &p.Hobbies, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if name.Valid {
			p.Name = &name.String
		}
		if capacity.Valid {
			c := int(capacity.Int64)
			p.Capacity = &c
		}

		participants = append(participants, p)
	}

	return participants, rows.Err()
}

// ListBatches retrieves import batches, newest first
func (db *DB) ListBatches(ctx context.Context) ([]ImportBatch, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, source_file, mentee_count, mentor_count, imported_at
		FROM import_batches ORDER BY imported_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []ImportBatch
	for rows.Next() {
		var b ImportBatch
		if err := rows.Scan(&b.ID, &b.SourceFile, &b.MenteeCount, &b.MentorCount, &b.ImportedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, rows.Err()
}

// GetStats computes aggregate statistics over the stored roster
func (db *DB) GetStats(ctx context.Context) (*RosterStats, error) {
	stats := &RosterStats{}

	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM import_batches`).Scan(&stats.Batches)
	if err != nil {
		return nil, err
	}

	err = db.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN role = ? THEN 1 END),
			COUNT(CASE WHEN role = ? THEN 1 END),
			COALESCE(SUM(capacity), 0),
			COUNT(CASE WHEN role = ? AND capacity = 0 THEN 1 END)
		FROM participants
	`, survey.RoleMentee, survey.RoleMentor, survey.RoleMentor).Scan(
		&stats.Mentees, &stats.Mentors, &stats.TotalCapacity, &stats.ZeroCapacityMentors,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
