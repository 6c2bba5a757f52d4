package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource reads the club records from the clubs table.
// Rows come back in the table's display order (position, then id), the
// same role the array order plays in the data file.
type PostgresSource struct {
	db db
}

// NewPostgresSource constructs a PostgresSource backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresSource(db db) *PostgresSource {
	return &PostgresSource{db: db}
}

// Load returns every club row, normalized.
func (s *PostgresSource) Load(ctx context.Context) ([]domain.Club, error) {
	const q = `
		SELECT id, school, name, one_line, categories, tags, recruiting, recruit_end,
		       apply_url, description, activity_time, location, contact_url, logo, images
		FROM clubs
		ORDER BY position, id`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PostgresSource.Load: %w: %w", domain.ErrLoadFailed, err)
	}
	defer rows.Close()

	clubs := []domain.Club{}
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PostgresSource.Load: scan: %w: %w", domain.ErrLoadFailed, err)
		}
		clubs = append(clubs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PostgresSource.Load: rows: %w: %w", domain.ErrLoadFailed, err)
	}
	return clubs, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanClub maps a single row into a domain.Club. Nullable text columns
// become "" and a NULL recruit_end stays nil.
func scanClub(s scanner) (domain.Club, error) {
	var (
		c          domain.Club
		oneLine    pgtype.Text
		recruitEnd pgtype.Date
		applyURL   pgtype.Text
		desc       pgtype.Text
		activity   pgtype.Text
		location   pgtype.Text
		contact    pgtype.Text
		logo       pgtype.Text
	)

	err := s.Scan(&c.ID, &c.School, &c.Name, &oneLine, &c.Categories, &c.Tags,
		&c.Recruiting, &recruitEnd, &applyURL, &desc, &activity, &location,
		&contact, &logo, &c.Images)
	if err != nil {
		return domain.Club{}, err
	}

	c.OneLine = oneLine.String
	c.ApplyURL = applyURL.String
	c.Description = desc.String
	c.ActivityTime = activity.String
	c.Location = location.String
	c.ContactURL = contact.String
	c.Logo = logo.String
	if recruitEnd.Valid {
		end := recruitEnd.Time.Format("2006-01-02")
		c.RecruitEnd = &end
	}

	return c.Normalized(), nil
}
