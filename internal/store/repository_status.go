package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/models"
)

// statusRepository is the SQL-backed implementation of [StatusRepository]
// over the "user_novel_status" table.
type statusRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStatusRepository(db *DB, logger *logger.Logger) StatusRepository {
	logger.Debug().Msg("creating status repository")
	return &statusRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserNovelStatus returns the status record of the pair or [ErrStatusNotFound].
func (r *statusRepository) GetUserNovelStatus(ctx context.Context, userID, novelID int64) (models.UserNovelStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStatusQuery(r.db.builder, userID, novelID)
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.GetUserNovelStatus").Msg("failed to build query")
		return models.UserNovelStatus{}, err
	}

	status, err := scanStatus(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.UserNovelStatus{}, ErrStatusNotFound
	case err != nil:
		log.Err(err).Str("func", "*statusRepository.GetUserNovelStatus").
			Int64("user_id", userID).
			Int64("novel_id", novelID).
			Msg("error getting status")
		return models.UserNovelStatus{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return status, nil
}

// SetUserNovelStatus creates the status record of the pair or overwrites the
// existing one in a single statement, so concurrent first writes for the same
// pair still leave exactly one record.
//
// Error handling:
//   - missing novel (or user) → [ErrNovelNotFound].
//   - label rejected by the CHECK constraint → [ErrInvalidStatusValue].
func (r *statusRepository) SetUserNovelStatus(ctx context.Context, userID, novelID int64, status models.ReadingStatus) (models.UserNovelStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertStatusQuery(r.db.builder, userID, novelID, status)
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.SetUserNovelStatus").Msg("failed to build query")
		return models.UserNovelStatus{}, err
	}

	saved, err := scanStatus(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		classification := r.db.classify(err)
		log.Err(err).Str("func", "*statusRepository.SetUserNovelStatus").
			Int64("user_id", userID).
			Int64("novel_id", novelID).
			Stringer("classification", classification).
			Msg("error saving status")

		switch classification {
		case ForeignKeyViolation:
			return models.UserNovelStatus{}, ErrNovelNotFound
		case CheckViolation:
			return models.UserNovelStatus{}, ErrInvalidStatusValue
		default:
			return models.UserNovelStatus{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return saved, nil
}

// ListUserStatuses returns every status of the user ordered by novel id.
func (r *statusRepository) ListUserStatuses(ctx context.Context, userID int64) ([]models.UserNovelStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStatusesQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.ListUserStatuses").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*statusRepository.ListUserStatuses").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	statuses := make([]models.UserNovelStatus, 0)
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			log.Err(err).Str("func", "*statusRepository.ListUserStatuses").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		statuses = append(statuses, status)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*statusRepository.ListUserStatuses").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return statuses, nil
}
