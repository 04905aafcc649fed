package store

import (
	"context"

	"github.com/MKhiriev/novera/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Users are never updated or deleted.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NovelRepository persists novels. Every returned novel carries its chapters.
type NovelRepository interface {
	ListNovels(ctx context.Context, offset, limit uint64) ([]models.Novel, error)
	GetNovel(ctx context.Context, novelID int64) (models.Novel, error)
	CreateNovel(ctx context.Context, input models.NovelInput, ownerID int64) (models.Novel, error)
	UpdateNovel(ctx context.Context, novelID int64, input models.NovelInput) (models.Novel, error)
	DeleteNovel(ctx context.Context, novelID int64) (models.Novel, error)
}

// ChapterRepository persists chapters. Chapters are append-only.
type ChapterRepository interface {
	CreateChapter(ctx context.Context, input models.ChapterInput, novelID int64) (models.Chapter, error)
	ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error)
}

// StatusRepository persists the per-user reading status of novels.
type StatusRepository interface {
	GetUserNovelStatus(ctx context.Context, userID, novelID int64) (models.UserNovelStatus, error)
	SetUserNovelStatus(ctx context.Context, userID, novelID int64, status models.ReadingStatus) (models.UserNovelStatus, error)
	ListUserStatuses(ctx context.Context, userID int64) ([]models.UserNovelStatus, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification

	// ViolatedConstraint returns the name of the violated constraint
	// or an empty string if err carries none.
	ViolatedConstraint(err error) string
}
