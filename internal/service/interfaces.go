package service

import (
	"context"

	"github.com/MKhiriev/novera/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mock.go -package=mocks

type AuthService interface {
	RegisterUser(ctx context.Context, input models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, input models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveActiveUser parses tokenString and loads the user it was issued for.
	ResolveActiveUser(ctx context.Context, tokenString string) (models.User, error)
}

// NovelService manages novels and their chapters. Mutations take the calling
// user and are allowed only for the novel's owner.
type NovelService interface {
	ListNovels(ctx context.Context, offset, limit uint64) ([]models.Novel, error)
	GetNovel(ctx context.Context, novelID int64) (models.Novel, error)
	CreateNovel(ctx context.Context, input models.NovelInput, owner models.User) (models.Novel, error)
	UpdateNovel(ctx context.Context, novelID int64, input models.NovelInput, caller models.User) (models.Novel, error)
	DeleteNovel(ctx context.Context, novelID int64, caller models.User) (models.Novel, error)

	ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error)
	CreateChapter(ctx context.Context, novelID int64, input models.ChapterInput, caller models.User) (models.Chapter, error)
}

type StatusService interface {
	SetStatus(ctx context.Context, userID, novelID int64, status models.ReadingStatus) (models.UserNovelStatus, error)
	GetStatus(ctx context.Context, userID, novelID int64) (models.UserNovelStatus, error)
	ListStatuses(ctx context.Context, userID int64) ([]models.NovelStatusEntry, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// Pinger reports whether a backing resource is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NovelServiceWrapper defines middleware composition for NovelService.
// Implementations wrap an existing NovelService to add behavior such as
// validating.
type NovelServiceWrapper interface {
	Wrap(NovelService) NovelService
}

// StatusServiceWrapper defines middleware composition for StatusService.
type StatusServiceWrapper interface {
	Wrap(StatusService) StatusService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
