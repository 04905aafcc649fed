// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the novera HTTP API.
//
// [ServerAdapter] hides the REST routes, bearer token handling and error
// bodies behind plain Go calls. Failed calls return errors wrapping the
// sentinels in errors.go, so callers can branch with [errors.Is]
// (e.g. [ErrForbidden] when a non-owner edits a novel).
package adapter

import (
	"context"

	"github.com/MKhiriev/novera/models"
)

// ServerAdapter is a client of a running novera server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated calls.
	// Login calls it automatically.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a login.
	Token() string

	// Register creates a user account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a bearer token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Me returns the user the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	ListNovels(ctx context.Context, offset, limit uint64) ([]models.Novel, error)
	GetNovel(ctx context.Context, novelID int64) (models.Novel, error)
	CreateNovel(ctx context.Context, input models.NovelInput) (models.Novel, error)

	// UpdateNovel replaces every field of the novel with input.
	UpdateNovel(ctx context.Context, novelID int64, input models.NovelInput) (models.Novel, error)

	// DeleteNovel removes the novel with its chapters and returns the removed record.
	DeleteNovel(ctx context.Context, novelID int64) (models.Novel, error)

	ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error)
	CreateChapter(ctx context.Context, novelID int64, input models.ChapterInput) (models.Chapter, error)

	SetStatus(ctx context.Context, novelID int64, status models.ReadingStatus) (models.UserNovelStatus, error)
	GetStatus(ctx context.Context, novelID int64) (models.UserNovelStatus, error)
	ListStatuses(ctx context.Context) ([]models.NovelStatusEntry, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
