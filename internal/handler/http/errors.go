// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUserNotInContext is returned when a protected handler runs without
	// the auth middleware having stored a user in the request context.
	ErrUserNotInContext = errors.New("no authenticated user in request context")

	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidForm      = errors.New("invalid form was passed")
	ErrInvalidNovelID   = errors.New("invalid novel id")
	ErrInvalidPageQuery = errors.New("invalid skip/limit query parameters")
)
