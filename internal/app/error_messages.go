// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the novera API.
//
// Every Msg* constant is a "detail" value written into an error response
// body. The HTTP layer maps errors onto them and the client package matches
// against them, so the wording stays identical on both sides.
package app

const (
	MsgUsernameAlreadyRegistered = "Username already registered"
	MsgEmailAlreadyRegistered    = "Email already registered"

	MsgInvalidStatus     = "Invalid status"
	MsgInvalidPagination = "Invalid pagination parameters"
	MsgInvalidNovelID    = "Invalid novel id"

	// MsgInvalidDataProvided is returned when a request fails validation
	// without a more specific reason.
	MsgInvalidDataProvided = "Invalid data provided"
	MsgInvalidJSON         = "Invalid JSON was passed"
	MsgInvalidForm         = "Invalid form was passed"

	// MsgIncorrectCredentials is returned by login for an unknown username
	// and for a wrong password alike.
	MsgIncorrectCredentials = "Incorrect username or password"
	MsgTokenIsExpired       = "Token is expired"

	// MsgCouldNotValidateCredentials covers malformed, forged and orphaned tokens.
	MsgCouldNotValidateCredentials = "Could not validate credentials"
	MsgNotAuthenticated            = "Not authenticated"

	// MsgNotAuthorized is returned when a caller modifies a novel they do not own.
	MsgNotAuthorized = "Not authorized"

	MsgNovelNotFound  = "Novel not found"
	MsgStatusNotFound = "Status not found"

	MsgStorageUnavailable = "Storage is unavailable"
)
