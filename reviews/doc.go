// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reviews implements the business rules for the reviews feature.

# Creation

	review, err := service.Create(req, clientID)

Rules, in order: name must be non-empty after trimming; the text field must
be present in the payload (empty is fine, missing is not); a client that has
posted before must reuse its first name exactly; a client that has never
posted must pass the captcha, which is consumed on success. The created
review carries a fresh 192-bit delete token that is returned exactly once.

# Listing

	summaries, err := service.List(limitParam)

Newest first, ties broken by id. The raw query value defaults to 200 and is
clamped to [1, 1000]; listing never exposes client ids or delete tokens.

# Deletion

	err := service.Delete(id, token, clientID)

Two independent authorization paths: a matching delete token (compared in
constant time) works from any device, and a matching identity cookie works
without the token. Either suffices; with neither the delete is refused.

# Errors

Callers distinguish outcomes with errors.Is against the package sentinels:
ErrNameRequired, ErrTextRequired, ErrCaptchaFailed, ErrNameConflict,
ErrUnauthorized, ErrNotFound. Anything else is a store failure.
*/
package reviews
