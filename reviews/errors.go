// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reviews

import "errors"

var (
	// ErrNameRequired rejects a create with an empty (post-trim) name.
	ErrNameRequired = errors.New("name required")
	// ErrTextRequired rejects a create whose payload omits the text field
	// entirely. An explicit empty string is allowed.
	ErrTextRequired = errors.New("text required")
	// ErrCaptchaFailed rejects a first post with a missing, expired, or
	// wrong captcha.
	ErrCaptchaFailed = errors.New("captcha failed")
	// ErrNameConflict rejects a post under a different name than the one
	// this client identity is bound to.
	ErrNameConflict = errors.New("this device/client already has a name set; use the same name or reset locally")
	// ErrUnauthorized rejects a delete with neither a valid delete token
	// nor a matching client identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means no review exists with the requested id.
	ErrNotFound = errors.New("not found")
)
