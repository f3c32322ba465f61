// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and comparison utilities.

# ID Generation

Random hex IDs for captcha challenges and client identities:

	cid, err := auth.GenerateID(12)      // 96 bits, 24 hex characters
	clientID, err := auth.GenerateID(16) // 128 bits, 32 hex characters

# Delete Tokens

Delete tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateDeleteToken()

Tokens are URL-safe base64 encoded without padding. The token is handed to
the review author exactly once, at creation; presenting it later authorizes
deletion regardless of which device sends the request.

# Comparison

Delete tokens are secrets, so they are compared in constant time:

	if auth.TokenEqual(submitted, stored) { ... }

# Captcha Arithmetic

RandomInt draws the captcha operands from crypto/rand rather than math/rand
so challenges are not predictable from previous ones.
*/
package auth
