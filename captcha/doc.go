// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package captcha implements the arithmetic challenge gating the first review
from a new client.

# Lifecycle

	challenge, err := manager.Issue()   // stores {cid, answer, expires_at}
	ok, err := manager.Verify(cid, ans) // single-use on success

A challenge lives for 300 seconds. Verification is lazy about expiry: nothing
sweeps old rows, but Verify deletes an expired challenge the moment it sees
one, so abandoned challenges are inert. A wrong answer does not consume the
challenge; a correct one does.

Operands come from crypto/rand (via the auth package) and challenge ids carry
96 bits of entropy, so neither the question nor the cid is guessable.
*/
package captcha
