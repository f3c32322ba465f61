// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by the
reviews API.

# Domain Types

Review is the stored record. ClientID and DeleteToken are tagged `json:"-"`
and never leave the server after creation; listing uses ReviewSummary, which
carries only id, name, text, and ts.

# Missing vs Empty

CreateReviewRequest.Text is *string: an absent "text" field decodes to nil
and is rejected, while an explicit "" is accepted. Handlers must not collapse
the two.
*/
package models
