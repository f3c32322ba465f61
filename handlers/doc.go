// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the site and its
reviews API.

# Reviews API

ReviewHandler maps the JSON API under /api/reviews onto the reviews
service. It parses requests, resolves the client identity cookie, and
translates service errors to status codes:

	GET    /api/reviews/health  → Health
	GET    /api/reviews/captcha → GetCaptcha
	GET    /api/reviews         → ListReviews
	POST   /api/reviews         → CreateReview (sets aj_client_id cookie)
	DELETE /api/reviews/{id}    → DeleteReview

Status mapping: validation and captcha failures → 400, name conflicts and
unauthorized deletes → 403, unknown review ids → 404, store failures → 500.
No business logic lives here; that belongs to the reviews package.

# Pages

PageHandler renders the embedded site templates. Each page route is just a
template name and a fixed title. When the store fails to initialize at
startup, the router swaps the API routes for ReviewsUnavailable (503) and
the pages keep serving.
*/
package handlers
