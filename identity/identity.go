// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package identity gives each browser a stable opaque id via the
// aj_client_id cookie, with no accounts involved. Resolving an identity
// never touches the store; a freshly minted id only persists if the request
// goes on to create a review.
package identity

import (
	"net/http"

	"github.com/danielhkuo/site-reviews/auth"
)

// CookieName is the client identity cookie.
const CookieName = "aj_client_id"

// Resolve returns the request's client id. When the cookie is absent or
// empty, a new 128-bit id is minted and fresh is true; the caller must then
// Set the cookie on the response.
func Resolve(r *http.Request) (clientID string, fresh bool, err error) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, false, nil
	}
	clientID, err = auth.GenerateID(16)
	if err != nil {
		return "", false, err
	}
	return clientID, true, nil
}

// Set writes the identity cookie. HTTP-only and SameSite=Lax so client-side
// script can never read it.
func Set(w http.ResponseWriter, clientID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    clientID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
