// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides logging and JSON helpers shared by all handlers.

WithLogging logs request start and completion with a per-request UUID.
JSONResponse and ErrorResponse write the API's response envelopes -
ErrorResponse always produces {"error": message}. ParseJSONBody decodes a
request body into a typed struct; handlers never work with untyped maps.
*/
package middleware
