// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ routing.

The reviews API lives under /api/reviews; everything else is a static page
route rendered by the handlers.PageHandler. All handlers run behind the
logging middleware. When the store is unavailable at startup, the API
routes degrade to 503 without taking the pages down.
*/
package router
