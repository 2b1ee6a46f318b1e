// Package clio provides types, interfaces, and helpers for working with the
// Clio Manage V4 API.
//
// # Overview
//
// The clio package defines the domain types (e.g., Contact, Matter, Document,
// CalendarEntry) and the interfaces for resource-oriented clients (e.g.,
// ContactsClient, MattersClient). A concrete implementation of these clients
// is provided by the clioclient package, which wires configuration, transport,
// authentication, rate limiting, and token refresh. Most consumers should
// import clioclient to construct a session and then interact with the resource
// client interfaces exposed here.
//
// Getting a session
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/hyacinth-io/clio/pkg/clio"
//	  "github.com/hyacinth-io/clio/pkg/clioclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  session, err := clioclient.New(&clio.Config{
//	    Region:       "US",
//	    ClientID:     "my-client-id",
//	    ClientSecret: "my-client-secret",
//	    Token:        &clio.Token{AccessToken: "...", RefreshToken: "..."},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  me, err := session.Users().WhoAmI(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = me
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (fields, limit, order,
// filters). Collection endpoints use Clio's unlimited cursor pagination: each
// page carries an opaque "next" URL, and an absent "next" marks the final
// page. The package provides a lazy iterator plus helpers for collecting or
// streaming paginated results:
//
//	it := clio.NewPageIterator[clio.Contact](ctx, session.Contacts(), "contacts", nil)
//	for it.HasNext() {
//	  contact, err := it.Next()
//	  if err != nil { break }
//	  _ = contact
//	}
//
// # Tokens and rate limits
//
// The session owns the OAuth2 token pair and refreshes it on expiry or 401,
// coalescing concurrent refreshes into a single token-endpoint call. Register
// Config.OnTokenRotate to persist rotated tokens; it is invoked synchronously
// before the refreshed token is used. Client-side rate limiting is budgeted
// per access token and corrects itself from server Retry-After hints.
//
// # Errors
//
// Remote failures are represented by AuthError, RateLimitError, and APIError.
// Helpers such as IsNotFound, IsUnauthorized, and IsRateLimited make it easy
// to branch on common cases.
package clio
