// Package clioclient provides the primary entry point for constructing a
// Clio Manage API session that implements the clio.Session interface.
//
// It layers region resolution, OAuth2 token management, per-token rate
// limiting, and HTTP transport on top of the resource interfaces and types
// defined in the clio package. Most applications should import clioclient to
// build a session, then use the returned clio.Session to access
// resource-specific clients, for example Matters(), Contacts(), Documents().
//
// Quick start
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
//
//	  // With a token pair obtained from Clio's authorization-code flow:
//	  session, err := clioclient.New(&clio.Config{
//	    Region:       "US",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    Token: &clio.Token{
//	      AccessToken:  "...",
//	      RefreshToken: "...",
//	    },
//	    OnTokenRotate: func(token clio.Token) {
//	      // Persist the rotated pair before any request uses it.
//	    },
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  matters, err := session.Matters().List(ctx, clio.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = matters
//	}
//
// # Regions
//
// Clio runs separate deployments per region: "US" (default), "CA", "EU", and
// "AU". The session derives its base URL from Config.Region; an unknown
// region falls back to US with a warning log. Config.BaseURL overrides the
// region entirely, which tests use to point a session at a local server.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithClientCredentials, plus NewFromEnv which reads CLIO_* environment
// variables.
package clioclient
