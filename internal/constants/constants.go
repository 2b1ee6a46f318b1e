package constants

import "time"

// Clio deployment base URLs.
const (
	// BaseURLUS is the United States deployment.
	BaseURLUS = "https://app.clio.com"

	// BaseURLCA is the Canada deployment.
	BaseURLCA = "https://ca.app.clio.com"

	// BaseURLEU is the Europe deployment.
	BaseURLEU = "https://eu.app.clio.com"

	// BaseURLAU is the Australia deployment.
	BaseURLAU = "https://au.app.clio.com"

	// APIPrefix is the API path prefix under a deployment base URL.
	APIPrefix = "/api/v4"

	// TokenEndpointPath is the OAuth2 token endpoint under a deployment base URL.
	TokenEndpointPath = "/oauth/token"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for document content uploads.
	UploadHTTPTimeout = 10 * time.Minute

	// TokenHTTPTimeout is used for token endpoint requests.
	TokenHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of transport retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Rate limiting.
const (
	// DefaultRateWindow is the budget window when only a limit is configured.
	DefaultRateWindow = 1 * time.Minute
)

// Rate limit headers.
const (
	// HeaderRateLimitLimit reports the server-side request budget.
	HeaderRateLimitLimit = "X-RateLimit-Limit"

	// HeaderRateLimitRemaining reports the server-side remaining budget.
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"

	// HeaderRetryAfter carries the wait hint on 429 responses.
	HeaderRetryAfter = "Retry-After"
)

// Pagination defaults.
const (
	// DefaultOrder keeps cursor pagination stable across pages.
	DefaultOrder = "id(asc)"
)
