package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamDate   = "date"
	RequestParamAction = "action"
)

const (
	DateFormat = time.DateOnly
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderCacheControl       = "Cache-Control"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderAccept             = "Accept"

	RequestHeaderAllowOrigin  = "Access-Control-Allow-Origin"
	RequestHeaderAllowMethods = "Access-Control-Allow-Methods"
	RequestHeaderAllowHeaders = "Access-Control-Allow-Headers"
)

const (
	ContentTypeJSON     = "application/json"
	CacheControlNoStore = "no-store"
	CORSAllowAll        = "*"
	CORSAllowedMethods  = "GET,POST,OPTIONS"
	CORSAllowedHeaders  = "content-type"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	RateLimiterStoreRedis  = "redis"
	RateLimiterStoreMemory = "memory"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
