package constant

import (
	"time"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID        = "id"
	RequestParamRoomID    = "roomId"
	RequestParamBookingID = "bookingId"
	RequestParamStatus    = "status"
	RequestParamSearch    = "q"
	RequestParamLocation  = "location"
)

const (
	DefaultValuePage         = 1
	DefaultValueLimit        = 10
	DefaultValueHistoryLimit = 50
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentMethodUPI        = "UPI"
	PaymentMethodCard       = "Card"
	PaymentMethodNetBanking = "Net Banking"
)

const (
	SensorStatusOnline  = "online"
	SensorStatusWarning = "warning"
	SensorStatusOffline = "offline"

	// Recency thresholds for deriving sensor status from the latest reading.
	SensorOnlineWindow  = 5 * time.Minute
	SensorWarningWindow = 15 * time.Minute
)

const (
	MetricSourceCloud     = "cloud"
	MetricSourceReference = "reference"
)

const (
	SearchPresetEco = "eco"

	EcoPresetMinEcoScore   = 88
	EcoPresetMinAirQuality = 85
)

const (
	DateFormat     = time.RFC3339
	StayDateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelWorkerScopeName     = "worker"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
