// Package constants defines system-wide constants for the h5sign service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ================================================================================
// Protocol Constants
// ================================================================================

// Protocol names the signing protocol a request targets
type Protocol string

const (
	// ProtocolH5st is the versioned semicolon-delimited h5st signature
	ProtocolH5st Protocol = "h5st"

	// ProtocolSign is the lighter client "sign" signature
	ProtocolSign Protocol = "sign"

	// ProtocolCommand is the share-code exchange built on top of ProtocolSign
	ProtocolCommand Protocol = "command"
)

const (
	// DefaultH5stVersion is used when a request omits the version
	DefaultH5stVersion = "5.0.8"

	// DefaultTimezone is the zone the date string of an h5st is rendered in
	DefaultTimezone = "Asia/Shanghai"

	// DefaultSignClient and DefaultSignClientVersion fill the sign request when omitted
	DefaultSignClient        = "android"
	DefaultSignClientVersion = "13.6.3"

	// DefaultAppName is the package name carried in the device payload
	DefaultAppName = "com.jingdong.app.mall"
)

// DefaultStk lists the business fields signed when a request carries no allow-list.
var DefaultStk = []string{"appid", "body", "client", "clientVersion", "functionId", "t"}

// ReservedParams may never appear among the signed fields.
var ReservedParams = []string{"h5st", "_stk", "_ste"}

// ================================================================================
// Cache Constants
// ================================================================================

// CachePurpose names what a cached value holds
type CachePurpose string

const (
	// CachePurposeFingerprint stores the visit key
	CachePurposeFingerprint CachePurpose = "WQ_vk1"

	// CachePurposeCanvas stores the canvas fingerprint
	CachePurposeCanvas CachePurpose = "WQ_gather_cv1"

	// CachePurposeWebGL stores the webgl fingerprint
	CachePurposeWebGL CachePurpose = "WQ_gather_wgl1"
)

// FingerprintTTL is how long generated fingerprints are kept (one year)
const FingerprintTTL = 365 * 24 * time.Hour

// ================================================================================
// Error Code Constants
// ================================================================================

// ErrorCode represents a machine readable error code
type ErrorCode string

const (
	ErrCodeUnknownVersion           ErrorCode = "unknown_version"
	ErrCodeValidation               ErrorCode = "validation_error"
	ErrCodeEnvDecrypt               ErrorCode = "env_decrypt_error"
	ErrCodeUnsupportedCipherVariant ErrorCode = "unsupported_cipher_variant"
	ErrCodeInvalidRequest           ErrorCode = "invalid_request"
	ErrCodeInvalidCommand           ErrorCode = "invalid_command"
	ErrCodeCache                    ErrorCode = "cache_error"
	ErrCodeInternal                 ErrorCode = "internal_error"
	ErrCodeNotFound                 ErrorCode = "not_found"
)

// ValidationCode mirrors the numeric codes the web client reports for unsignable input
type ValidationCode int

const (
	// ValidationUnsignableParams covers empty, malformed or reserved parameters
	ValidationUnsignableParams ValidationCode = 1

	// ValidationAppIDAbsent is reported when no appId is available
	ValidationAppIDAbsent ValidationCode = 2
)

// ================================================================================
// Log Level Constants
// ================================================================================

// LogLevel represents the severity level of log messages
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

// ================================================================================
// Context Keys
// ================================================================================

// ContextKey is used for storing values in context.Context
type ContextKey string

const (
	// ContextKeyRequestID stores the request identifier
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyLogger stores a request scoped logger
	ContextKeyLogger ContextKey = "logger"
)

// ================================================================================
// HTTP Constants
// ================================================================================

const (
	// HeaderRequestID is the canonical request id header
	HeaderRequestID = "X-Request-ID"

	// HeaderCFRay is preferred as the request id when the service sits behind Cloudflare
	HeaderCFRay = "cf-ray"

	// JDClientAction is the endpoint the command exchange URL points at
	JDClientAction = "https://api.m.jd.com/client.action"
)

// ServiceName is reported to tracing and metrics
const ServiceName = "h5sign"
