// Package constants contains well-known configuration values.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Auth modes
const (
	// AuthModeGateway trusts claims of a token already verified by the API gateway.
	AuthModeGateway = "gateway"
	// AuthModeHMAC verifies HS256 tokens with a shared secret (local development).
	AuthModeHMAC = "hmac"
)

// Rate limit stores
const (
	RateLimitStoreRedis  = "redis"
	RateLimitStoreMemory = "memory"
)

// Secret sources
const (
	SecretSourceStatic         = "static"
	SecretSourceSecretsManager = "secretsmanager"
)
