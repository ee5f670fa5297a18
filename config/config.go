package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"columbus/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultChatHistoryWindow  = 20
	defaultMinCatalogResults  = 3
	defaultSessionTTL         = 7 * 24 * time.Hour
	defaultSnapshotTTL        = 24 * time.Hour
	defaultIdempotencyTTL     = 24 * time.Hour
	defaultRequestsPerMinute  = 60
	defaultAnthropicBaseURL   = "https://api.anthropic.com"
	defaultAnthropicModel     = "claude-3-sonnet-20240229"
	defaultAnthropicMaxTokens = 4000
	defaultProviderTimeout    = 60 * time.Second
	defaultMapsTimeout        = 10 * time.Second
	defaultQRCodeSize         = 256
	defaultArchivePrefix      = "generations/"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// RateLimit configuration for per-caller request throttling
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Anthropic configuration for the text generation provider
	Anthropic *AnthropicConfig `json:"anthropic" yaml:"anthropic"`

	// Maps configuration for the directions provider
	Maps *MapsConfig `json:"maps" yaml:"maps"`

	AWS *AWSConfig `json:"aws" yaml:"aws"`

	Itinerary *ItineraryConfig `json:"itinerary" yaml:"itinerary"`

	Destinations *DestinationsConfig `json:"destinations" yaml:"destinations"`

	// PubSub configuration for itinerary lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Archive configuration for raw provider responses
	Archive *ArchiveConfig `json:"archive" yaml:"archive"`

	// QRCode configuration for itinerary share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the key-value store connection and key lifetimes
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	SessionTTL  time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	SnapshotTTL time.Duration `json:"snapshotTTL" yaml:"snapshotTTL"`
	// IdempotencyTTL bounds how long an Idempotency-Key remembers its itinerary
	IdempotencyTTL time.Duration `json:"idempotencyTTL" yaml:"idempotencyTTL"`
}

// AuthConfig defines how caller identity is extracted from bearer tokens
type AuthConfig struct {
	// Mode is "gateway" (claims already verified upstream) or "hmac"
	Mode       string `json:"mode" yaml:"mode"`
	HMACSecret string `json:"hmacSecret" yaml:"hmacSecret"`
	Issuer     string `json:"issuer" yaml:"issuer"`
}

// RateLimitConfig defines fixed-window request throttling
type RateLimitConfig struct {
	Enabled           bool   `json:"enabled" yaml:"enabled"`
	Store             string `json:"store" yaml:"store"`
	RequestsPerMinute int    `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int    `json:"burst" yaml:"burst"`
}

// AnthropicConfig defines the text generation provider
type AnthropicConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Model     string        `json:"model" yaml:"model"`
	MaxTokens int           `json:"maxTokens" yaml:"maxTokens"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	APIKey    SecretRef     `json:"apiKey" yaml:"apiKey"`
}

// MapsConfig defines the directions provider
type MapsConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	APIKey  SecretRef     `json:"apiKey" yaml:"apiKey"`
}

// SecretRef points at a secret value. Source "static" uses Value directly,
// "secretsmanager" reads Field from the JSON secret named SecretID.
type SecretRef struct {
	Source   string `json:"source" yaml:"source"`
	Value    string `json:"value" yaml:"value"`
	SecretID string `json:"secretId" yaml:"secretId"`
	Field    string `json:"field" yaml:"field"`
}

// AWSConfig defines the AWS client used for Secrets Manager
type AWSConfig struct {
	Region          string `json:"region" yaml:"region"`
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
}

// ItineraryConfig defines itinerary lifecycle behaviour switches
type ItineraryConfig struct {
	EnforceStatusTransitions bool `json:"enforceStatusTransitions" yaml:"enforceStatusTransitions"`
	RejectUnknownFields      bool `json:"rejectUnknownFields" yaml:"rejectUnknownFields"`
	ChatHistoryWindow        int  `json:"chatHistoryWindow" yaml:"chatHistoryWindow"`
}

// DestinationsConfig defines the suggestion blend between catalog and provider
type DestinationsConfig struct {
	MinCatalogResults int  `json:"minCatalogResults" yaml:"minCatalogResults"`
	AISupplement      bool `json:"aiSupplement" yaml:"aiSupplement"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// ArchiveConfig defines where raw generation responses are kept.
// URL is any gocloud.dev/blob bucket URL (mem://, file:///..., s3://...).
type ArchiveConfig struct {
	URL    string `json:"url" yaml:"url"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// IsProduction reports whether error details must be redacted
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, constants.EnvProduction)
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.SessionTTL <= 0 {
		cfg.Redis.SessionTTL = defaultSessionTTL
	}
	if cfg.Redis.SnapshotTTL <= 0 {
		cfg.Redis.SnapshotTTL = defaultSnapshotTTL
	}
	if cfg.Redis.IdempotencyTTL <= 0 {
		cfg.Redis.IdempotencyTTL = defaultIdempotencyTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{Mode: constants.AuthModeGateway}
	}

	if cfg.Itinerary == nil {
		cfg.Itinerary = &ItineraryConfig{}
	}
	if cfg.Itinerary.ChatHistoryWindow <= 0 {
		cfg.Itinerary.ChatHistoryWindow = defaultChatHistoryWindow
	}

	if cfg.Destinations == nil {
		cfg.Destinations = &DestinationsConfig{}
	}
	if cfg.Destinations.MinCatalogResults <= 0 {
		cfg.Destinations.MinCatalogResults = defaultMinCatalogResults
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{Store: constants.RateLimitStoreMemory}
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		cfg.RateLimit.RequestsPerMinute = defaultRequestsPerMinute
	}

	if cfg.Anthropic == nil {
		cfg.Anthropic = &AnthropicConfig{}
	}
	if cfg.Anthropic.BaseURL == "" {
		cfg.Anthropic.BaseURL = defaultAnthropicBaseURL
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = defaultAnthropicModel
	}
	if cfg.Anthropic.MaxTokens <= 0 {
		cfg.Anthropic.MaxTokens = defaultAnthropicMaxTokens
	}
	if cfg.Anthropic.Timeout <= 0 {
		cfg.Anthropic.Timeout = defaultProviderTimeout
	}

	if cfg.Maps == nil {
		cfg.Maps = &MapsConfig{}
	}
	if cfg.Maps.Timeout <= 0 {
		cfg.Maps.Timeout = defaultMapsTimeout
	}

	if cfg.AWS == nil {
		cfg.AWS = &AWSConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}

	if cfg.Archive == nil {
		cfg.Archive = &ArchiveConfig{}
	}
	if cfg.Archive.Prefix == "" {
		cfg.Archive.Prefix = defaultArchivePrefix
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
