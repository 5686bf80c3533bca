package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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

	defaultOTPTTL            = 10 * time.Minute
	defaultMinPasswordLength = 6

	defaultPointsPerVisit      = 50
	defaultPointsPerReferral   = 350
	defaultMinimumRedeem       = 6000
	defaultCodesPerBatch       = 50
	defaultMaxGenerateAttempts = 20

	defaultMaxImageSize int64 = 5 << 20
	defaultMaxVideoSize int64 = 50 << 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin holds the single back-office account. It never goes through the identity provider.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	Points *PointsConfig `json:"points" yaml:"points"`

	// QRCode configuration for printable redemption codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Mailer *MailerConfig `json:"mailer" yaml:"mailer"`

	Media *MediaConfig `json:"media" yaml:"media"`

	Restaurant *RestaurantConfig `json:"restaurant" yaml:"restaurant"`

	// Worker is the event consumer process; it listens on its own port.
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// SecretKeyConfig holds the JWT signing secrets.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// RoleFallback decides the actor when the role lookup fails: "customer" (fail-open) or "guest".
	RoleFallback string `json:"roleFallback" yaml:"roleFallback"`

	// OTPTTL is how long a one-time code sent by email stays valid.
	OTPTTL time.Duration `json:"otpTtl" yaml:"otpTtl"`

	MinPasswordLength int `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// AdminConfig defines the fixed administrator credentials.
// PasswordHash is a bcrypt hash; the plain password never lives in the config.
type AdminConfig struct {
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
	Email        string `json:"email" yaml:"email"`
}

// PointsConfig defines the loyalty program constants
type PointsConfig struct {
	PointsPerVisit      int `json:"pointsPerVisit" yaml:"pointsPerVisit"`
	PointsPerReferral   int `json:"pointsPerReferral" yaml:"pointsPerReferral"`
	MinimumRedeem       int `json:"minimumRedeem" yaml:"minimumRedeem"`
	CodesPerBatch       int `json:"codesPerBatch" yaml:"codesPerBatch"`
	MaxGenerateAttempts int `json:"maxGenerateAttempts" yaml:"maxGenerateAttempts"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "nats" for a NATS server
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// NATS server URL and subject prefix (for nats provider)
	NatsURL       string `json:"natsUrl" yaml:"natsUrl"`
	SubjectPrefix string `json:"subjectPrefix" yaml:"subjectPrefix"`
}

// MailerConfig defines the MailerSend account used for one-time codes.
// An empty APIKey switches to a mailer that only logs.
type MailerConfig struct {
	APIKey    string `json:"apiKey" yaml:"apiKey"`
	FromName  string `json:"fromName" yaml:"fromName"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
}

// MediaConfig defines where uploaded dish images and videos are stored.
type MediaConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/media, gs://bucket, s3://bucket?region=...
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prepended to object keys to build public URLs.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxImageSize int64 `json:"maxImageSize" yaml:"maxImageSize"`
	MaxVideoSize int64 `json:"maxVideoSize" yaml:"maxVideoSize"`
}

// RestaurantConfig defines the restaurant contact used for checkout.
type RestaurantConfig struct {
	Name     string `json:"name" yaml:"name"`
	WhatsApp string `json:"whatsapp" yaml:"whatsapp"`
}

// WorkerConfig defines the Pub/Sub push consumer.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
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

// applyDefaults fills in the loyalty program constants and other optional sections.
func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.RoleFallback == "" {
		cfg.Auth.RoleFallback = "customer"
	}
	if cfg.Auth.OTPTTL <= 0 {
		cfg.Auth.OTPTTL = defaultOTPTTL
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = defaultMinPasswordLength
	}

	if cfg.Worker == nil || cfg.Worker.Port == 0 {
		cfg.Worker = &WorkerConfig{Port: cfg.HTTP.Port}
	}

	if cfg.Points == nil {
		cfg.Points = &PointsConfig{}
	}
	if cfg.Points.PointsPerVisit <= 0 {
		cfg.Points.PointsPerVisit = defaultPointsPerVisit
	}
	if cfg.Points.PointsPerReferral <= 0 {
		cfg.Points.PointsPerReferral = defaultPointsPerReferral
	}
	if cfg.Points.MinimumRedeem <= 0 {
		cfg.Points.MinimumRedeem = defaultMinimumRedeem
	}
	if cfg.Points.CodesPerBatch <= 0 {
		cfg.Points.CodesPerBatch = defaultCodesPerBatch
	}
	if cfg.Points.MaxGenerateAttempts <= 0 {
		cfg.Points.MaxGenerateAttempts = defaultMaxGenerateAttempts
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.MaxImageSize <= 0 {
		cfg.Media.MaxImageSize = defaultMaxImageSize
	}
	if cfg.Media.MaxVideoSize <= 0 {
		cfg.Media.MaxVideoSize = defaultMaxVideoSize
	}
}

// MaxUploadSize is the largest media upload accepted for any kind.
func (c *MediaConfig) MaxUploadSize() int64 {
	if c == nil {
		return defaultMaxVideoSize
	}
	if size := max(c.MaxImageSize, c.MaxVideoSize); size > 0 {
		return size
	}

	return defaultMaxVideoSize
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
