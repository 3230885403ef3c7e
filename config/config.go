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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis configuration for the match result cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Matching configuration for the geo matching and ranking engine
	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	// PubSub configuration for job event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Scheduler configuration for background maintenance jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MatchingConfig defines configuration for the matching and ranking engine
type MatchingConfig struct {
	// Maximum search radius in kilometers for free tier callers
	FreeRadiusKm float64 `json:"freeRadiusKm" yaml:"freeRadiusKm"`

	// Maximum search radius in kilometers for premium tier callers
	PremiumRadiusKm float64 `json:"premiumRadiusKm" yaml:"premiumRadiusKm"`

	// Upper bound on page size for search results
	MaxPageSize int `json:"maxPageSize" yaml:"maxPageSize"`

	// Number of top matches persisted per job by the background path
	MatchTopN int `json:"matchTopN" yaml:"matchTopN"`

	// Number of concurrent workers scoring a qualified set
	ScoreWorkers int `json:"scoreWorkers" yaml:"scoreWorkers"`

	// Reference salary used to normalize the salary-gap subscore when a
	// posting states no figure. Any stable positive constant works; the
	// default approximates a regional monthly minimum wage.
	ReferenceSalary float64 `json:"referenceSalary" yaml:"referenceSalary"`

	// TTL for cached match lists. Invalidation on job edit/expiry is the
	// primary mechanism; the TTL is a backstop.
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// RedisConfig defines the Redis connection for the match cache
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
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

// SchedulerConfig defines configuration for the job expiry sweep
type SchedulerConfig struct {
	// Enabled toggles the cron scheduler in the worker process
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ExpireSpec is the cron expression for the job expiry sweep
	ExpireSpec string `json:"expireSpec" yaml:"expireSpec"`
}

// Matching defaults applied when the section is absent.
const (
	DefaultFreeRadiusKm    = 10.0
	DefaultPremiumRadiusKm = 100.0
	DefaultMaxPageSize     = 100
	DefaultMatchTopN       = 50
	DefaultScoreWorkers    = 10
	DefaultReferenceSalary = 10000.0
	DefaultCacheTTL        = 15 * time.Minute
)

// DefaultMatching returns a MatchingConfig populated with the defaults.
func DefaultMatching() *MatchingConfig {
	return &MatchingConfig{
		FreeRadiusKm:    DefaultFreeRadiusKm,
		PremiumRadiusKm: DefaultPremiumRadiusKm,
		MaxPageSize:     DefaultMaxPageSize,
		MatchTopN:       DefaultMatchTopN,
		ScoreWorkers:    DefaultScoreWorkers,
		ReferenceSalary: DefaultReferenceSalary,
		CacheTTL:        DefaultCacheTTL,
	}
}

// Normalize fills zero values with defaults so a partially specified section
// stays usable.
func (m *MatchingConfig) Normalize() {
	defaults := DefaultMatching()
	if m.FreeRadiusKm <= 0 {
		m.FreeRadiusKm = defaults.FreeRadiusKm
	}
	if m.PremiumRadiusKm <= 0 {
		m.PremiumRadiusKm = defaults.PremiumRadiusKm
	}
	if m.MaxPageSize <= 0 {
		m.MaxPageSize = defaults.MaxPageSize
	}
	if m.MatchTopN <= 0 {
		m.MatchTopN = defaults.MatchTopN
	}
	if m.ScoreWorkers <= 0 {
		m.ScoreWorkers = defaults.ScoreWorkers
	}
	if m.ReferenceSalary <= 0 {
		m.ReferenceSalary = defaults.ReferenceSalary
	}
	if m.CacheTTL <= 0 {
		m.CacheTTL = defaults.CacheTTL
	}
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
			// Example: MATCHING_FREERADIUSKM -> matching.freeRadiusKm
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

	if cfg.Matching == nil {
		cfg.Matching = DefaultMatching()
	} else {
		cfg.Matching.Normalize()
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
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
