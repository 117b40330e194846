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
	defaultCredentialSkew     = 60 * time.Second
	defaultAuthorityTimeout   = 10 * time.Second
	defaultRealm              = "Username-Password-Authentication"
	defaultScope              = "openid profile email offline_access"
	defaultKeyringService     = "chessctl"
	credentialsFileName       = "credentials.json"
)

// Config is the backend service configuration, read from config.yaml.
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
		RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"migration" yaml:"migration"`

	// Authority describes the identity provider whose access tokens the API accepts.
	Authority AuthorityConfig `json:"authority" yaml:"authority"`
}

// AuthorityConfig identifies the token issuer and the audience value this API expects.
type AuthorityConfig struct {
	Issuer   string `json:"issuer" yaml:"issuer"`
	Audience string `json:"audience" yaml:"audience"`
	// LazyLoadJwks defers the JWKS download to the first request.
	LazyLoadJwks bool `json:"lazyLoadJwks" yaml:"lazyLoadJwks"`
}

// RateLimitConfig limits requests per client IP. Zero disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ClientConfig configures chessctl, read from client.yaml.
type ClientConfig struct {
	Env struct {
		Log Log `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Authority is the identity provider tenant the client signs in against.
	Authority struct {
		Domain     string        `json:"domain" yaml:"domain"`
		ClientID   string        `json:"clientId" yaml:"clientId"`
		Audience   string        `json:"audience" yaml:"audience"`
		Realm      string        `json:"realm" yaml:"realm"`
		Connection string        `json:"connection" yaml:"connection"`
		Scope      string        `json:"scope" yaml:"scope"`
		Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"authority" yaml:"authority"`

	Credentials struct {
		Path string        `json:"path" yaml:"path"`
		Skew time.Duration `json:"skew" yaml:"skew"`
	} `json:"credentials" yaml:"credentials"`

	Keyring struct {
		Service string `json:"service" yaml:"service"`
	} `json:"keyring" yaml:"keyring"`

	// Google enables federated sign-in through the device authorization flow.
	Google struct {
		ClientID     string `json:"clientId" yaml:"clientId"`
		ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	} `json:"google" yaml:"google"`

	API struct {
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"api" yaml:"api"`
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

	if cfg.Postgres != nil {
		// Replicas come from POSTGRES_REPLICAS_{i}_* because koanf cannot index slices from env.
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// NewClient loads client.yaml from the working directory or the user config directory.
func NewClient() (*ClientConfig, error) {
	paths := []string{"config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "chessctl"))
	}

	cfg, err := LoadWithEnv[ClientConfig]("client", paths...)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *ClientConfig) applyDefaults() error {
	if c.Authority.Realm == "" {
		c.Authority.Realm = defaultRealm
	}
	if c.Authority.Connection == "" {
		c.Authority.Connection = c.Authority.Realm
	}
	if c.Authority.Scope == "" {
		c.Authority.Scope = defaultScope
	}
	if c.Authority.Timeout <= 0 {
		c.Authority.Timeout = defaultAuthorityTimeout
	}
	if c.Credentials.Skew <= 0 {
		c.Credentials.Skew = defaultCredentialSkew
	}
	if c.Keyring.Service == "" {
		c.Keyring.Service = defaultKeyringService
	}
	if c.Credentials.Path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return errors.Wrap(err, "resolve user config dir")
		}
		c.Credentials.Path = filepath.Join(dir, "chessctl", credentialsFileName)
	}
	if c.Authority.Domain == "" || c.Authority.ClientID == "" {
		return errors.New("authority.domain and authority.clientId are required")
	}

	return nil
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
