package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultContentBaseURL     = "http://localhost:1337"
	defaultContentTimeout     = 10 * time.Second
	defaultPlaceholderPath    = "/placeholder.svg"
	defaultPhoneRegion        = "PK"

	// Search join policies.
	SearchJoinPartial = "partial"
	SearchJoinAll     = "all"

	// envContentBaseURL and envContentToken are read directly so deployments
	// can keep the variable names the front-end already used.
	envContentBaseURL = "STRAPI_API_URL"
	envContentToken   = "STRAPI_API_TOKEN"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"min=0,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Content configures the headless content service client
	Content *ContentConfig `json:"content" yaml:"content" validate:"required"`

	// Site configuration for locales and static assets
	Site *SiteConfig `json:"site" yaml:"site" validate:"required"`

	// RateLimit configuration for the newsletter signup endpoints
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Contact configuration for team member contact links
	Contact *ContactConfig `json:"contact" yaml:"contact"`

	// QRCode configuration for contact QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for subscriber event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// ContentConfig defines how the content service is reached
type ContentConfig struct {
	// Base URL of the content service, without trailing slash
	BaseURL string `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`

	// Optional API token sent as a Bearer credential
	Token string `json:"token" yaml:"token"`

	// Per-request timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"gt=0"`

	// Search join policy: "partial" falls back per entity, "all" discards every remote result on any failure
	SearchJoin string `json:"searchJoin" yaml:"searchJoin" validate:"oneof=partial all"`

	// Maximum blog page size accepted from callers
	MaxPageSize int `json:"maxPageSize" yaml:"maxPageSize" validate:"gte=1"`
}

// SiteConfig defines locale handling and static assets
type SiteConfig struct {
	DefaultLocale   string `json:"defaultLocale" yaml:"defaultLocale" validate:"oneof=en ar"`
	PlaceholderPath string `json:"placeholderPath" yaml:"placeholderPath"`
	StaticDir       string `json:"staticDir" yaml:"staticDir"`
}

// RateLimitConfig defines a token bucket of Requests per Interval
type RateLimitConfig struct {
	Requests int           `json:"requests" yaml:"requests"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// ContactConfig defines contact link formatting
type ContactConfig struct {
	// Region used to parse phone numbers written without a country code
	DefaultRegion string `json:"defaultRegion" yaml:"defaultRegion"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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
			// Example: CONTENT_SEARCHJOIN -> content.searchJoin (not content.searchjoin)
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

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset values, including the content service base URL
// read from STRAPI_API_URL.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Content == nil {
		c.Content = &ContentConfig{}
	}
	if url := os.Getenv(envContentBaseURL); url != "" {
		c.Content.BaseURL = url
	}
	if token := os.Getenv(envContentToken); token != "" {
		c.Content.Token = token
	}
	if strings.TrimSpace(c.Content.BaseURL) == "" {
		c.Content.BaseURL = defaultContentBaseURL
	}
	c.Content.BaseURL = strings.TrimRight(c.Content.BaseURL, "/")
	if c.Content.Timeout <= 0 {
		c.Content.Timeout = defaultContentTimeout
	}
	if c.Content.SearchJoin == "" {
		c.Content.SearchJoin = SearchJoinPartial
	}
	if c.Content.MaxPageSize <= 0 {
		c.Content.MaxPageSize = 50
	}

	if c.Site == nil {
		c.Site = &SiteConfig{}
	}
	if c.Site.DefaultLocale == "" {
		c.Site.DefaultLocale = "en"
	}
	if c.Site.PlaceholderPath == "" {
		c.Site.PlaceholderPath = defaultPlaceholderPath
	}

	if c.Contact == nil {
		c.Contact = &ContactConfig{}
	}
	if c.Contact.DefaultRegion == "" {
		c.Contact.DefaultRegion = defaultPhoneRegion
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
}

// Validate checks the loaded configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
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
