package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

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
	defaultStorePath          = "data/contacts.db"
	defaultNavigationScheme   = "google.navigation"
	defaultLocale             = "en"
	defaultQRCodeSize         = 256
	defaultRateLimit          = 10
	defaultLoopQueueSize      = 16
	defaultFetchConcurrency   = 4
)

// Icon defaults mirror a 48dp launcher icon at xhdpi density.
const (
	DefaultIconSize        = 96
	DefaultIconBorderWidth = 2
	DefaultIconBorderColor = "#80000000"
	DefaultIconTextSize    = 24.0
	DefaultIconTextPadding = 2
	DefaultIconTextColor   = "#FFFFFFFF"
	DefaultIconShadowColor = "#B3000000"
	DefaultIconGlyphColor  = "#CCFFFFFF"
	DefaultIconDensity     = 2.0
)

// ErrNotFound is returned when no config file exists in any search path.
var ErrNotFound = errors.New("config file not found")

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
		// Requests per second accepted per client IP on the shortcut routes
		RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store configuration for the structured-address store
	Store *StoreConfig `json:"store" yaml:"store"`

	// Icon configuration for shortcut icon composition
	Icon *IconConfig `json:"icon" yaml:"icon"`

	// Navigation configuration for launch intents
	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// Label configuration for address type labels
	Label *LabelConfig `json:"label" yaml:"label"`

	// Worker configuration for the fetch pool and the interactive loop
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// QRCode configuration for navigation QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines where the SQLite contact database lives
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// IconConfig defines the shortcut icon geometry and colours.
// Colours are #AARRGGBB or #RRGGBB hex strings.
type IconConfig struct {
	Size        int     `json:"size" yaml:"size"`
	BorderWidth int     `json:"borderWidth" yaml:"borderWidth"`
	BorderColor string  `json:"borderColor" yaml:"borderColor"`
	TextSize    float64 `json:"textSize" yaml:"textSize"`
	TextPadding int     `json:"textPadding" yaml:"textPadding"`
	TextColor   string  `json:"textColor" yaml:"textColor"`
	ShadowColor string  `json:"shadowColor" yaml:"shadowColor"`
	GlyphColor  string  `json:"glyphColor" yaml:"glyphColor"`

	// Device-resolution scaling factor used for the navigation glyph
	Density float64 `json:"density" yaml:"density"`
}

// NavigationConfig defines the launch intent target
type NavigationConfig struct {
	Scheme string `json:"scheme" yaml:"scheme"`
}

// LabelConfig defines label localisation
type LabelConfig struct {
	Locale string `json:"locale" yaml:"locale"`
}

// WorkerConfig defines background fetch concurrency
type WorkerConfig struct {
	// Maximum number of address fetches running at once
	FetchConcurrency int `json:"fetchConcurrency" yaml:"fetchConcurrency"`

	// Capacity of the interactive loop queue
	LoopQueueSize int `json:"loopQueueSize" yaml:"loopQueueSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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
		return nil, errors.Wrapf(ErrNotFound, "%s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: ICON_BORDERWIDTH -> icon.borderWidth
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	return cfg, nil
}

// ApplyDefaults fills every unset section and field with its default value.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.RateLimit <= 0 {
		cfg.HTTP.RateLimit = defaultRateLimit
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if strings.TrimSpace(cfg.Store.Path) == "" {
		cfg.Store.Path = defaultStorePath
	}

	if cfg.Icon == nil {
		cfg.Icon = &IconConfig{}
	}
	cfg.Icon.applyDefaults()

	if cfg.Navigation == nil {
		cfg.Navigation = &NavigationConfig{}
	}
	if cfg.Navigation.Scheme == "" {
		cfg.Navigation.Scheme = defaultNavigationScheme
	}

	if cfg.Label == nil {
		cfg.Label = &LabelConfig{}
	}
	if cfg.Label.Locale == "" {
		cfg.Label.Locale = defaultLocale
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.FetchConcurrency <= 0 {
		cfg.Worker.FetchConcurrency = defaultFetchConcurrency
	}
	if cfg.Worker.LoopQueueSize <= 0 {
		cfg.Worker.LoopQueueSize = defaultLoopQueueSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
}

func (c *IconConfig) applyDefaults() {
	if c.Size <= 0 {
		c.Size = DefaultIconSize
	}
	if c.BorderWidth < 0 {
		c.BorderWidth = 0
	}
	if c.BorderColor == "" {
		c.BorderColor = DefaultIconBorderColor
	}
	if c.TextSize <= 0 {
		c.TextSize = DefaultIconTextSize
	}
	if c.TextPadding < 0 {
		c.TextPadding = 0
	}
	if c.TextColor == "" {
		c.TextColor = DefaultIconTextColor
	}
	if c.ShadowColor == "" {
		c.ShadowColor = DefaultIconShadowColor
	}
	if c.GlyphColor == "" {
		c.GlyphColor = DefaultIconGlyphColor
	}
	if c.Density <= 0 {
		c.Density = DefaultIconDensity
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
