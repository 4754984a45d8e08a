package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"slidereel/internal/deck"
	"slidereel/internal/gesture"
	"slidereel/internal/transition"
)

// EnvPrefix prefixes every environment override, e.g. SLIDEREEL_SWIPE__THRESHOLD=80
const EnvPrefix = "SLIDEREEL_"

// Config represents the application configuration
type Config struct {
	Version    int                `koanf:"version" toml:"version"`
	Deck       DeckSettings       `koanf:"deck" toml:"deck"`
	Keys       KeySettings        `koanf:"keys" toml:"keys"`
	Swipe      SwipeSettings      `koanf:"swipe" toml:"swipe"`
	Transition TransitionSettings `koanf:"transition" toml:"transition"`
	Theme      ThemeSettings      `koanf:"theme" toml:"theme"`
	UI         UISettings         `koanf:"ui" toml:"ui"`
}

// DeckSettings controls how decks are rendered
type DeckSettings struct {
	Style    string `koanf:"style" toml:"style"`
	MaxWidth int    `koanf:"max_width" toml:"max_width"`
}

// KeySettings lists the keys bound to each action, in bubbletea key notation
type KeySettings struct {
	Next     []string `koanf:"next" toml:"next"`
	Prev     []string `koanf:"prev" toml:"prev"`
	Quit     []string `koanf:"quit" toml:"quit"`
	Help     []string `koanf:"help" toml:"help"`
	Copy     []string `koanf:"copy" toml:"copy"`
	Overview []string `koanf:"overview" toml:"overview"`
}

// SwipeSettings configures mouse drag navigation
type SwipeSettings struct {
	Enabled       bool    `koanf:"enabled" toml:"enabled"`
	Threshold     float64 `koanf:"threshold" toml:"threshold"`
	MaxDurationMS int     `koanf:"max_duration_ms" toml:"max_duration_ms"`
	CellWidth     int     `koanf:"cell_width" toml:"cell_width"`
	CellHeight    int     `koanf:"cell_height" toml:"cell_height"`
}

// TransitionSettings configures the slide animation
type TransitionSettings struct {
	Enabled   bool    `koanf:"enabled" toml:"enabled"`
	FPS       int     `koanf:"fps" toml:"fps"`
	Stiffness float64 `koanf:"stiffness" toml:"stiffness"`
	Damping   float64 `koanf:"damping" toml:"damping"`
	OpacityMS int     `koanf:"opacity_ms" toml:"opacity_ms"`
}

// ThemeSettings holds the presenter's colours as hex strings
type ThemeSettings struct {
	Background string `koanf:"background" toml:"background"`
	Foreground string `koanf:"foreground" toml:"foreground"`
	Primary    string `koanf:"primary" toml:"primary"`
	Secondary  string `koanf:"secondary" toml:"secondary"`
	Accent     string `koanf:"accent" toml:"accent"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowArrows   bool `koanf:"show_arrows" toml:"show_arrows"`
	ShowProgress bool `koanf:"show_progress" toml:"show_progress"`
	ShowCounter  bool `koanf:"show_counter" toml:"show_counter"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by path, or by the default location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// DefaultPath returns ./.slidereel.toml (or .yaml) when present, otherwise the user config file
func DefaultPath() string {
	for _, name := range []string{".slidereel.toml", ".slidereel.yaml", ".slidereel.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "slidereel", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file if it exists, then applies environment overrides
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return load("")
	} else if err != nil {
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	return load(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return load(path)
}

// SaveToPath saves configuration to a specific path, as YAML for .yaml/.yml files and TOML otherwise
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config, path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal encodes config in the format implied by path's extension
func Marshal(config *Config, path string) ([]byte, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if !isYAML(path) {
		return data, nil
	}

	m, err := TOMLParser().Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	data, err = yaml.Parser().Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// load layers defaults, the file at path (if any) and the environment
func load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser = TOMLParser()
		if isYAML(path) {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Key lists replace the defaults rather than merging into them
	for key, dst := range map[string]*[]string{
		"keys.next":     &cfg.Keys.Next,
		"keys.prev":     &cfg.Keys.Prev,
		"keys.quit":     &cfg.Keys.Quit,
		"keys.help":     &cfg.Keys.Help,
		"keys.copy":     &cfg.Keys.Copy,
		"keys.overview": &cfg.Keys.Overview,
	} {
		if k.Exists(key) {
			*dst = k.Strings(key)
		}
	}
	return cfg, nil
}

// envValue maps SLIDEREEL_SWIPE__CELL_WIDTH to swipe.cell_width.
// Values of key lists are comma separated.
func envValue(key, value string) (string, interface{}) {
	path := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "__", ".")
	if strings.HasPrefix(path, "keys.") {
		var keys []string
		for _, k := range strings.Split(value, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return path, keys
	}
	return path, value
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Deck: DeckSettings{
			Style:    "dark",
			MaxWidth: 100,
		},
		Keys: KeySettings{
			Next:     []string{"right", "down", "space"},
			Prev:     []string{"left", "up"},
			Quit:     []string{"q", "ctrl+c", "esc"},
			Help:     []string{"?"},
			Copy:     []string{"y"},
			Overview: []string{"o"},
		},
		Swipe: SwipeSettings{
			Enabled:       true,
			Threshold:     50,
			MaxDurationMS: 300,
			CellWidth:     8,
			CellHeight:    16,
		},
		Transition: TransitionSettings{
			Enabled:   true,
			FPS:       60,
			Stiffness: 300,
			Damping:   30,
			OpacityMS: 300,
		},
		Theme: ThemeSettings{
			Background: "#121212",
			Foreground: "#FFFFFF",
			Primary:    "#8AB4F8",
			Secondary:  "#BB86FC",
			Accent:     "#03DAC6",
		},
		UI: UISettings{
			ShowArrows:   true,
			ShowProgress: true,
			ShowCounter:  true,
		},
	}
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	keySets := []struct {
		name string
		keys []string
	}{
		{"keys.next", c.Keys.Next},
		{"keys.prev", c.Keys.Prev},
		{"keys.quit", c.Keys.Quit},
	}
	for _, ks := range keySets {
		if len(ks.keys) == 0 {
			return fmt.Errorf("%s must list at least one key", ks.name)
		}
	}

	if c.Swipe.Threshold < 0 {
		return fmt.Errorf("swipe.threshold must be non-negative")
	}
	if c.Swipe.MaxDurationMS <= 0 {
		return fmt.Errorf("swipe.max_duration_ms must be positive")
	}
	if c.Swipe.CellWidth <= 0 || c.Swipe.CellHeight <= 0 {
		return fmt.Errorf("swipe.cell_width and swipe.cell_height must be positive")
	}

	if c.Transition.FPS <= 0 {
		return fmt.Errorf("transition.fps must be positive")
	}
	if c.Transition.Stiffness <= 0 {
		return fmt.Errorf("transition.stiffness must be positive")
	}
	if c.Transition.Damping < 0 {
		return fmt.Errorf("transition.damping must be non-negative")
	}
	if c.Transition.OpacityMS < 0 {
		return fmt.Errorf("transition.opacity_ms must be non-negative")
	}

	if c.Deck.MaxWidth < 0 {
		return fmt.Errorf("deck.max_width must be non-negative")
	}

	colours := map[string]string{
		"theme.background": c.Theme.Background,
		"theme.foreground": c.Theme.Foreground,
		"theme.primary":    c.Theme.Primary,
		"theme.secondary":  c.Theme.Secondary,
		"theme.accent":     c.Theme.Accent,
	}
	for name, hex := range colours {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, hex, err)
		}
	}
	return nil
}

// GestureOptions converts the swipe settings for the gesture detector
func (c *Config) GestureOptions() gesture.Options {
	return gesture.Options{
		Threshold:   c.Swipe.Threshold,
		MaxDuration: time.Duration(c.Swipe.MaxDurationMS) * time.Millisecond,
	}
}

// TransitionOptions converts the transition settings for the animation player
func (c *Config) TransitionOptions() transition.Options {
	return transition.Options{
		FPS:             c.Transition.FPS,
		Stiffness:       c.Transition.Stiffness,
		Damping:         c.Transition.Damping,
		OpacityDuration: time.Duration(c.Transition.OpacityMS) * time.Millisecond,
	}
}

// DeckOptions converts the deck settings for the deck parser
func (c *Config) DeckOptions() deck.Options {
	return deck.Options{
		Style:    c.Deck.Style,
		MaxWidth: c.Deck.MaxWidth,
	}
}
