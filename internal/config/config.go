// Package config loads the user's TOML settings file and turns it into the
// options the study session, enrichment service and logger consume.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/kanacards/internal/enrich"
	"github.com/abhisek/kanacards/internal/kana"
)

var validate = validator.New()

// Config represents the TOML configuration file.
type Config struct {
	Study      StudyConfig      `toml:"study"`
	Enrichment EnrichmentConfig `toml:"enrichment"`
	Log        LogConfig        `toml:"log"`
}

// StudyConfig is the starting selection and card timing.
type StudyConfig struct {
	Groups        []string `toml:"groups" validate:"required,min=1,dive,required"`
	Scripts       []string `toml:"scripts" validate:"required,min=1,max=2,dive,oneof=hiragana katakana"`
	Mode          string   `toml:"mode" validate:"oneof=char-first romaji-first"`
	SettleDelayMs int      `toml:"settle_delay_ms" validate:"gte=0,lte=10000"`
}

// EnrichmentConfig controls AI mnemonics.
type EnrichmentConfig struct {
	Enabled     bool    `toml:"enabled"`
	TimeoutMs   int     `toml:"timeout_ms" validate:"gte=1000,lte=120000"`
	MaxTokens   int     `toml:"max_tokens" validate:"gte=64,lte=4096"`
	Temperature float64 `toml:"temperature" validate:"gte=0,lte=1"`
}

// LogConfig selects the log level and destination. An empty File uses
// DefaultLogPath; "-" disables logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	ec := enrich.DefaultConfig()
	return Config{
		Study: StudyConfig{
			Groups:        []string{"Vowels"},
			Scripts:       []string{string(kana.Hiragana)},
			Mode:          string(kana.CharFirst),
			SettleDelayMs: 700,
		},
		Enrichment: EnrichmentConfig{
			Enabled:     true,
			TimeoutMs:   int(ec.Timeout / time.Millisecond),
			MaxTokens:   ec.MaxTokens,
			Temperature: ec.Temperature,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML config from path on top of the defaults. A missing file
// is not an error. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and that every group exists in the dataset.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for _, g := range c.Study.Groups {
		if !kana.IsGroup(g) {
			return fmt.Errorf("%w: %q", kana.ErrUnknownGroup, g)
		}
	}
	return nil
}

// Selection builds the starting selection from the study section.
func (c Config) Selection() (kana.Selection, error) {
	scripts := make([]kana.Script, 0, len(c.Study.Scripts))
	for _, s := range c.Study.Scripts {
		sc, err := kana.ParseScript(s)
		if err != nil {
			return kana.Selection{}, err
		}
		scripts = append(scripts, sc)
	}
	mode, err := kana.ParseMode(c.Study.Mode)
	if err != nil {
		return kana.Selection{}, err
	}
	return kana.NewSelection(c.Study.Groups, scripts, mode)
}

// SettleDelay is the face-up swap delay.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.Study.SettleDelayMs) * time.Millisecond
}

// EnrichConfig converts the enrichment section for the enrich service.
func (c Config) EnrichConfig() enrich.Config {
	return enrich.Config{
		MaxTokens:   c.Enrichment.MaxTokens,
		Temperature: c.Enrichment.Temperature,
		Timeout:     time.Duration(c.Enrichment.TimeoutMs) * time.Millisecond,
	}
}

// LogFile resolves the log destination. It returns "" when logging is
// disabled.
func (c Config) LogFile() string {
	switch c.Log.File {
	case "-":
		return ""
	case "":
		return DefaultLogPath()
	}
	return c.Log.File
}
