package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/v2"
)

// tomlParser adapts BurntSushi/toml to koanf's Parser interface.
type tomlParser struct{}

// TOMLParser returns a koanf parser for config.toml files.
func TOMLParser() koanf.Parser {
	return &tomlParser{}
}

// Unmarshal parses TOML bytes into a nested map.
func (p *tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if _, err := toml.Decode(string(b), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal renders a nested map as TOML.
func (p *tomlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode renders cfg in config.toml form.
func Encode(cfg Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateSampleConfig returns a commented config.toml with default values.
func GenerateSampleConfig() string {
	return `# tlreport configuration file

# Price of one hour at coefficient 1. HOURLY or TLREPORT_HOURLY_RATE override it.
hourly_rate = 0

# Timezone for timestamps without an offset: IANA name (e.g., "Europe/Berlin") or "Local"
timezone = "Local"

# Extra Go time layout tried before the built-in ones, e.g. "02.01.2006 15:04"
# date_layout = ""

# Color theme for "tlreport view" (any bubbletint theme id, e.g. "dracula", "nord")
theme = "dracula"

# Log debug output to stderr
debug = false
`
}
