package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Encode writes cfg to w as TOML, or as YAML when asYAML is set.
func Encode(w io.Writer, cfg *Config, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode YAML: %w", err)
		}
		return enc.Close()
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode TOML: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
