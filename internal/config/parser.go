package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	javacerrors "github.com/alexisbeaulieu97/javacstep/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns
// the resulting model. Files ending in .toml are decoded as TOML, everything
// else as YAML.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, javacerrors.NewParseError(path, 0, err)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = decodeTOML(path, data)
	} else {
		cfg, err = decodeYAML(path, data)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(path string, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, javacerrors.NewParseError(path, 0, fmt.Errorf("empty configuration"))
		}
		return nil, javacerrors.NewParseError(path, extractLine(err), err)
	}
	return &cfg, nil
}

func decodeTOML(path string, data []byte) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		line := 0
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			line = parseErr.Position.Line
		}
		return nil, javacerrors.NewParseError(path, line, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, javacerrors.NewParseError(path, 0, fmt.Errorf("unknown field %q", undecoded[0].String()))
	}
	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
