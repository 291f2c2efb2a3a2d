package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	javacerrors "github.com/alexisbeaulieu97/javacstep/pkg/errors"
)

func baseConfig() *Config {
	return &Config{
		Version:     "1.0",
		Target:      "//foo:bar",
		Compiler:    "javac",
		Sources:     []string{"Foo.java"},
		Output:      "out",
		SourceLevel: "8",
		TargetLevel: "8",
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(cfg *Config)
		wantField string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "java 1.x style level", mutate: func(cfg *Config) { cfg.SourceLevel = "1.7"; cfg.TargetLevel = "8.0" }},
		{name: "bad version", mutate: func(cfg *Config) { cfg.Version = "beta" }, wantField: "config.version"},
		{name: "bad target", mutate: func(cfg *Config) { cfg.Target = "foo:bar" }, wantField: "config.target"},
		{name: "no sources", mutate: func(cfg *Config) { cfg.Sources = nil }, wantField: "config.sources"},
		{name: "blank source", mutate: func(cfg *Config) { cfg.Sources = []string{""} }, wantField: "config.sources[0]"},
		{name: "bad source level", mutate: func(cfg *Config) { cfg.SourceLevel = "1.4" }, wantField: "config.source_level"},
		{name: "target below source", mutate: func(cfg *Config) { cfg.SourceLevel = "11"; cfg.TargetLevel = "8" }, wantField: "target_level"},
		{name: "duplicate source", mutate: func(cfg *Config) { cfg.Sources = []string{"A.java", "A.java"} }, wantField: "sources[1]"},
		{name: "bad verbosity", mutate: func(cfg *Config) { cfg.Settings.Verbosity = "loud" }, wantField: "config.settings.verbosity"},
		{name: "bad suggestion target", mutate: func(cfg *Config) {
			cfg.Suggestions = map[string]string{"com.google": "guava"}
		}, wantField: "config.suggestions[com.google]"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := baseConfig()
			tc.mutate(cfg)

			err := ValidateConfig(cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *javacerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *javacerrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func TestJavaLevel(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]int{"1.8": 8, "8": 8, "8.0": 8, "17": 17, "1.5": 5} {
		got, ok := javaLevel(input)
		require.True(t, ok, input)
		require.Equal(t, want, got, input)
	}
	for _, input := range []string{"", "1.4", "eight", "8.1"} {
		_, ok := javaLevel(input)
		require.False(t, ok, input)
	}
}
