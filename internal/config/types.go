package config

import (
	"github.com/alexisbeaulieu97/javacstep/internal/javac"
)

// Config describes one compilation step.
type Config struct {
	Version       string            `yaml:"version" toml:"version" validate:"required,semver"`
	Target        string            `yaml:"target" toml:"target" validate:"required,build_target"`
	Compiler      string            `yaml:"compiler" toml:"compiler" validate:"required"`
	Sources       []string          `yaml:"sources" toml:"sources" validate:"required,min=1,dive,required"`
	Output        string            `yaml:"output" toml:"output" validate:"required"`
	Classpath     []string          `yaml:"classpath,omitempty" toml:"classpath" validate:"omitempty,dive,required"`
	SourceLevel   string            `yaml:"source_level" toml:"source_level" validate:"required,java_level"`
	TargetLevel   string            `yaml:"target_level" toml:"target_level" validate:"required,java_level"`
	Bootclasspath string            `yaml:"bootclasspath,omitempty" toml:"bootclasspath"`
	Debug         bool              `yaml:"debug,omitempty" toml:"debug"`
	ExtraArgs     []string          `yaml:"extra_args,omitempty" toml:"extra_args" validate:"omitempty,dive,required"`
	SourcesList   string            `yaml:"sources_list,omitempty" toml:"sources_list"`
	WorkDir       string            `yaml:"work_dir,omitempty" toml:"work_dir"`
	Env           map[string]string `yaml:"env,omitempty" toml:"env" validate:"omitempty,dive,keys,required,endkeys"`
	// Suggestions maps package or class prefixes to the build targets that
	// provide them; used to suggest deps when symbols are missing.
	Suggestions map[string]string `yaml:"suggestions,omitempty" toml:"suggestions" validate:"omitempty,dive,keys,required,endkeys,build_target"`
	Settings    Settings          `yaml:"settings,omitempty" toml:"settings"`
}

// Settings holds output preferences.
type Settings struct {
	Verbosity string `yaml:"verbosity,omitempty" toml:"verbosity" validate:"omitempty,oneof=silent standard binary_outputs commands all"`
	LogLevel  string `yaml:"log_level,omitempty" toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// StepParams converts the configuration into javac step parameters.
func (c *Config) StepParams() javac.Params {
	params := javac.Params{
		Target:          c.Target,
		Compiler:        c.Compiler,
		Sources:         c.Sources,
		OutputDirectory: c.Output,
		Classpath:       c.Classpath,
		Options: javac.Options{
			SourceLevel:    c.SourceLevel,
			TargetLevel:    c.TargetLevel,
			Bootclasspath:  c.Bootclasspath,
			Debug:          c.Debug,
			ExtraArguments: c.ExtraArgs,
		},
		PathToSourcesList: c.SourcesList,
	}
	if len(c.Suggestions) > 0 {
		params.Suggester = javac.PackageIndexSuggester{Index: c.Suggestions}
	}
	return params
}
