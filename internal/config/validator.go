package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	javacerrors "github.com/alexisbeaulieu97/javacstep/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	buildTargetPattern = regexp.MustCompile(`^//[A-Za-z0-9_./-]*:[A-Za-z0-9_.+=-]+$`)
	javaLevelPattern   = regexp.MustCompile(`^(?:1\.)?(\d+)(?:\.0)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("build_target", func(fl validator.FieldLevel) bool {
			return buildTargetPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("java_level", func(fl validator.FieldLevel) bool {
			_, ok := javaLevel(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// javaLevel normalizes "1.8", "8" and "8.0" to 8. Levels below 5 are rejected.
func javaLevel(value string) (int, bool) {
	matches := javaLevelPattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return 0, false
	}
	level, err := strconv.Atoi(matches[1])
	if err != nil || level < 5 {
		return 0, false
	}
	return level, true
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return javacerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	source, _ := javaLevel(cfg.SourceLevel)
	target, _ := javaLevel(cfg.TargetLevel)
	if target < source {
		return javacerrors.NewValidationError("target_level",
			fmt.Sprintf("target level %s is lower than source level %s", cfg.TargetLevel, cfg.SourceLevel), nil)
	}

	seen := make(map[string]struct{}, len(cfg.Sources))
	for i, source := range cfg.Sources {
		if _, dup := seen[source]; dup {
			return javacerrors.NewValidationError(fmt.Sprintf("sources[%d]", i), fmt.Sprintf("duplicate source %q", source), nil)
		}
		seen[source] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return javacerrors.NewValidationError(field, msg, err)
	}

	return javacerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

// toSnake converts Go field names such as SourceLevel[0] into source_level[0].
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
