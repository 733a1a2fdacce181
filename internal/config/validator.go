package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aleister1102/utilcode/internal/timeutil"
	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator with the custom tags used by GlobalConfig.
func newValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" || strings.EqualFold(name, "local") {
			return true
		}
		_, err := time.LoadLocation(name)
		return err == nil
	})

	_ = validate.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := timeutil.ParseLocale(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("datepattern", func(fl validator.FieldLevel) bool {
		_, err := timeutil.NewFormatterIn(fl.Field().String(), time.UTC)
		return err == nil
	})

	_ = validate.RegisterValidation("cachemode", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", CacheModeShared, CacheModeLocal:
			return true
		default:
			return false
		}
	})

	return validate
}

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New("configuration validation failed: config is nil")
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.Namespace(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		messages = append(messages, msg)
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
}
