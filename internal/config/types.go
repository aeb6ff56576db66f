package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// Settings field keys, as written in userConfig.yaml.
const (
	FieldBackground         = "background"
	FieldVolume             = "volume"
	FieldHighContrastText   = "highContrastText"
	FieldAdvancedMapOptions = "advancedMapOptions"
)

// FieldNames returns the settings keys accepted by SetField.
func FieldNames() []string {
	return []string{FieldBackground, FieldVolume, FieldHighContrastText, FieldAdvancedMapOptions}
}

// applyField parses value and stores it in the named field of s.
// Range checks are left to Validate.
func applyField(s *models.Settings, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case FieldBackground:
		s.Background = models.Background(strings.ToLower(value))
	case FieldVolume:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &ValidationError{Field: key, Message: "must be a number", Value: value, Wrapped: ErrInvalidVolume}
		}
		s.Volume = v
	case FieldHighContrastText, FieldAdvancedMapOptions:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{Field: key, Message: "must be true or false", Value: value, Wrapped: ErrInvalidConfig}
		}
		if key == FieldHighContrastText {
			s.HighContrastText = b
		} else {
			s.AdvancedMapOptions = b
		}
	default:
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownField, key, strings.Join(FieldNames(), ", "))
	}
	return nil
}

// FieldValue returns the named field of s formatted for display.
func FieldValue(s models.Settings, key string) (string, error) {
	switch key {
	case FieldBackground:
		return string(s.Background), nil
	case FieldVolume:
		return strconv.FormatFloat(s.Volume, 'f', -1, 64), nil
	case FieldHighContrastText:
		return strconv.FormatBool(s.HighContrastText), nil
	case FieldAdvancedMapOptions:
		return strconv.FormatBool(s.AdvancedMapOptions), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, key)
}
