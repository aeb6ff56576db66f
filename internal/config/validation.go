package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// Validate checks the settings for correctness.
func Validate(s *models.Settings) error {
	var errs []ValidationError

	errs = append(errs, validateBackground(s.Background)...)
	errs = append(errs, validateVolume(s.Volume)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateBackground checks that the background is one of the known themes.
func validateBackground(b models.Background) []ValidationError {
	if b.IsValid() {
		return nil
	}
	return []ValidationError{{
		Field:   FieldBackground,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(backgroundStrings(), ", ")),
		Value:   string(b),
		Wrapped: ErrInvalidBackground,
	}}
}

// validateVolume checks that the volume is within [MinVolume, MaxVolume].
func validateVolume(v float64) []ValidationError {
	if !math.IsNaN(v) && v >= MinVolume && v <= MaxVolume {
		return nil
	}
	return []ValidationError{{
		Field:   FieldVolume,
		Message: fmt.Sprintf("must be between %g and %g", MinVolume, MaxVolume),
		Value:   v,
		Wrapped: ErrInvalidVolume,
	}}
}

func backgroundStrings() []string {
	valid := models.ValidBackgrounds()
	out := make([]string, len(valid))
	for i, b := range valid {
		out[i] = string(b)
	}
	return out
}
