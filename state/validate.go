package state

import (
	"regexp"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/agiangrant/inspector/tw"
)

var (
	tagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	idPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)

	blendModes = []string{
		"normal", "multiply", "screen", "overlay", "darken", "lighten",
		"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
		"exclusion", "hue", "saturation", "color", "luminosity", "plus-darker", "plus-lighter",
	}
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the inspector's custom tags
// registered: html_tag, element_id, blend_mode and breakpoint.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "html_tag", func(fl validator.FieldLevel) bool {
			return tagPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "element_id", func(fl validator.FieldLevel) bool {
			return idPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "blend_mode", func(fl validator.FieldLevel) bool {
			return slices.Contains(blendModes, fl.Field().String())
		})
		mustRegister(v, "breakpoint", func(fl validator.FieldLevel) bool {
			_, err := tw.ParseBreakpoint(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks the enumerated fields (position type, text align, border
// style, blend mode, shadow, tag, element id). Free-form values are not checked:
// generators omit what they cannot format.
func (s StyleState) Validate() error {
	return Validator().Struct(s)
}

// Validate checks the leaves the overlay sets.
func (p PartialState) Validate() error {
	return Validator().Struct(p)
}
