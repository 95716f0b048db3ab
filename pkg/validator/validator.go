// Package validator wraps validator.Validate with a regex validation tag.
package validator

import (
	"log"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validate extends the base validator.Validate with a `regex` tag whose
// parameter is the expression the field value must match.
type Validate struct {
	validator.Validate
}

func New() *Validate {
	validate := &Validate{
		Validate: *validator.New(),
	}
	if err := validate.RegisterValidation("regex", validateRegex); err != nil {
		log.Fatalf("failed to register regex validator: %s", err)
	}
	return validate
}

// Compiled expressions are cached since tag parameters are static.
var regexCache sync.Map

func validateRegex(fl validator.FieldLevel) bool {
	expr := fl.Param()

	cached, ok := regexCache.Load(expr)
	if !ok {
		cached = regexp.MustCompile(expr)
		regexCache.Store(expr, cached)
	}

	return cached.(*regexp.Regexp).MatchString(fl.Field().String())
}
