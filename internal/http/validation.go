package http

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var registerValidationOnce sync.Once

// registerValidation makes validation errors report JSON/form field names
// instead of Go struct field names.
func registerValidation() {
	registerValidationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
	})
}

// invalidFields lists the offending field names of a binding error, or nil
// when err is not a validation failure.
func invalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	return lo.Uniq(lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fe.Field()
	}))
}

// isEmptyBody reports whether a JSON binding error came from a missing body.
func isEmptyBody(err error) bool {
	return errors.Is(err, io.EOF)
}
