package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom validation patterns for the storefront forms. The phone rule
// matches Egyptian mobile numbers with an optional +2 country prefix.
var (
	egyptPhoneRegex = regexp.MustCompile(`^(\+2)?01[0125][0-9]{8}$`)
	alphaSpaceRegex = regexp.MustCompile(`^[\p{L} ]+$`)
	alnumSpaceRegex = regexp.MustCompile(`^[\p{L}\p{N} ]+$`)
)

// RegisterValidators installs the custom form validators on Gin's binding
// engine and makes validation errors report json/form tag names instead of
// Go field names. Call once at startup before serving requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	if err := v.RegisterValidation("egyptphone", func(fl validator.FieldLevel) bool {
		return egyptPhoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("alnumspace", func(fl validator.FieldLevel) bool {
		return alnumSpaceRegex.MatchString(fl.Field().String())
	})
}

// bindingErrors converts a binding error into a per-field message map, or
// nil when the error is not a validation error (malformed JSON, wrong
// content type).
func bindingErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "egyptphone":
		return "Must be a valid Egyptian mobile number"
	case "alphaspace":
		return "Only letters and spaces are allowed"
	case "alnumspace":
		return "Only letters, numbers and spaces are allowed"
	default:
		return fmt.Sprintf("Failed validation rule '%s'", fe.Tag())
	}
}

// bindJSONOrFail binds a JSON body into req, writing the 400 response and
// returning false when binding fails.
func bindJSONOrFail(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields := bindingErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: fields})
		} else {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		}
		return false
	}
	return true
}
