package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"

	"fyyur/internal/models"
)

// startTimeLayouts are accepted for show start times, always read as UTC.
var startTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var (
	formDecoder   = newFormDecoder()
	formValidator = newFormValidator()
)

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
			return time.Time{}, nil
		}
		for _, layout := range startTimeLayouts {
			if t, err := time.ParseInLocation(layout, strings.TrimSpace(vals[0]), time.UTC); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("invalid date/time %q", vals[0])
	}, time.Time{})
	return d
}

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("us_state", oneOf(models.States))
	_ = v.RegisterValidation("genre", oneOf(models.Genres))
	return v
}

func oneOf(choices []string) validator.Func {
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[c] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	}
}

// fieldErrors maps a struct field name to a message shown next to it.
type fieldErrors map[string]string

// decodeForm fills dst from the posted form and validates it. A non-nil
// error means the request itself was unreadable; field problems come back
// in the map, which is empty when dst is valid.
func decodeForm(r *http.Request, dst any) (fieldErrors, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	errs := fieldErrors{}
	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		var decodeErrs form.DecodeErrors
		if !errors.As(err, &decodeErrs) {
			return nil, fmt.Errorf("decode form: %w", err)
		}
		for ns := range decodeErrs {
			errs[structField(dst, ns)] = "Invalid value."
		}
	}

	if err := formValidator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate form: %w", err)
		}
		for _, fe := range verrs {
			name := fe.StructField()
			if i := strings.IndexByte(name, '['); i >= 0 {
				name = name[:i]
			}
			if _, seen := errs[name]; !seen {
				errs[name] = validationMessage(fe)
			}
		}
	}
	return errs, nil
}

// structField resolves a form key back to the Go field it decodes into.
func structField(dst any, key string) string {
	if i := strings.IndexByte(key, '['); i >= 0 {
		key = key[:i]
	}
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return key
	}
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.Tag.Get("form") == key || f.Name == key {
			return f.Name
		}
	}
	return key
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Enter a valid URL."
	case "us_state":
		return "Choose a US state."
	case "genre":
		return "Choose genres from the list."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "min":
		return "Choose at least one."
	case "gt":
		return "Must be a positive number."
	default:
		return "Invalid value."
	}
}
