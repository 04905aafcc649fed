package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/novera/models"
	"github.com/go-playground/validator/v10"
)

// MaxPageLimit caps the number of novels a single list call may return.
const MaxPageLimit = 1000

// tagReadingStatus is the custom validation tag for [models.ReadingStatus] fields.
const tagReadingStatus = "reading_status"

// Page describes an offset/limit window over a list.
type Page struct {
	Offset uint64
	Limit  uint64
}

// RequestValidator implements Validator for the request models
// accepted by the service layer.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the json tag names
// used in error messages and the reading status rule registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(tagReadingStatus, func(fl validator.FieldLevel) bool {
		return models.ReadingStatus(fl.Field().String()).IsValid()
	})

	return &RequestValidator{validate: v}
}

// Validate dispatches validation based on the dynamic type of obj.
// Both value and pointer forms of the request models are accepted.
//
// Supported types:
//   - models.RegisterRequest, models.LoginRequest
//   - models.NovelInput, models.ChapterInput
//   - models.StatusInput, models.ReadingStatus
//   - Page
//   - int64 (positive identifier)
//
// When fields are given, only the named struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.NovelInput, *models.NovelInput,
		models.ChapterInput, *models.ChapterInput:
		return v.validateStruct(ctx, value, fields...)

	case models.StatusInput:
		return v.validateStatus(value.Status)
	case *models.StatusInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStatus(value.Status)
	case models.ReadingStatus:
		return v.validateStatus(value)

	case Page:
		return validatePage(value)
	case *Page:
		if value == nil {
			return ErrUnsupportedType
		}
		return validatePage(*value)

	case int64:
		if value <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidID, value)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %s", ErrValidationFailed, describe(fieldErrors))
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

func (v *RequestValidator) validateStatus(status models.ReadingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return nil
}

func validatePage(page Page) error {
	if page.Limit == 0 || page.Limit > MaxPageLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPage, MaxPageLimit)
	}
	return nil
}

// describe renders field errors as "title is required; email must be a valid email".
func describe(fieldErrors validator.ValidationErrors) string {
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describeField(fe))
	}
	return strings.Join(messages, "; ")
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case tagReadingStatus:
		return fe.Field() + " is not a known reading status"
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
