package validator_test

import (
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuminh/product-api/pkg/validator"
)

type testInput struct {
	Name string `validate:"required,notblank,max=10"`
}

type optionalInput struct {
	Name *string `validate:"omitnil,notblank"`
}

func newValidator(t *testing.T) *validator.DefaultValidator {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)
	return v
}

func TestNotBlank(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Validate(testInput{Name: "ok"}))
	assert.Error(t, v.Validate(testInput{Name: "   "}))
	assert.Error(t, v.Validate(testInput{Name: ""}))
}

func TestOmitNilSkipsAbsentFields(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Validate(optionalInput{}))

	blank := "  "
	assert.Error(t, v.Validate(optionalInput{Name: &blank}))
}

func TestValidateAggregatesViolations(t *testing.T) {
	v := newValidator(t)

	type multiField struct {
		A string `validate:"required"`
		B string `validate:"required"`
	}

	err := v.Validate(multiField{})

	var validationErrs govalidator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 2)
}

func TestValidationErrorMessage(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(testInput{Name: "way too long name"})

	var validationErrs govalidator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "must be at most 10", validator.ValidationErrorMessage(validationErrs[0]))
}
