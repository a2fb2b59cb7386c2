package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()

		assert.Len(t, ref, 12)
		assert.True(t, strings.HasPrefix(ref, "NIR-"), "reference %q", ref)
		for _, c := range ref[4:] {
			assert.Contains(t, referenceCharset, string(c), "reference %q", ref)
		}
		seen[ref] = true
	}
	// 32^8 combinations, 100 draws colliding would mean a broken generator
	assert.Greater(t, len(seen), 90)
}

func TestPhoneValidation(t *testing.T) {
	type form struct {
		Phone string `validate:"phone"`
	}

	valid := []string{
		"+91 98765 43210",
		"9876543210",
		"(555) 123-4567",
		"555-123-4567",
	}
	for _, phone := range valid {
		assert.Nil(t, ValidateStruct(form{Phone: phone}), "phone %q", phone)
	}

	invalid := []string{
		"12345",
		"not a phone",
		"++91 98765 43210",
		"98765-43210x",
	}
	for _, phone := range invalid {
		errs := ValidateStruct(form{Phone: phone})
		assert.Equal(t, "Please enter a valid phone number", errs["Phone"], "phone %q", phone)
	}
}

func TestValidateStructMessages(t *testing.T) {
	type form struct {
		Email  string `validate:"required,email"`
		Gender string `validate:"required,oneof=male female other unspecified"`
	}

	errs := ValidateStruct(form{})
	assert.Equal(t, "This field is required", errs["Email"])
	assert.Equal(t, "This field is required", errs["Gender"])

	errs = ValidateStruct(form{Email: "nope", Gender: "none"})
	assert.Equal(t, "Please enter a valid email", errs["Email"])
	assert.Equal(t, "Must be one of: male, female, other, unspecified", errs["Gender"])

	assert.Nil(t, ValidateStruct(form{Email: "asha.rao@example.com", Gender: "female"}))
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Equal(t, "", FormatValidationErrors(nil))
	assert.Equal(t, "Email: Please enter a valid email",
		FormatValidationErrors(map[string]string{"Email": "Please enter a valid email"}))
}
