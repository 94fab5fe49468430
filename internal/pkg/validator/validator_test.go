package validator

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@hrms.com"))
	assert.True(t, IsValidEmail("jane.smith+test@company.co.uk"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID(uuid.Must(uuid.NewV7()).String()))
	// v4 has the wrong version nibble
	assert.False(t, IsValidUUID(uuid.New().String()))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP001"))
	assert.True(t, IsValidEmployeeCode("EMP1234"))
	assert.False(t, IsValidEmployeeCode("EMP01"))
	assert.False(t, IsValidEmployeeCode("emp001"))
	assert.False(t, IsValidEmployeeCode("E001"))
	assert.False(t, IsValidEmployeeCode(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-07-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.July, date.Month())

	_, ok = IsValidDate("15/07/2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestInclusiveDays(t *testing.T) {
	start := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, InclusiveDays(start, end))

	// A single day counts as one.
	assert.Equal(t, 1, InclusiveDays(start, start))

	// Reversed ranges yield zero.
	assert.Equal(t, 0, InclusiveDays(end, start))

	// Month boundary.
	start = time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC)
	end = time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, InclusiveDays(start, end))
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "days", Message: "days must be positive"},
	}

	assert.Equal(t, "email: email is required; days: days must be positive", errs.Error())
	assert.Equal(t, map[string]string{
		"email": "email is required",
		"days":  "days must be positive",
	}, errs.ToMap())
}
