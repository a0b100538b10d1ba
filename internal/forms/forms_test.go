package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"abc", false},            // too short, no uppercase or digit
		{"Abc123", true},          // minimal valid
		{"abcdef1", false},        // no uppercase
		{"ABCDEF1", false},        // no lowercase
		{"Abcdefg", false},        // no digit
		{"Ab1", false},            // too short
		{"Abc123456789012345", false}, // too long
		{"", false},
	}

	for _, tc := range cases {
		errs := validatePassword(tc.password)
		if tc.valid {
			assert.Empty(t, errs, "password %q", tc.password)
		} else {
			assert.NotEmpty(t, errs, "password %q", tc.password)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	assert.Empty(t, validateEmail("user@example.com"))
	assert.NotEmpty(t, validateEmail(""))
	assert.NotEmpty(t, validateEmail("not-an-email"))
}

func TestLoginFormValidation(t *testing.T) {
	form := NewLoginForm()
	form.Email = "user@example.com"
	form.Password = "Abc123"
	form.Validate()
	assert.True(t, form.IsValid())

	form.Password = "abc"
	form.Validate()
	assert.False(t, form.IsValid())
}

func TestDirtyControlsDisplayOnly(t *testing.T) {
	form := NewLoginForm()
	form.Email = "bad"
	form.Password = "bad"
	form.Validate()

	// Errors exist regardless of dirtiness; submission is gated either way.
	assert.False(t, form.IsValid())
	assert.NotEmpty(t, form.Errors["email"])

	// But nothing is shown until the field is dirty.
	assert.Empty(t, Show(form.Errors, form.Dirty, "email"))

	form.Dirty.TouchAll("email")
	assert.NotEmpty(t, Show(form.Errors, form.Dirty, "email"))
	assert.Empty(t, Show(form.Errors, form.Dirty, "password"))
}

func TestParseLoginFormMarksAllDirty(t *testing.T) {
	form, err := ParseLoginForm(url.Values{
		"email":    {"user@example.com"},
		"password": {"Abc123"},
	})
	require.NoError(t, err)

	assert.True(t, form.Dirty["email"])
	assert.True(t, form.Dirty["password"])
	assert.True(t, form.IsValid())
}

func TestParseRegisterForm(t *testing.T) {
	form, err := ParseRegisterForm(url.Values{
		"email":              {"user@example.com"},
		"password":           {"Abc123"},
		"fullName":           {"Test User"},
		"dateOfBirth":        {"1990-01-01"},
		"gender":             {"female"},
		"country":            {"Canada"},
		"receiveNewsLetters": {"true"},
	})
	require.NoError(t, err)

	assert.True(t, form.IsValid())
	assert.True(t, form.ReceiveNewsLetters)
}

func TestRegisterFormRequiredFields(t *testing.T) {
	form, err := ParseRegisterForm(url.Values{
		"email":    {"user@example.com"},
		"password": {"Abc123"},
	})
	require.NoError(t, err)

	assert.False(t, form.IsValid())
	assert.NotEmpty(t, form.Errors["fullName"])
	assert.NotEmpty(t, form.Errors["dateOfBirth"])
	assert.NotEmpty(t, form.Errors["gender"])
	assert.NotEmpty(t, form.Errors["country"])
	assert.Empty(t, form.Errors["email"])
	assert.Empty(t, form.Errors["password"])
}
