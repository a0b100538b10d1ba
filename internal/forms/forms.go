// Package forms implements per-form validation state: field values are run
// through pure validators producing error lists, and per-field dirty flags
// decide whether an error is displayed. Dirtiness never gates submission;
// IsValid always judges the current values.
package forms

import (
	"regexp"
	"unicode"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

var emailPattern = regexp.MustCompile(`\w+([-+.']\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*`)

// Errors maps field names to their current error messages.
type Errors map[string][]string

// Dirty marks fields the user has interacted with, controlling error display
// only.
type Dirty map[string]bool

func (d Dirty) TouchAll(fields ...string) {
	for _, f := range fields {
		d[f] = true
	}
}

// Show returns the errors to display for a field: only once it is dirty.
func Show(errors Errors, dirty Dirty, field string) []string {
	if !dirty[field] {
		return nil
	}
	return errors[field]
}

func validateEmail(email string) []string {
	var errs []string
	if email == "" {
		errs = append(errs, "Email can't be blank")
		return errs
	}
	if !emailPattern.MatchString(email) {
		errs = append(errs, "Proper email address is expected")
	}
	return errs
}

// validatePassword enforces the 6-15 character policy with at least one
// uppercase letter, one lowercase letter and one digit.
func validatePassword(password string) []string {
	var errs []string
	if password == "" {
		errs = append(errs, "Password can't be blank")
		return errs
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	length := len([]rune(password))
	if length < 6 || length > 15 || !hasUpper || !hasLower || !hasDigit {
		errs = append(errs, "Password should be 6 to 15 characters long with at least one uppercase letter, one lowercase letter and one digit")
	}
	return errs
}

func isValid(errors Errors) bool {
	for _, list := range errors {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// LoginForm carries the login fields and their validation state.
type LoginForm struct {
	Email    string `schema:"email"`
	Password string `schema:"password"`

	Errors Errors `schema:"-"`
	Dirty  Dirty  `schema:"-"`
}

func NewLoginForm() *LoginForm {
	return &LoginForm{Errors: Errors{}, Dirty: Dirty{}}
}

// ParseLoginForm decodes a submitted login form and marks every field dirty,
// matching a submit attempt.
func ParseLoginForm(values map[string][]string) (*LoginForm, error) {
	f := NewLoginForm()
	if err := decoder.Decode(f, values); err != nil {
		return nil, err
	}
	f.Dirty.TouchAll("email", "password")
	f.Validate()
	return f, nil
}

func (f *LoginForm) Validate() {
	f.Errors = Errors{
		"email":    validateEmail(f.Email),
		"password": validatePassword(f.Password),
	}
}

func (f *LoginForm) IsValid() bool {
	return isValid(f.Errors)
}

// RegisterForm carries the registration fields and their validation state.
type RegisterForm struct {
	Email              string `schema:"email"`
	Password           string `schema:"password"`
	FullName           string `schema:"fullName"`
	DateOfBirth        string `schema:"dateOfBirth"`
	Gender             string `schema:"gender"`
	Country            string `schema:"country"`
	ReceiveNewsLetters bool   `schema:"receiveNewsLetters"`

	Errors Errors `schema:"-"`
	Dirty  Dirty  `schema:"-"`
}

func NewRegisterForm() *RegisterForm {
	return &RegisterForm{Errors: Errors{}, Dirty: Dirty{}}
}

func ParseRegisterForm(values map[string][]string) (*RegisterForm, error) {
	f := NewRegisterForm()
	if err := decoder.Decode(f, values); err != nil {
		return nil, err
	}
	f.Dirty.TouchAll("email", "password", "fullName", "dateOfBirth", "gender", "country")
	f.Validate()
	return f, nil
}

func (f *RegisterForm) Validate() {
	errs := Errors{
		"email":    validateEmail(f.Email),
		"password": validatePassword(f.Password),
	}

	errs["fullName"] = nil
	if f.FullName == "" {
		errs["fullName"] = []string{"Full Name can't be blank"}
	}

	errs["dateOfBirth"] = nil
	if f.DateOfBirth == "" {
		errs["dateOfBirth"] = []string{"Date of Birth can't be blank"}
	}

	errs["gender"] = nil
	if f.Gender == "" {
		errs["gender"] = []string{"Please select gender either male or female"}
	}

	errs["country"] = nil
	if f.Country == "" {
		errs["country"] = []string{"Please select a country"}
	}

	f.Errors = errs
}

func (f *RegisterForm) IsValid() bool {
	return isValid(f.Errors)
}
