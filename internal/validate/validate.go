// Package validate holds the pure field validators for account input.
// Every rule is evaluated so callers can report all violations at once;
// an empty Errors map means the input is valid.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Errors maps a field name to a human-readable message.
type Errors map[string]string

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSymbols is the punctuation set of which at least one character is required.
const passwordSymbols = "~`!§@#$€%^&*()_-+={[}]|\\:;\"'«»<,>.?/"

const (
	msgFirstName       = "Enter a name between 2 and 35 characters."
	msgLastName        = "Enter a name between 1 and 35 characters."
	msgEmail           = "Enter a valid email format."
	msgPassword        = "Password must be between 6 and 200 characters, including at least 1 number and 1 symbol."
	msgConfirmPassword = "Confirmation password does not match."
)

// Registration checks all registration fields and returns every violation keyed
// by field name.
func Registration(firstName, lastName, email, password, confirm string) Errors {
	errs := Names(firstName, lastName)

	if !ValidEmail(email) {
		errs["email"] = msgEmail
	}
	for field, msg := range PasswordReset(password, confirm) {
		errs[field] = msg
	}

	return errs
}

// Names checks the display-name fields. Registration and profile updates share
// these rules.
func Names(firstName, lastName string) Errors {
	errs := Errors{}

	if n := utf8.RuneCountInString(strings.TrimSpace(firstName)); n < 2 || n > 35 {
		errs["firstName"] = msgFirstName
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(lastName)); n < 1 || n > 35 {
		errs["lastName"] = msgLastName
	}

	return errs
}

// PasswordReset checks the new password and its confirmation.
func PasswordReset(password, confirm string) Errors {
	errs := Errors{}

	if !validPassword(strings.TrimSpace(password)) {
		errs["password"] = msgPassword
	}
	if strings.TrimSpace(password) != strings.TrimSpace(confirm) {
		errs["confirmPswd"] = msgConfirmPassword
	}

	return errs
}

// ValidEmail reports whether the trimmed address has a local@domain.tld shape
// and fits in 320 characters.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	return utf8.RuneCountInString(email) <= 320 && emailRegex.MatchString(email)
}

func validPassword(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < 6 || n > 200 {
		return false
	}
	if !strings.ContainsAny(password, "0123456789") {
		return false
	}
	return strings.ContainsAny(password, passwordSymbols)
}
