package template

import (
	"regexp"
	"strings"
)

// Directive is the normalized text of a placeholder such as {USER_VALUE}.
type Directive string

const (
	// SecretKey marks a field that receives the final master secret.
	SecretKey Directive = "DJANGO_SECRET_KEY"

	// UserValue marks a field prompted on the echoing channel and written as typed.
	UserValue Directive = "USER_VALUE"

	// EncryptedUserValue marks a field prompted on the masked channel and written encrypted.
	EncryptedUserValue Directive = "ENCRYPTED_USER_VALUE"
)

// secretKeyAliases are accepted in place of DJANGO_SECRET_KEY.
var secretKeyAliases = map[Directive]bool{
	"SECRET_KEY": true,
}

var placeholderRegex = regexp.MustCompile(`^\s*\{(.+)\}\s*$`)

// ParseDirective reports whether value is a placeholder and, if so, returns its
// directive upper-cased with surrounding whitespace removed.
func ParseDirective(value string) (Directive, bool) {
	m := placeholderRegex.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}

	d := Directive(strings.ToUpper(strings.TrimSpace(m[1])))
	if secretKeyAliases[d] {
		d = SecretKey
	}
	return d, true
}

// Known reports whether d is one of the recognized directive kinds.
func (d Directive) Known() bool {
	switch d {
	case SecretKey, UserValue, EncryptedUserValue:
		return true
	}
	return false
}
