package model

import (
	"strings"
	"unicode/utf8"
)

// Identity is the email/password pair captured at sign-in
type Identity struct {
	Email    string
	Password string
}

// AvatarGlyph returns the first character of the email, uppercased.
// An empty email yields an empty glyph.
func (i Identity) AvatarGlyph() string {
	r, size := utf8.DecodeRuneInString(i.Email)
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}
