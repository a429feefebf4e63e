package tools

import "regexp"

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail valida o formato sintático do endereço.
func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// InRangeInt verifica v dentro de [min, max] (inclusivo).
func InRangeInt(v, min, max int) bool {
	return v >= min && v <= max
}

// InRangeFloat verifica v dentro de [min, max] (inclusivo).
func InRangeFloat(v, min, max float64) bool {
	return v >= min && v <= max
}
