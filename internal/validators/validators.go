package validators

import (
	"net"
	"strings"
	"unicode"
)

// IsValidPhone acepta exactamente 10 dígitos (formato nacional MX).
func IsValidPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValidPassword exige 8+ caracteres, una mayúscula y un dígito.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, digit bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			upper = true
		}
		if unicode.IsDigit(r) {
			digit = true
		}
	}
	return upper && digit
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
