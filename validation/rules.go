// Package validation implements the per-field form rules for client and
// provider records. Every check trims its input first, never panics, and
// reports problems as plain message strings; an empty message means the
// field is valid. Single-field validation only replaces the entry for the
// named field so blur-triggered revalidation leaves unrelated errors alone.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	nameRegex    = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ]+( [A-Za-zÁÉÍÓÚÜÑáéíóúüñ]+)*$`)
	digitsRegex  = regexp.MustCompile(`^[0-9]+$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	addressRegex = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ0-9 .,ºª°#/-]+$`)
)

// checkName validates a required letters-and-spaces field (accents allowed).
func checkName(value, label string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return label + " is required"
	}
	if !nameRegex.MatchString(value) {
		return label + " may only contain letters and spaces"
	}
	return ""
}

// checkPhone validates a required digit-only field bounded to [min,max] digits.
func checkPhone(value string, min, max int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "phone is required"
	}
	if !digitsRegex.MatchString(value) {
		return "phone may only contain digits"
	}
	if len(value) < min || len(value) > max {
		return "phone must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max) + " digits"
	}
	return ""
}

func checkEmail(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "email is required"
	}
	if !emailRegex.MatchString(value) {
		return "email is not valid"
	}
	return ""
}

// checkDigits validates an optional digit-only field bounded to [min,max]
// digits. Empty input passes.
func checkDigits(value, label string, min, max int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !digitsRegex.MatchString(value) {
		return label + " may only contain digits"
	}
	if len(value) < min || len(value) > max {
		if min == max {
			return label + " must be exactly " + strconv.Itoa(min) + " digits"
		}
		return label + " must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max) + " digits"
	}
	return ""
}

// checkAddress validates an optional address field: 10-100 characters from
// the allowed set (letters incl. accented, digits, space, common punctuation).
func checkAddress(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	n := utf8.RuneCountInString(value)
	if n < 10 || n > 100 {
		return "address must be between 10 and 100 characters"
	}
	if !addressRegex.MatchString(value) {
		return "address contains invalid characters"
	}
	return ""
}

// lengthBetween reports an error when the trimmed value is outside [min,max]
// runes; empty input is reported as required.
func lengthBetween(value, label string, min, max int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return label + " is required"
	}
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return label + " must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max) + " characters"
	}
	return ""
}
