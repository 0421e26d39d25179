package validation

import (
	"strings"
)

// ProviderField names one field of the provider form.
type ProviderField string

const (
	ProviderCompanyName ProviderField = "companyName"
	ProviderCUIT        ProviderField = "cuit"
	ProviderPhone       ProviderField = "phone"
	ProviderAddress     ProviderField = "address"
	ProviderEmail       ProviderField = "email"
	ProviderCategory    ProviderField = "category"
)

// ProviderForm is a snapshot of the provider form values.
type ProviderForm struct {
	CompanyName string
	CUIT        string
	Phone       string
	Address     string
	Email       string
	Category    string
}

// ProviderErrors mirrors ProviderForm field by field.
type ProviderErrors struct {
	CompanyName string
	CUIT        string
	Phone       string
	Address     string
	Email       string
	Category    string
}

func (e ProviderErrors) Any() bool {
	return e != ProviderErrors{}
}

// ValidateField re-checks a single field and returns a copy of errs with
// only that field's entry replaced.
func (f ProviderForm) ValidateField(field ProviderField, errs ProviderErrors) ProviderErrors {
	switch field {
	case ProviderCompanyName:
		errs.CompanyName = checkCompanyName(f.CompanyName)
	case ProviderCUIT:
		errs.CUIT = checkCUIT(f.CUIT)
	case ProviderPhone:
		errs.Phone = checkPhone(f.Phone, 7, 20)
	case ProviderAddress:
		errs.Address = checkAddress(f.Address)
	case ProviderEmail:
		errs.Email = checkEmail(f.Email)
	case ProviderCategory:
		errs.Category = lengthBetween(f.Category, "category", 3, 300)
	}
	return errs
}

// Validate checks every field and is used as the pre-submit gate.
func (f ProviderForm) Validate() ProviderErrors {
	var errs ProviderErrors
	for _, field := range []ProviderField{
		ProviderCompanyName, ProviderCUIT, ProviderPhone,
		ProviderAddress, ProviderEmail, ProviderCategory,
	} {
		errs = f.ValidateField(field, errs)
	}
	return errs
}

// checkCompanyName is the name rule with the extra 2-50 length bound.
func checkCompanyName(value string) string {
	if msg := checkName(value, "company name"); msg != "" {
		return msg
	}
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) < 2 || len([]rune(trimmed)) > 50 {
		return "company name must be between 2 and 50 characters"
	}
	return ""
}

// checkCUIT requires exactly 11 digits (Argentine tax id).
func checkCUIT(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "CUIT is required"
	}
	if !digitsRegex.MatchString(value) {
		return "CUIT may only contain digits"
	}
	if len(value) != 11 {
		return "CUIT must be exactly 11 digits"
	}
	return ""
}
