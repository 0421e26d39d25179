package validation

// ClientField names one field of the client form.
type ClientField string

const (
	ClientFirstName ClientField = "firstName"
	ClientLastName  ClientField = "lastName"
	ClientDocument  ClientField = "document"
	ClientPhone     ClientField = "phone"
	ClientAddress   ClientField = "address"
	ClientEmail     ClientField = "email"
)

// ClientForm is a snapshot of the client form values.
type ClientForm struct {
	FirstName string
	LastName  string
	Document  string
	Phone     string
	Address   string
	Email     string
}

// ClientErrors mirrors ClientForm field by field. An empty message means
// the field is valid.
type ClientErrors struct {
	FirstName string
	LastName  string
	Document  string
	Phone     string
	Address   string
	Email     string
}

// Any reports whether at least one field is invalid. Submission is blocked
// while Any returns true.
func (e ClientErrors) Any() bool {
	return e != ClientErrors{}
}

// ValidateField re-checks a single field and returns a copy of errs with
// only that field's entry replaced. Unknown field names leave errs untouched.
func (f ClientForm) ValidateField(field ClientField, errs ClientErrors) ClientErrors {
	switch field {
	case ClientFirstName:
		errs.FirstName = checkName(f.FirstName, "first name")
	case ClientLastName:
		errs.LastName = checkName(f.LastName, "last name")
	case ClientDocument:
		errs.Document = checkDigits(f.Document, "document", 7, 11)
	case ClientPhone:
		errs.Phone = checkPhone(f.Phone, 6, 15)
	case ClientAddress:
		errs.Address = checkAddress(f.Address)
	case ClientEmail:
		errs.Email = checkEmail(f.Email)
	}
	return errs
}

// Validate checks every field and is used as the pre-submit gate.
func (f ClientForm) Validate() ClientErrors {
	var errs ClientErrors
	for _, field := range []ClientField{
		ClientFirstName, ClientLastName, ClientDocument,
		ClientPhone, ClientAddress, ClientEmail,
	} {
		errs = f.ValidateField(field, errs)
	}
	return errs
}
