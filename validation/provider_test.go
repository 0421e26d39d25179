package validation

import "testing"

func validProviderForm() ProviderForm {
	return ProviderForm{
		CompanyName: "Alimentos del Sur",
		CUIT:        "30712345678",
		Phone:       "01155550000",
		Address:     "Ruta 8 Km 45 Parque Industrial",
		Email:       "ventas@alimentos.com",
		Category:    "Alimentos",
	}
}

func TestProviderFormValidateOk(t *testing.T) {
	if errs := validProviderForm().Validate(); errs.Any() {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestProviderCUIT(t *testing.T) {
	cases := []struct {
		cuit string
		ok   bool
	}{
		{"12345678901", true},  // exactly 11 digits
		{"1234567890", false},  // 10 digits
		{"123456789012", false}, // 12 digits
		{"", false},
		{"1234567890a", false},
		{" 12345678901 ", true}, // trimmed before checking
	}
	for _, tc := range cases {
		f := validProviderForm()
		f.CUIT = tc.cuit
		errs := f.ValidateField(ProviderCUIT, ProviderErrors{})
		if tc.ok && errs.CUIT != "" {
			t.Errorf("CUIT %q should be valid, got %q", tc.cuit, errs.CUIT)
		}
		if !tc.ok && errs.CUIT == "" {
			t.Errorf("CUIT %q should be rejected", tc.cuit)
		}
	}
}

func TestProviderFormValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ProviderForm)
		check  func(ProviderErrors) string
	}{
		{
			name:   "company name single letter",
			mutate: func(f *ProviderForm) { f.CompanyName = "A" },
			check:  func(e ProviderErrors) string { return e.CompanyName },
		},
		{
			name:   "company name with digits",
			mutate: func(f *ProviderForm) { f.CompanyName = "Acme 3000" },
			check:  func(e ProviderErrors) string { return e.CompanyName },
		},
		{
			name:   "phone too short",
			mutate: func(f *ProviderForm) { f.Phone = "123456" },
			check:  func(e ProviderErrors) string { return e.Phone },
		},
		{
			name:   "missing email",
			mutate: func(f *ProviderForm) { f.Email = "" },
			check:  func(e ProviderErrors) string { return e.Email },
		},
		{
			name:   "category too short",
			mutate: func(f *ProviderForm) { f.Category = "ab" },
			check:  func(e ProviderErrors) string { return e.Category },
		},
		{
			name:   "missing category",
			mutate: func(f *ProviderForm) { f.Category = "  " },
			check:  func(e ProviderErrors) string { return e.Category },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validProviderForm()
			tc.mutate(&f)
			errs := f.Validate()
			if tc.check(errs) == "" {
				t.Fatalf("expected an error, got %+v", errs)
			}
		})
	}
}

func TestProviderEmailFieldRevalidation(t *testing.T) {
	f := validProviderForm()
	f.Email = "bad"
	errs := f.ValidateField(ProviderEmail, ProviderErrors{})
	if errs.Email == "" {
		t.Fatal("expected email error for 'bad'")
	}

	f.Email = "a@b.com"
	errs = f.ValidateField(ProviderEmail, errs)
	if errs.Email != "" {
		t.Fatalf("expected email error cleared, got %q", errs.Email)
	}
}

func TestProviderOptionalAddress(t *testing.T) {
	f := validProviderForm()
	f.Address = ""
	if errs := f.Validate(); errs.Address != "" {
		t.Fatalf("empty address must pass, got %q", errs.Address)
	}
}
