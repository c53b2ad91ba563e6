package validator

import "testing"

type registrationForm struct {
	Username string `validate:"required,min=3,max=100"`
	Email    string `validate:"omitempty,email"`
	Role     string `validate:"required,oneof=admin doctor nurse receptionist accountant"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(registrationForm{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Role:     "doctor",
	})
	if err != nil {
		t.Errorf("Validate returned error for valid input: %v", err)
	}
}

func TestValidateFailsOnMissingRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(registrationForm{Role: "doctor"})
	if err == nil {
		t.Fatal("Validate accepted a form without a username")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Username"] != "Username is required" {
		t.Errorf("Username message = %q, want %q", formatted["Username"], "Username is required")
	}
}

func TestFormatValidationErrorsOneof(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(registrationForm{Username: "jdoe", Role: "janitor"})
	if err == nil {
		t.Fatal("Validate accepted an unknown role")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Role"] == "" {
		t.Error("no message formatted for Role")
	}
}

func TestFormatValidationErrorsEmail(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(registrationForm{Username: "jdoe", Email: "not-an-email", Role: "nurse"})
	if err == nil {
		t.Fatal("Validate accepted an invalid email")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("Email message = %q", formatted["Email"])
	}
}
