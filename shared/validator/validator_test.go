package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"wakens/shared/failure"
	"wakens/shared/validator"
)

type guestForm struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02,afterdatefield=CheckIn"`
	Guests   int    `json:"guests"    validate:"required,gte=1"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid form",
			body: `{"name":"Asha","email":"asha@example.com","check_in":"2025-11-25","check_out":"2025-11-27","guests":2}`,
		},
		{
			name: "check-out in the following month",
			body: `{"name":"Asha","email":"asha@example.com","check_in":"2025-11-28","check_out":"2025-12-02","guests":2}`,
		},
		{
			name:    "missing name",
			body:    `{"email":"asha@example.com","check_in":"2025-11-25","check_out":"2025-11-27","guests":2}`,
			wantErr: "Name is required",
		},
		{
			name:    "invalid email",
			body:    `{"name":"Asha","email":"not-an-email","check_in":"2025-11-25","check_out":"2025-11-27","guests":2}`,
			wantErr: "Email must be a valid email address",
		},
		{
			name:    "check-out before check-in",
			body:    `{"name":"Asha","email":"asha@example.com","check_in":"2025-11-27","check_out":"2025-11-25","guests":2}`,
			wantErr: "CheckOut must be after CheckIn",
		},
		{
			name:    "check-out equal to check-in",
			body:    `{"name":"Asha","email":"asha@example.com","check_in":"2025-11-25","check_out":"2025-11-25","guests":2}`,
			wantErr: "CheckOut must be after CheckIn",
		},
		{
			name:    "zero guests",
			body:    `{"name":"Asha","email":"asha@example.com","check_in":"2025-11-25","check_out":"2025-11-27","guests":0}`,
			wantErr: "Guests is required",
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := guestForm{}
			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected 400 failure, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("UPI", "oneof=UPI Card 'Net Banking'"); err != nil {
		t.Errorf("expected UPI to be valid, got %v", err)
	}

	if err := validator.ValidateVar("Cash", "oneof=UPI Card 'Net Banking'"); err == nil {
		t.Error("expected Cash to be rejected")
	}
}
