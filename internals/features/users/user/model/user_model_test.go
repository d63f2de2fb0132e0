package model

import (
	"strings"
	"testing"

	"guidanceku_backend/internals/constants"
)

func TestFullName(t *testing.T) {
	u := UserModel{FirstName: "Dana", LastName: "Cruz", UserName: "dcruz"}
	if got := u.FullName(); got != "Dana Cruz" {
		t.Fatalf("FullName = %q", got)
	}

	bare := UserModel{UserName: "dcruz"}
	if got := bare.FullName(); got != "dcruz" {
		t.Fatalf("FullName fallback = %q, want username", got)
	}
}

func TestBeforeSaveSuperuserInvariant(t *testing.T) {
	u := UserModel{
		IsSuperuser:    true,
		IsActive:       false,
		ApprovalStatus: ApprovalPending,
	}
	if err := u.BeforeSave(nil); err != nil {
		t.Fatal(err)
	}
	if !u.IsActive {
		t.Fatal("superuser left inactive")
	}
	if u.ApprovalStatus != ApprovalApproved {
		t.Fatalf("superuser approval = %q, want approved", u.ApprovalStatus)
	}

	// regular users are untouched
	regular := UserModel{IsActive: false, ApprovalStatus: ApprovalPending}
	if err := regular.BeforeSave(nil); err != nil {
		t.Fatal(err)
	}
	if regular.IsActive || regular.ApprovalStatus != ApprovalPending {
		t.Fatal("BeforeSave mutated a regular user")
	}
}

func TestValidateDefaultsApproval(t *testing.T) {
	u := UserModel{
		UserName:  "dcruz",
		Email:     "dana@example.com",
		Password:  "supersecret",
		FirstName: "Dana",
		LastName:  "Cruz",
		Role:      constants.RoleStudent,
	}
	if err := u.Validate(); err != nil {
		t.Fatal(err)
	}
	if u.ApprovalStatus != ApprovalPending {
		t.Fatalf("ApprovalStatus = %q, want pending default", u.ApprovalStatus)
	}
}

func TestValidateRejectsUnknownRole(t *testing.T) {
	u := UserModel{
		UserName:  "dcruz",
		Email:     "dana@example.com",
		Password:  "supersecret",
		FirstName: "Dana",
		LastName:  "Cruz",
		Role:      constants.Role("teacher"),
	}
	err := u.Validate()
	if err == nil {
		t.Fatal("unknown role accepted")
	}
	if !strings.Contains(err.Error(), "Role") {
		t.Fatalf("error does not mention role: %v", err)
	}
}
