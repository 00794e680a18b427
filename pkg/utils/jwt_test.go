package utils

import (
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken(3001, "Marisol Vega", RoleWorker)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.EmployeeNumber != 3001 {
		t.Errorf("EmployeeNumber = %d, want 3001", claims.EmployeeNumber)
	}
	if claims.Name != "Marisol Vega" {
		t.Errorf("Name = %q", claims.Name)
	}
	if claims.Role != RoleWorker {
		t.Errorf("Role = %q, want %q", claims.Role, RoleWorker)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(2001, "Dana Whitfield", RoleManager)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with a different secret should be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) should fail", tok)
		}
	}
}

func TestIsAtLeastManager(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleWorker, false},
		{RoleManager, true},
		{RoleAdmin, true},
		{"", false},
		{"superuser", false},
	}
	for _, tt := range tests {
		c := &UserClaims{Role: tt.role}
		if got := c.IsAtLeastManager(); got != tt.want {
			t.Errorf("IsAtLeastManager(role=%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
