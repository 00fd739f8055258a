package entity

import "testing"

func TestIsValidUserRole(t *testing.T) {
	tests := []struct {
		role UserRole
		want bool
	}{
		{UserRoleFarmer, true},
		{UserRoleBuyer, true},
		{UserRole("admin"), false},
		{UserRole(""), false},
		{UserRole("Farmer"), false},
	}

	for _, tt := range tests {
		if got := IsValidUserRole(tt.role); got != tt.want {
			t.Errorf("IsValidUserRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestIsValidTransactionType(t *testing.T) {
	tests := []struct {
		transactionType TransactionType
		want            bool
	}{
		{TransactionTypeIncome, true},
		{TransactionTypeExpense, true},
		{TransactionType("transfer"), false},
		{TransactionType(""), false},
	}

	for _, tt := range tests {
		if got := IsValidTransactionType(tt.transactionType); got != tt.want {
			t.Errorf("IsValidTransactionType(%q) = %v, want %v", tt.transactionType, got, tt.want)
		}
	}
}
