package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"transaction_type": validateTransactionType,
		"goal_category":    validateGoalCategory,
		"item_key":         validateItemKey,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("register %s: %v", tag, err)
		}
	}
	return v
}

func TestValidators(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name  string
		tag   string
		value string
		valid bool
	}{
		{name: "income_type", tag: "transaction_type", value: "income", valid: true},
		{name: "goal_contribution_type", tag: "transaction_type", value: "goal_contribution", valid: true},
		{name: "transfer_type", tag: "transaction_type", value: "transfer", valid: false},
		{name: "house_goal", tag: "goal_category", value: "house", valid: true},
		{name: "car_goal", tag: "goal_category", value: "car", valid: false},
		{name: "slug_key", tag: "item_key", value: "mutual-funds", valid: true},
		{name: "uuid_key", tag: "item_key", value: "0192f0c4-7d1e-7a3b-9c2d-1e2f3a4b5c6d", valid: true},
		{name: "upper_key", tag: "item_key", value: "Stocks", valid: false},
		{name: "leading_dash_key", tag: "item_key", value: "-gold", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid && err != nil {
				t.Errorf("expected %q to pass %s, got %v", tt.value, tt.tag, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to fail %s", tt.value, tt.tag)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	Register()
	Register()
}
