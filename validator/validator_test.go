package validator

import (
	"testing"

	"biztrack/constants"
	"biztrack/models"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
		Role:     constants.RoleUser,
	}

	t.Run("user hợp lệ", func(t *testing.T) {
		if err := ValidateUser(&valid); err != nil {
			t.Errorf("ValidateUser = %v, want nil", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(u *models.User)
	}{
		{"thiếu tên", func(u *models.User) { u.Name = "" }},
		{"thiếu email", func(u *models.User) { u.Email = "" }},
		{"email sai định dạng", func(u *models.User) { u.Email = "not-an-email" }},
		{"mật khẩu quá ngắn", func(u *models.User) { u.Password = "abc" }},
		{"role không hợp lệ", func(u *models.User) { u.Role = "superuser" }},
		{"target âm", func(u *models.User) { u.TargetMoney = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			if err := ValidateUser(&u); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Review     float64 `validate:"gte=0,lte=5"`
		SpentMoney float64 `validate:"gte=0"`
	}

	if err := ValidateStruct(&payload{Review: 4.5, SpentMoney: 100}); err != nil {
		t.Errorf("valid payload: %v", err)
	}
	if err := ValidateStruct(&payload{Review: 5.5}); err == nil {
		t.Error("review above range must be rejected")
	}
	if err := ValidateStruct(&payload{SpentMoney: -1}); err == nil {
		t.Error("negative spent money must be rejected")
	}
}

func TestValidateRole(t *testing.T) {
	if err := ValidateRole(constants.RoleAdmin); err != nil {
		t.Errorf("admin: %v", err)
	}
	if err := ValidateRole(constants.RoleUser); err != nil {
		t.Errorf("user: %v", err)
	}
	if err := ValidateRole("root"); err == nil {
		t.Error("unknown role must be rejected")
	}
}

func TestValidateBidNumber(t *testing.T) {
	if err := ValidateBidNumber(1); err != nil {
		t.Errorf("positive: %v", err)
	}
	for _, n := range []int{0, -3} {
		if err := ValidateBidNumber(n); err == nil {
			t.Errorf("ValidateBidNumber(%d) must fail", n)
		}
	}
}

func TestValidateUpworkStatus(t *testing.T) {
	for _, status := range constants.UpworkBidStatuses {
		if err := ValidateUpworkStatus(status); err != nil {
			t.Errorf("%s: %v", status, err)
		}
	}
	if err := ValidateUpworkStatus("won"); err == nil {
		t.Error("unknown status must be rejected")
	}
}

func TestValidateWorkingHours(t *testing.T) {
	for _, h := range []float64{0.5, 8, 24} {
		if err := ValidateWorkingHours(h); err != nil {
			t.Errorf("ValidateWorkingHours(%v) = %v", h, err)
		}
	}
	for _, h := range []float64{0, -1, 24.5} {
		if err := ValidateWorkingHours(h); err == nil {
			t.Errorf("ValidateWorkingHours(%v) must fail", h)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-19")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 8 || d.Day() != 19 {
		t.Errorf("parsed = %v", d)
	}

	for _, input := range []string{"19/08/2026", "2026-13-01", "yesterday", ""} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) must fail", input)
		}
	}
}
