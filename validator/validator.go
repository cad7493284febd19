package validator

import (
	"regexp"
	"time"

	"biztrack/constants"
	"biztrack/errors"
	"biztrack/models"

	validate "github.com/go-playground/validator/v10"
)

var structValidator = validate.New()

// ValidateStruct chạy các binding tag trên struct request
func ValidateStruct(s interface{}) error {
	if err := structValidator.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}
	return nil
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name must not be empty", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if user.Role != constants.RoleAdmin && user.Role != constants.RoleUser {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}

	if user.TargetMoney < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Target money must not be negative", nil)
	}

	return nil
}

// ValidateRole kiểm tra role nằm trong tập cho phép
func ValidateRole(role string) error {
	if role != constants.RoleAdmin && role != constants.RoleUser {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role: "+role, nil)
	}
	return nil
}

// ValidateBidNumber kiểm tra số bid trong một lượt gửi
func ValidateBidNumber(bidNumber int) error {
	if bidNumber <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidBidNumber, "Bid number must be positive", nil)
	}
	return nil
}

// ValidateUpworkStatus kiểm tra status nằm trong enum cho phép
func ValidateUpworkStatus(status string) error {
	for _, s := range constants.UpworkBidStatuses {
		if s == status {
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeInvalidBidStatus, "Invalid bid status: "+status, nil)
}

// ValidateWorkingHours kiểm tra số giờ log trong một ngày
func ValidateWorkingHours(hours float64) error {
	if hours <= 0 || hours > 24 {
		return errors.NewAppError(errors.ErrCodeInvalidHours, "Working hours must be between 0 and 24", nil)
	}
	return nil
}

// ValidateAmount validate số tiền
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must not be negative", nil)
	}
	return nil
}

// ParseDate parse ngày dạng YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Invalid date, expected format: YYYY-MM-DD", err)
	}
	return d, nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
