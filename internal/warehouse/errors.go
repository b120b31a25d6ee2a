package warehouse

import "errors"

// Validation errors returned by the mutation gateway. All are raised before
// any event is appended, so a rejected mutation leaves no partial state.
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrCodeNameRequired    = errors.New("item code and name are required")
	ErrBothAttributeGroups = errors.New("item cannot carry both okov and ploce attributes")
	ErrQuantityNotPositive = errors.New("quantity must be positive")
	ErrUnknownPicker       = errors.New("picker is not a known user with an assigned code")
	ErrCodeLength          = errors.New("confirmation code must be exactly 6 characters")
	ErrCodeMismatch        = errors.New("confirmation code does not match the user's assigned code")
	ErrInvalidRole         = errors.New("invalid role")
	ErrEmailTaken          = errors.New("email already in use")
)
