package account

import "errors"

// URLs mà error signals tham chiếu tới (continuation targets)
const (
	LoginURL   = "/users/login"
	ProfileURL = "/users/profile"
)

// Repository-level errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New(msgUsernameTaken)
)

// Service-level errors
var (
	// ErrInvalidCredentials là failure DUY NHẤT mà authenticate expose
	// ra ngoài - unknown username và wrong password không phân biệt được
	// từ response
	ErrInvalidCredentials = errors.New(msgBadCredentials)
)

// AuthRequiredError báo operation cần authenticated session
// Next là resource gốc được request - caller redirect về login rồi
// quay lại Next sau khi đăng nhập
type AuthRequiredError struct {
	Next string
}

func (e *AuthRequiredError) Error() string {
	return "login required"
}

// RedirectTo là login URL kèm continuation (dạng ?next=<resource>)
func (e *AuthRequiredError) RedirectTo() string {
	return LoginURL + "?next=" + e.Next
}
