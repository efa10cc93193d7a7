// File: internal/service/errors.go
package service

import "errors"

var (
	// ErrConflict email 已被註冊
	ErrConflict = errors.New("email already registered")
	// ErrAuthentication email 不存在或密碼錯誤，兩者對外不可區分
	ErrAuthentication = errors.New("invalid credentials")
	// ErrLoginLocked 連續登入失敗次數過多，暫時鎖定
	ErrLoginLocked = errors.New("too many failed login attempts, please retry later")
	// ErrNotFound 使用者不存在
	ErrNotFound = errors.New("user not found")
)

// ValidationError 欄位缺漏或格式錯誤
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
