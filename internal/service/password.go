// File: internal/service/password.go
package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength 密碼最短長度（字元）
	MinPasswordLength = 8
	// MaxPasswordBytes bcrypt 可處理的密碼長度上限（位元組）
	MaxPasswordBytes = 72
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy 帳號不存在時仍執行一次 bcrypt 比對，讓兩種失敗的回應時間一致
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("crypto-wallet-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcryptCompareHashAndPassword(dummyHash, []byte(password))
}
