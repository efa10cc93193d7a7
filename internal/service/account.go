// File: internal/service/account.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"crypto-wallet/internal/database"
	"crypto-wallet/internal/model"
	"crypto-wallet/internal/store"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MaxNameLength 姓名、地區、城市欄位長度上限
const MaxNameLength = 100

var (
	hashPassword   = HashPassword
	createUser     = store.CreateUser
	getUserByID    = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	updateUser     = store.UpdateUser
	deleteUser     = store.DeleteUser
)

// RegisterInput 註冊所需的七個欄位，BirthDate 為 YYYY-MM-DD 字串
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	BirthDate string
	Region    string
	City      string
}

// ProfileUpdate 部分更新，nil 欄位保持不變
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	BirthDate *string
	Region    *string
	City      *string
	Password  *string
}

// NormalizeEmail 去除空白並轉小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", "invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	if len(password) > MaxPasswordBytes {
		return invalid("password", fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}
	return nil
}

// validateText 必填文字欄位：去除空白後 1..MaxNameLength 字元
func validateText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid(field, "is required")
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return "", invalid(field, fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	return value, nil
}

func parseAdultBirthDate(s string) (time.Time, error) {
	birth, err := ParseBirthDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if err := EnsureIsAdult(birth, timeNow()); err != nil {
		return time.Time{}, err
	}
	return birth, nil
}

// mapDuplicateErr 將 users_email_key 的 unique violation 轉為 ErrConflict
func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		if cn == "" || strings.Contains(cn, "email") || strings.Contains(strings.ToLower(pgErr.Message), "email") {
			return ErrConflict
		}
	}
	return nil
}

// RegisterUser 驗證輸入、雜湊密碼並建立使用者
func RegisterUser(ctx context.Context, db database.DB, in RegisterInput) (*model.User, error) {
	email := NormalizeEmail(in.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	u := &model.User{Email: email}
	fields := []struct {
		name  string
		value string
		dst   *string
	}{
		{"first_name", in.FirstName, &u.FirstName},
		{"last_name", in.LastName, &u.LastName},
		{"region", in.Region, &u.Region},
		{"city", in.City, &u.City},
	}
	for _, f := range fields {
		v, err := validateText(f.name, f.value)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	birth, err := parseAdultBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	u.BirthDate = birth

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("RegisterUser: hash password: %w", err)
	}
	u.PasswordHash = hash

	created, err := createUser(ctx, db, u)
	if err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}
	return created, nil
}

// LoginUser 驗證帳密；limiter 為 nil 時不做失敗次數限制
// Redis 不可用時限制功能放行，只記錄警告
func LoginUser(ctx context.Context, db database.DB, limiter *LoginLimiter, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrAuthentication
	}

	if limiter != nil {
		locked, err := limiter.Locked(ctx, email)
		if err != nil {
			slog.Warn("login limiter unavailable", "error", err)
		} else if locked {
			return nil, ErrLoginLocked
		}
	}

	fail := func() error {
		if limiter == nil {
			return ErrAuthentication
		}
		n, err := limiter.RecordFailure(ctx, email)
		if err != nil {
			slog.Warn("record login failure", "error", err)
			return ErrAuthentication
		}
		if int(n) >= limiter.MaxAttempts {
			slog.Warn("login locked", "email", email, "attempts", n)
		}
		return ErrAuthentication
	}

	user, err := getUserByEmail(ctx, db, email)
	if errors.Is(err, pgx.ErrNoRows) {
		compareDummy(password)
		return nil, fail()
	}
	if err != nil {
		return nil, fmt.Errorf("LoginUser: %w", err)
	}

	if err := AuthenticateUser(ctx, *user, password); err != nil {
		return nil, fail()
	}

	if limiter != nil {
		if err := limiter.Reset(ctx, email); err != nil {
			slog.Warn("reset login attempts", "error", err)
		}
	}
	return user, nil
}

// GetAccount 以 ID 取得使用者
func GetAccount(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	user, err := getUserByID(ctx, db, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetAccount: %w", err)
	}
	return user, nil
}

// UpdateProfile 套用部分更新，密碼有提供時另外重新雜湊
func UpdateProfile(ctx context.Context, db database.DB, userID int, upd ProfileUpdate) (*model.User, error) {
	user, err := GetAccount(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"first_name", upd.FirstName, &user.FirstName},
		{"last_name", upd.LastName, &user.LastName},
		{"region", upd.Region, &user.Region},
		{"city", upd.City, &user.City},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		v, err := validateText(f.name, *f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	if upd.BirthDate != nil {
		birth, err := parseAdultBirthDate(*upd.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = birth
	}

	if upd.Password != nil {
		if err := validatePassword(*upd.Password); err != nil {
			return nil, err
		}
		if user.PasswordHash, err = hashPassword(*upd.Password); err != nil {
			return nil, fmt.Errorf("UpdateProfile: hash password: %w", err)
		}
	}

	// 個人資料與新密碼雜湊在同一個 UPDATE 寫入
	if err := updateUser(ctx, db, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateProfile: %w", err)
	}
	return user, nil
}

// DeleteAccount 刪除使用者
func DeleteAccount(ctx context.Context, db database.DB, userID int) error {
	err := deleteUser(ctx, db, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("DeleteAccount: %w", err)
	}
	return nil
}
