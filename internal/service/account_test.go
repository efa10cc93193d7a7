package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"crypto-wallet/internal/database"
	"crypto-wallet/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// memUsers 以記憶體模擬 users 表，email 唯一
type memUsers struct {
	byID   map[int]*model.User
	nextID int
}

func installMemUsers(t *testing.T) *memUsers {
	t.Helper()
	t.Cleanup(restoreGlobals)
	m := &memUsers{byID: map[int]*model.User{}, nextID: 1}
	timeNow = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	hashPassword = func(p string) (string, error) {
		h, err := bcryptGenerateFromPassword([]byte(p), 4)
		return string(h), err
	}
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		for _, existing := range m.byID {
			if existing.Email == u.Email {
				return nil, fmt.Errorf("CreateUser: %w", &pgconn.PgError{
					Code:           pgerrcode.UniqueViolation,
					ConstraintName: "users_email_key",
				})
			}
		}
		cp := *u
		cp.ID = m.nextID
		m.nextID++
		m.byID[cp.ID] = &cp
		return &cp, nil
	}
	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		for _, u := range m.byID {
			if u.Email == email {
				cp := *u
				return &cp, nil
			}
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", pgx.ErrNoRows)
	}
	getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
		u, ok := m.byID[id]
		if !ok {
			return nil, fmt.Errorf("GetUserByID: %w", pgx.ErrNoRows)
		}
		cp := *u
		return &cp, nil
	}
	updateUser = func(_ context.Context, _ database.DB, u *model.User) error {
		if _, ok := m.byID[u.ID]; !ok {
			return fmt.Errorf("UpdateUser: %w", pgx.ErrNoRows)
		}
		cp := *u
		m.byID[u.ID] = &cp
		return nil
	}
	deleteUser = func(_ context.Context, _ database.DB, id int) error {
		if _, ok := m.byID[id]; !ok {
			return fmt.Errorf("DeleteUser: %w", pgx.ErrNoRows)
		}
		delete(m.byID, id)
		return nil
	}
	return m
}

func exampleInput() RegisterInput {
	return RegisterInput{
		Email:     "user@example.com",
		Password:  "StrongPass123",
		FirstName: "Ivan",
		LastName:  "Petrov",
		BirthDate: "1990-05-10",
		Region:    "Moscow Oblast",
		City:      "Moscow",
	}
}

func TestRegisterUserOnce(t *testing.T) {
	m := installMemUsers(t)
	ctx := context.Background()

	in := exampleInput()
	in.Email = "  User@Example.COM "
	u, err := RegisterUser(ctx, nil, in)
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.NotEqual(t, "StrongPass123", u.PasswordHash)
	require.Equal(t, time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC), u.BirthDate)
	require.Equal(t, "Moscow", u.City)

	_, err = RegisterUser(ctx, nil, exampleInput())
	require.ErrorIs(t, err, ErrConflict)
	require.Len(t, m.byID, 1)
}

func TestRegisterUserValidation(t *testing.T) {
	installMemUsers(t)
	cases := map[string]func(*RegisterInput){
		"missing email":      func(in *RegisterInput) { in.Email = "" },
		"bad email":          func(in *RegisterInput) { in.Email = "not-an-email" },
		"display name email": func(in *RegisterInput) { in.Email = "Ivan <user@example.com>" },
		"short password":     func(in *RegisterInput) { in.Password = "short" },
		"long password":      func(in *RegisterInput) { in.Password = strings.Repeat("a", 73) },
		"multibyte password": func(in *RegisterInput) { in.Password = strings.Repeat("é", 37) },
		"missing first name": func(in *RegisterInput) { in.FirstName = "  " },
		"missing last name":  func(in *RegisterInput) { in.LastName = "" },
		"long region":        func(in *RegisterInput) { in.Region = string(make([]byte, 101)) },
		"missing city":       func(in *RegisterInput) { in.City = "" },
		"missing birth date": func(in *RegisterInput) { in.BirthDate = "" },
		"bad birth date":     func(in *RegisterInput) { in.BirthDate = "10/05/1990" },
		"minor":              func(in *RegisterInput) { in.BirthDate = "2010-01-01" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := exampleInput()
			mutate(&in)
			_, err := RegisterUser(context.Background(), nil, in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestRegisterUserStoreErrors(t *testing.T) {
	installMemUsers(t)
	hashPassword = func(string) (string, error) { return "", errors.New("hash") }
	_, err := RegisterUser(context.Background(), nil, exampleInput())
	require.ErrorContains(t, err, "hash")

	hashPassword = func(string) (string, error) { return "h", nil }
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err = RegisterUser(context.Background(), nil, exampleInput())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrConflict)

	// 非 email 的 unique violation 不視為 conflict
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_pkey", Message: "duplicate key"}
	}
	_, err = RegisterUser(context.Background(), nil, exampleInput())
	require.NotErrorIs(t, err, ErrConflict)
}

func TestLoginUser(t *testing.T) {
	installMemUsers(t)
	ctx := context.Background()
	_, err := RegisterUser(ctx, nil, exampleInput())
	require.NoError(t, err)

	u, err := LoginUser(ctx, nil, nil, "USER@example.com", "StrongPass123")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", u.Email)

	_, err = LoginUser(ctx, nil, nil, "user@example.com", "WrongPass123")
	require.ErrorIs(t, err, ErrAuthentication)

	_, err = LoginUser(ctx, nil, nil, "nobody@example.com", "StrongPass123")
	require.ErrorIs(t, err, ErrAuthentication)

	_, err = LoginUser(ctx, nil, nil, "", "")
	require.ErrorIs(t, err, ErrAuthentication)

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err = LoginUser(ctx, nil, nil, "user@example.com", "StrongPass123")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrAuthentication)
}

func TestLoginUserLockout(t *testing.T) {
	installMemUsers(t)
	ctx := context.Background()
	_, err := RegisterUser(ctx, nil, exampleInput())
	require.NoError(t, err)

	c, data := newMemCache()
	limiter := NewLoginLimiter(c, 3, time.Minute)

	// 失敗後成功會清除計數
	_, err = LoginUser(ctx, nil, limiter, "user@example.com", "bad-password")
	require.ErrorIs(t, err, ErrAuthentication)
	require.Equal(t, "1", data["login_attempts:user@example.com"])
	_, err = LoginUser(ctx, nil, limiter, "user@example.com", "StrongPass123")
	require.NoError(t, err)
	require.Empty(t, data)

	for i := 0; i < 3; i++ {
		_, err = LoginUser(ctx, nil, limiter, "user@example.com", "bad-password")
		require.ErrorIs(t, err, ErrAuthentication)
	}
	_, err = LoginUser(ctx, nil, limiter, "user@example.com", "StrongPass123")
	require.ErrorIs(t, err, ErrLoginLocked)

	// 不存在的 email 也計數
	_, err = LoginUser(ctx, nil, limiter, "ghost@example.com", "x")
	require.ErrorIs(t, err, ErrAuthentication)
	require.Equal(t, "1", data["login_attempts:ghost@example.com"])
}

func TestUpdateProfile(t *testing.T) {
	installMemUsers(t)
	ctx := context.Background()
	u, err := RegisterUser(ctx, nil, exampleInput())
	require.NoError(t, err)

	city := "Kazan"
	region := "Tatarstan"
	birth := "1985-01-31"
	pw := "AnotherPass456"
	updated, err := UpdateProfile(ctx, nil, u.ID, ProfileUpdate{City: &city, Region: &region, BirthDate: &birth, Password: &pw})
	require.NoError(t, err)
	require.Equal(t, "Kazan", updated.City)
	require.Equal(t, "Tatarstan", updated.Region)
	require.Equal(t, "Ivan", updated.FirstName)
	require.Equal(t, 1985, updated.BirthDate.Year())

	_, err = LoginUser(ctx, nil, nil, "user@example.com", "AnotherPass456")
	require.NoError(t, err)

	empty := " "
	_, err = UpdateProfile(ctx, nil, u.ID, ProfileUpdate{FirstName: &empty})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	minor := "2015-06-01"
	_, err = UpdateProfile(ctx, nil, u.ID, ProfileUpdate{BirthDate: &minor})
	require.ErrorAs(t, err, &verr)

	short := "abc"
	_, err = UpdateProfile(ctx, nil, u.ID, ProfileUpdate{Password: &short})
	require.ErrorAs(t, err, &verr)

	_, err = UpdateProfile(ctx, nil, 999, ProfileUpdate{City: &city})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetAndDeleteAccount(t *testing.T) {
	installMemUsers(t)
	ctx := context.Background()
	u, err := RegisterUser(ctx, nil, exampleInput())
	require.NoError(t, err)

	got, err := GetAccount(ctx, nil, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)

	require.NoError(t, DeleteAccount(ctx, nil, u.ID))
	require.ErrorIs(t, DeleteAccount(ctx, nil, u.ID), ErrNotFound)
	_, err = GetAccount(ctx, nil, u.ID)
	require.ErrorIs(t, err, ErrNotFound)

	deleteUser = func(context.Context, database.DB, int) error { return errors.New("db down") }
	require.Error(t, DeleteAccount(ctx, nil, 1))
	getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, errors.New("db down") }
	_, err = GetAccount(ctx, nil, 1)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestPasswordByteLimit(t *testing.T) {
	installMemUsers(t)
	ctx := context.Background()

	in := exampleInput()
	in.Password = strings.Repeat("a", MaxPasswordBytes)
	u, err := RegisterUser(ctx, nil, in)
	require.NoError(t, err)

	long := strings.Repeat("a", MaxPasswordBytes+1)
	in = exampleInput()
	in.Email = "other@example.com"
	in.Password = long
	_, err = RegisterUser(ctx, nil, in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "password", verr.Field)

	_, err = UpdateProfile(ctx, nil, u.ID, ProfileUpdate{Password: &long})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "password", verr.Field)
}

func TestLoginUserUnknownEmailRunsBcrypt(t *testing.T) {
	installMemUsers(t)
	ctx := context.Background()
	_, err := RegisterUser(ctx, nil, exampleInput())
	require.NoError(t, err)

	compares := 0
	compare := bcryptCompareHashAndPassword
	bcryptCompareHashAndPassword = func(hash, password []byte) error {
		compares++
		return compare(hash, password)
	}

	_, err = LoginUser(ctx, nil, nil, "nobody@example.com", "StrongPass123")
	require.ErrorIs(t, err, ErrAuthentication)
	require.Equal(t, 1, compares)

	_, err = LoginUser(ctx, nil, nil, "user@example.com", "WrongPass123")
	require.ErrorIs(t, err, ErrAuthentication)
	require.Equal(t, 2, compares)
}

func TestUpdateProfileSingleWrite(t *testing.T) {
	m := installMemUsers(t)
	ctx := context.Background()
	u, err := RegisterUser(ctx, nil, exampleInput())
	require.NoError(t, err)
	oldHash := m.byID[u.ID].PasswordHash

	writes := 0
	update := updateUser
	updateUser = func(ctx context.Context, db database.DB, usr *model.User) error {
		writes++
		require.NotEqual(t, oldHash, usr.PasswordHash)
		require.Equal(t, "Kazan", usr.City)
		return update(ctx, db, usr)
	}
	city, pw := "Kazan", "AnotherPass456"
	_, err = UpdateProfile(ctx, nil, u.ID, ProfileUpdate{City: &city, Password: &pw})
	require.NoError(t, err)
	require.Equal(t, 1, writes)
	require.NoError(t, ComparePassword(m.byID[u.ID].PasswordHash, pw))

	// 寫入失敗時資料完全不變
	updateUser = func(context.Context, database.DB, *model.User) error { return errors.New("db down") }
	other, pw2 := "Omsk", "ThirdPass789"
	_, err = UpdateProfile(ctx, nil, u.ID, ProfileUpdate{City: &other, Password: &pw2})
	require.Error(t, err)
	require.Equal(t, "Kazan", m.byID[u.ID].City)
	require.NoError(t, ComparePassword(m.byID[u.ID].PasswordHash, pw))
}
