package store

import (
	"context"
	"fmt"
	"time"

	"crypto-wallet/internal/database"
	"crypto-wallet/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password_hash, first_name, last_name, birth_date,
		        region, city, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.BirthDate,
		&u.Region,
		&u.City,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail 以小寫 email 查詢，呼叫端需先正規化
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name, birth_date, region, city)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.BirthDate,
		u.Region,
		u.City,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser 以單一語句更新個人資料與密碼雜湊（不含 email），回寫 updated_at
// PasswordHash 為空字串時保留原本的雜湊
func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET first_name = $1, last_name = $2, birth_date = $3, region = $4, city = $5,
		     password_hash = COALESCE(NULLIF($6, ''), password_hash),
		     updated_at = now()
		 WHERE id = $7
		 RETURNING updated_at`,
		u.FirstName,
		u.LastName,
		u.BirthDate,
		u.Region,
		u.City,
		u.PasswordHash,
		u.ID,
	)
	if err := row.Scan(&u.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	return nil
}

func TouchLastLogin(ctx context.Context, db database.DB, userID int, at time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE id = $2`,
		at,
		userID,
	)
	if err != nil {
		return fmt.Errorf("TouchLastLogin: %w", err)
	}
	return nil
}

// DeleteUser 刪除使用者；沒有任何列被刪除時回傳 pgx.ErrNoRows
func DeleteUser(ctx context.Context, db database.DB, ID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", pgx.ErrNoRows)
	}
	return nil
}
