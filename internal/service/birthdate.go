// File: internal/service/birthdate.go
package service

import (
	"strings"
	"time"
)

// BirthDateLayout 生日欄位格式 (ISO 8601 date)
const BirthDateLayout = "2006-01-02"

// AdultAge 註冊與修改生日時要求的最低年齡
const AdultAge = 18

// ParseBirthDate 解析 YYYY-MM-DD，回傳 UTC 零時
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalid("birth_date", "is required")
	}
	t, err := time.Parse(BirthDateLayout, s)
	if err != nil {
		return time.Time{}, invalid("birth_date", "must be in YYYY-MM-DD format")
	}
	return t, nil
}

// EnsureIsAdult 以 now 的日曆日期計算足歲
func EnsureIsAdult(birth, now time.Time) error {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if birth.After(today) {
		return invalid("birth_date", "cannot be in the future")
	}

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	if age < AdultAge {
		return invalid("birth_date", "user must be at least 18 years old")
	}
	return nil
}
