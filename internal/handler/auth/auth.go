// File: internal/handler/auth/auth.go
package auth

import (
	"crypto-wallet/internal/service"
	"crypto-wallet/internal/store"
)

var (
	registerUser      = service.RegisterUser
	loginUser         = service.LoginUser
	issueAccessToken  = service.IssueAccessToken
	revokeAccessToken = service.RevokeAccessToken
	touchLastLogin    = store.TouchLastLogin
)
