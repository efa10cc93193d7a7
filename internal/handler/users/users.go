package users

import (
	"crypto-wallet/internal/service"
)

var (
	getAccount        = service.GetAccount
	updateProfile     = service.UpdateProfile
	deleteAccount     = service.DeleteAccount
	revokeAccessToken = service.RevokeAccessToken
)
