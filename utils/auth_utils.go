package utils

import (
	"github.com/gin-gonic/gin"
)

// Subject kinds carried in the token's user_type claim.
const (
	UserTypeCitizen   = "citizen"
	UserTypeAuthority = "authority"
)

type UserClaims struct {
	UserID   uint   `json:"user_id"`
	UserType string `json:"user_type"`
}

func (u *UserClaims) IsCitizen() bool   { return u.UserType == UserTypeCitizen }
func (u *UserClaims) IsAuthority() bool { return u.UserType == UserTypeAuthority }

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
