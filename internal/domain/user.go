package domain

type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleExpert UserRole = "expert"
	UserRoleAdmin  UserRole = "admin"
)

// Principal описывает пользователя из access-токена.
type Principal struct {
	UserID int64
	Role   UserRole
}
