package domain

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Username  string    `json:"username" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // bcrypt hash, hidden in JSON responses
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type UserRepository interface {
	Create(user *User) error
	GetByEmail(email string) (*User, error)
	GetByID(id uint) (*User, error)
}

// AuthService covers registration, login and the refresh/me flows. Login
// returns the access token only; the refresh token is handed back separately
// so the handler can decide how to deliver it (cookie).
type AuthService interface {
	Register(req RegisterRequest) (*User, error)
	Login(email, password string) (*LoginResponse, string, error)
	Refresh(refreshToken string) (accessToken, newRefreshToken string, err error)
	GetUserByID(id uint) (*User, error)
}
