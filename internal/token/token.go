package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned when a token has expired.
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenInvalid is returned for malformed tokens and bad signatures.
var ErrTokenInvalid = errors.New("invalid token")

// Claims defines the custom JWT claims structure.
type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Config holds the signing secrets and lifetimes. Access and refresh tokens
// are signed with distinct secrets so compromising one does not compromise
// the other.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Manager issues and verifies the two token kinds. Tokens are stateless:
// validity is entirely a function of signature and expiry.
type Manager interface {
	IssueAccessToken(userID uint) (string, error)
	IssueRefreshToken(userID uint) (string, error)
	VerifyAccessToken(tokenString string) (uint, error)
	VerifyRefreshToken(tokenString string) (uint, error)
}

// NewManager creates a Manager with the given secrets and lifetimes.
func NewManager(cfg Config) Manager {
	return &manager{cfg: cfg}
}

type manager struct {
	cfg Config
}

func (m *manager) IssueAccessToken(userID uint) (string, error) {
	return m.sign(userID, m.cfg.AccessSecret, m.cfg.AccessTTL)
}

func (m *manager) IssueRefreshToken(userID uint) (string, error) {
	return m.sign(userID, m.cfg.RefreshSecret, m.cfg.RefreshTTL)
}

func (m *manager) VerifyAccessToken(tokenString string) (uint, error) {
	return m.verify(tokenString, m.cfg.AccessSecret)
}

func (m *manager) VerifyRefreshToken(tokenString string) (uint, error) {
	return m.verify(tokenString, m.cfg.RefreshSecret)
}

func (m *manager) sign(userID uint, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (m *manager) verify(tokenString, secret string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
