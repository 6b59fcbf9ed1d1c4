package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

// JWTKey signs and verifies HS256 tokens. Overridable via JWT_KEY for
// deployments; the default only matters for local runs and tests.
var JWTKey = []byte(envOr("JWT_KEY", "library-management-secret"))

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewToken issues a signed HS256 token for username with the given role.
func NewToken(username, role string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	claims.Profile.Username = username
	claims.Profile.Role = role

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(JWTKey)
	return s, expiresAt, err
}

type ctxKey int

const (
	userNameKey ctxKey = iota + 1
	userRoleKey
)

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, username)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserName(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}

func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

func IsAdmin(ctx context.Context) bool {
	return UserRole(ctx) == RoleAdmin
}
