// server/internal/auth/auth.go
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/pbkdf2"
)

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	UserID string `json:"userID"`
	jwt.RegisteredClaims
}

// Stored passwords use the passlib pbkdf2_sha256 format so documents written
// by earlier deployments keep verifying:
//
//	$pbkdf2-sha256$<rounds>$<salt>$<checksum>
//
// Salt and checksum are "adapted base64" (standard alphabet with '+' replaced
// by '.', no padding). Anything without the prefix is a legacy plain-text
// password pending migration.
const (
	HashPrefix    = "$pbkdf2-sha256$"
	defaultRounds = 29000
	saltLen       = 16
)

// IsHashed reports whether a stored password is already in hashed form.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, HashPrefix)
}

// HashPassword derives a salted pbkdf2-sha256 hash of password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, defaultRounds, sha256.Size, sha256.New)
	return fmt.Sprintf("%s%d$%s$%s", HashPrefix, defaultRounds, ab64Encode(salt), ab64Encode(key)), nil
}

// CheckPasswordHash verifies password against a stored hash. Malformed hashes
// simply fail verification.
func CheckPasswordHash(password, stored string) bool {
	rest, ok := strings.CutPrefix(stored, HashPrefix)
	if !ok {
		return false
	}
	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return false
	}
	rounds, err := strconv.Atoi(parts[0])
	if err != nil || rounds <= 0 {
		return false
	}
	salt, err := ab64Decode(parts[1])
	if err != nil {
		return false
	}
	want, err := ab64Decode(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, rounds, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func ab64Encode(raw []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(raw), "+", ".")
}

func ab64Decode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}

// JWT Generation
var JwtSecret = []byte("YOUR_SUPER_SECRET_KEY")

// SetJWTSecret overrides the signing secret; called once at startup from config.
func SetJWTSecret(secret string) {
	if secret != "" {
		JwtSecret = []byte(secret)
	}
}

func GenerateJWT(email, role, userID string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &JWTClaims{
		Email:  email,
		Role:   role,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}
