package auth

import (
	"time"

	"github.com/KarloJair/charlore-api/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the registered claims carry the subject
// (username) and expiry, UserID carries the owning user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id"`
}

// Identity is the per-request authenticated identity produced by a
// successfully decoded token. It lives only for the request.
type Identity struct {
	Username string
	UserID   int64
}

// Codec encodes and decodes signed, time-limited access tokens. The secret
// key and TTL are fixed at construction; token verification is a pure
// function of the token bytes and the key, safe for concurrent use.
type Codec struct {
	secretKey []byte
	ttl       time.Duration
}

func NewCodec(secretKey []byte, ttl time.Duration) *Codec {
	return &Codec{secretKey: secretKey, ttl: ttl}
}

// Encode mints an HS256-signed token asserting {sub: username, id: userID}
// that expires after the configured TTL.
func (c *Codec) Encode(username string, userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Decode verifies the signature and expiry of a token and extracts the
// identity it asserts. Every failure mode (malformed token, signature
// mismatch, expiry, missing subject or id) collapses into
// common.ErrInvalidToken so callers cannot leak the payload shape.
func (c *Codec) Decode(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{Username: claims.Subject, UserID: claims.UserID}, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
