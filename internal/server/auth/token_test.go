package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/KarloJair/charlore-api/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_EncodeDecode_Success(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("super-secret"), time.Hour)

	tok, err := c.Encode("alice", 42)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	identity, err := c.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if identity.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", identity.Username, "alice")
	}
	if identity.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want %d", identity.UserID, 42)
	}
}

func TestCodec_Decode_Expired(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), -1*time.Second)

	tok, err := c.Encode("alice", 1)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = c.Decode(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_Decode_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec([]byte("right-secret"), time.Hour).Encode("bob", 2)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = NewCodec([]byte("wrong-secret"), time.Hour).Decode(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestCodec_Decode_Malformed(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("k"), time.Hour)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := c.Decode(tok); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("expected common.ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestCodec_Decode_Tampered(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), time.Hour)

	tok, err := c.Encode("alice", 7)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	// flip one byte at a few positions across header, payload and signature
	for _, pos := range []int{0, len(tok) / 3, len(tok) / 2, len(tok) - 1} {
		b := []byte(tok)
		if b[pos] == 'A' {
			b[pos] = 'B'
		} else {
			b[pos] = 'A'
		}
		if _, err := c.Decode(string(b)); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("expected common.ErrInvalidToken for byte %d tampered, got %v", pos, err)
		}
	}
}

func TestCodec_Decode_MissingClaims(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	c := NewCodec(secret, time.Hour)

	sign := func(claims Claims) string {
		t.Helper()
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			t.Fatalf("signing test token: %v", err)
		}
		return tok
	}

	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	noSubject := sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
		UserID:           9,
	})
	if _, err := c.Decode(noSubject); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for missing subject, got %v", err)
	}

	noUserID := sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp},
	})
	if _, err := c.Decode(noUserID); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for missing user id, got %v", err)
	}
}

func TestCodec_Decode_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), time.Hour)

	// alg=none tokens must never validate
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 1,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := c.Decode(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for alg=none, got %v", err)
	}
}
