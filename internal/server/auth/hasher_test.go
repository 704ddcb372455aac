package auth

import (
	"strings"
	"testing"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	digest, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(digest, "$argon2id$") {
		t.Fatalf("unexpected digest format: %q", digest)
	}
	if strings.Contains(digest, "password123") {
		t.Fatalf("digest contains the plaintext password")
	}

	if !h.Verify("password123", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("password124", digest) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestHasher_Hash_DistinctSalts(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	d1, err := h.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := h.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !h.Verify("samepassword", d1) || !h.Verify("samepassword", d2) {
		t.Fatalf("both digests must verify against the original password")
	}
}

func TestHasher_Verify_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"garbage", "not-a-digest"},
		{"wrong scheme", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$nonsense$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{"bad hash encoding", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if h.Verify("whatever", tc.digest) {
				t.Fatalf("malformed digest must verify as false")
			}
		})
	}
}
