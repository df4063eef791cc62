package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// KeyStore хранит не сами API-ключи, а их HMAC-SHA256 с перцем.
type KeyStore struct {
	pepper  []byte
	digests [][]byte
}

func NewKeyStore(keys []string, pepper string) *KeyStore {
	s := &KeyStore{pepper: []byte(pepper)}
	for _, key := range keys {
		if key == "" {
			continue
		}
		s.digests = append(s.digests, s.digest(key))
	}
	return s
}

// Verify сравнивает со всеми ключами без раннего выхода.
func (s *KeyStore) Verify(key string) bool {
	if key == "" {
		return false
	}

	digest := s.digest(key)
	matched := 0
	for _, known := range s.digests {
		matched |= subtle.ConstantTimeCompare(digest, known)
	}
	return matched == 1
}

func (s *KeyStore) digest(key string) []byte {
	mac := hmac.New(sha256.New, s.pepper)
	mac.Write([]byte(key))
	return mac.Sum(nil)
}

// secretsEqual сравнивает общие секреты через дайджесты, чтобы длина не
// влияла на время сравнения.
func secretsEqual(got, want string) bool {
	if got == "" || want == "" {
		return false
	}
	gotDigest := sha256.Sum256([]byte(got))
	wantDigest := sha256.Sum256([]byte(want))
	return subtle.ConstantTimeCompare(gotDigest[:], wantDigest[:]) == 1
}
