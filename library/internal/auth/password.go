package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(encoded, password string) (bool, error)
}

// Params are the Argon2id cost parameters.
type Params struct {
	Time    uint32 `envconfig:"ARGON2_TIME" default:"2"`
	Memory  uint32 `envconfig:"ARGON2_MEMORY" default:"19456"` // KiB
	Threads uint8  `envconfig:"ARGON2_THREADS" default:"1"`
	SaltLen uint32 `envconfig:"ARGON2_SALT_LEN" default:"16"`
	KeyLen  uint32 `envconfig:"ARGON2_KEY_LEN" default:"32"`
}

var DefaultParams = Params{Time: 2, Memory: 19456, Threads: 1, SaltLen: 16, KeyLen: 32}

var ErrMalformedHash = errors.New("malformed argon2id hash")

type argon2Hasher struct {
	params Params
}

func NewArgon2Hasher(params Params) Hasher {
	return &argon2Hasher{params: params}
}

// Hash returns the PHC string $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "read salt")
	}
	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Compare recomputes the key with the parameters stored in encoded and compares in constant time.
func (h *argon2Hasher) Compare(encoded, password string) (bool, error) {
	p, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}
	other := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decodeHash(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, ErrMalformedHash
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, ErrMalformedHash
	}
	return p, salt, key, nil
}
