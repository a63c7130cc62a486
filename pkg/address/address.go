// Package address проверяет и нормализует Ethereum адреса (EIP-55).
package address

import (
	"encoding/hex"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

var (
	ErrInvalid  = errors.New("malformed address")
	ErrChecksum = errors.New("address checksum mismatch")

	hexAddress = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Keccak256 считает Keccak-256 (не SHA3-256) от склеенных данных
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Normalize проверяет адрес и возвращает его в checksum-записи.
// Адрес в одном регистре принимается как есть, в смешанном - только с верной контрольной суммой
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !hexAddress.MatchString(s) {
		return "", ErrInvalid
	}

	body := s[2:]
	checksummed := Checksum(body)

	lower, upper := strings.ToLower(body), strings.ToUpper(body)
	if body != lower && body != upper && s != checksummed {
		return "", ErrChecksum
	}

	return checksummed, nil
}

// Valid сообщает, прошел бы адрес Normalize
func Valid(s string) bool {
	_, err := Normalize(s)
	return err == nil
}

// Checksum строит EIP-55 запись для 40 hex символов (без 0x)
func Checksum(body string) string {
	lower := strings.ToLower(body)
	hash := Keccak256([]byte(lower))

	out := make([]byte, 0, 42)
	out = append(out, '0', 'x')
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && c <= 'f' && nibble&0x0f >= 8 {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// FromPublicKey выводит адрес из несжатого публичного ключа (65 байт, префикс 0x04)
func FromPublicKey(uncompressed []byte) (string, error) {
	if len(uncompressed) != 65 || uncompressed[0] != 0x04 {
		return "", ErrInvalid
	}
	hash := Keccak256(uncompressed[1:])
	return Checksum(hex.EncodeToString(hash[12:])), nil
}
