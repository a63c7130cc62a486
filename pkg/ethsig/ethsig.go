// Package ethsig проверяет подписи personal_sign (EIP-191), которыми кошелек подтверждает вход.
package ethsig

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lucky_wheel/pkg/address"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const signatureLen = 65

var ErrInvalidSignature = errors.New("invalid signature")

// TextHash хэш сообщения с префиксом "\x19Ethereum Signed Message:\n<len>"
func TextHash(msg []byte) []byte {
	prefix := "\x19Ethereum Signed Message:\n" + strconv.Itoa(len(msg))
	return address.Keccak256([]byte(prefix), msg)
}

// Recover возвращает checksum-адрес, которым подписано сообщение.
// Подпись в формате r || s || v, v = 0/1 или 27/28
func Recover(msg, sig []byte) (string, error) {
	if len(sig) != signatureLen {
		return "", ErrInvalidSignature
	}

	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return "", ErrInvalidSignature
	}

	// decred ждет формат v || r || s, где v = 27 + recid для несжатого ключа
	compact := make([]byte, signatureLen)
	compact[0] = 27 + v
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, TextHash(msg))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	return address.FromPublicKey(pub.SerializeUncompressed())
}

// Sign подписывает сообщение так же, как это делает кошелек
func Sign(msg []byte, key *secp256k1.PrivateKey) []byte {
	compact := ecdsa.SignCompact(key, TextHash(msg), false)

	sig := make([]byte, signatureLen)
	copy(sig, compact[1:])
	sig[64] = compact[0]
	return sig
}

// AddressOf адрес, соответствующий приватному ключу
func AddressOf(key *secp256k1.PrivateKey) string {
	addr, _ := address.FromPublicKey(key.PubKey().SerializeUncompressed())
	return addr
}

// DecodeHex разбирает подпись в hex, с префиксом 0x или без
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return b, nil
}
