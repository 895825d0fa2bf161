// Package fieldcrypt шифрует отдельные чувствительные поля (номер карты, CVV)
// перед записью в обычную текстовую колонку БД.
package fieldcrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// keyLen — длина ключа для AES‑256 (в байтах).
const keyLen = 32

// derivationLabel отделяет ключ шифрования полей от ключа подписи токенов,
// выведенных из одного и того же серверного секрета.
const derivationLabel = "vaultbox/field-key/v1"

// ErrDecryptFailed возвращается при любой некорректной записи: неверный
// разделитель, битый hex, неправильная длина IV или блока, ошибка паддинга.
var ErrDecryptFailed = errors.New("fieldcrypt: decryption failed")

// Cipher — процесс-широкий шифратор полей. Ключ выводится один раз и
// неизменяем, поэтому безопасен для конкурентного использования.
type Cipher struct {
	key []byte
}

// New выводит ключ AES-256 из серверного секрета через scrypt.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("fieldcrypt: empty secret")
	}
	key, err := scrypt.Key([]byte(secret), []byte(derivationLabel), 1<<15, 8, 1, keyLen)
	if err != nil {
		return nil, err
	}
	return &Cipher{key: key}, nil
}

// Encrypt шифрует plaintext в запись вида "hex(iv):hex(ciphertext)".
// IV генерируется заново на каждый вызов, поэтому одинаковые plaintext
// дают разные записи.
func (c *Cipher) Encrypt(plain string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}
	padded := pad([]byte(plain))
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ct), nil
}

// Decrypt разбирает запись "hex(iv):hex(ciphertext)" и возвращает исходный
// plaintext. Любая деформация записи схлопывается в ErrDecryptFailed, чтобы
// вызывающий код (например, листинг карт) мог пометить одну битую запись,
// не роняя весь список.
func (c *Cipher) Decrypt(record string) (string, error) {
	sep := strings.IndexByte(record, ':')
	if sep < 0 {
		return "", ErrDecryptFailed
	}
	iv, err := hex.DecodeString(record[:sep])
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrDecryptFailed
	}
	ct, err := hex.DecodeString(record[sep+1:])
	if err != nil || len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", ErrDecryptFailed
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", ErrDecryptFailed
	}
	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)
	out, err := unpad(plain)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(out), nil
}

// pad дополняет данные до границы блока по PKCS#7.
func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, errors.New("empty input")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, errors.New("invalid padding")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errors.New("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}
