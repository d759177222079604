// Package crypto implements the AES payload envelope used between the
// dashboard and this service. The format is the OpenSSL "Salted__" envelope
// (MD5 EVP key derivation, AES-256-CBC, PKCS7 padding), base64 encoded and
// then URI-component encoded.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"

	"go.uber.org/zap"
)

const saltedPrefix = "Salted__"

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+={0,2}$`)

type Decryptor struct {
	key    []byte
	logger *zap.Logger
}

// NewDecryptor creates a decryptor with the shared passphrase
func NewDecryptor(key string, logger *zap.Logger) *Decryptor {
	return &Decryptor{
		key:    []byte(key),
		logger: logger,
	}
}

// Decrypt decodes and decrypts an encrypted payload. Inputs that do not
// look like recognized ciphertext are returned unchanged: this is a
// defensive fallback so plain-text callers keep working, not a
// confidentiality guarantee.
func (d *Decryptor) Decrypt(data string) string {
	if len(d.key) == 0 {
		d.logger.Error("Encryption key is not configured")
		return ""
	}

	decoded, err := url.QueryUnescape(data)
	if err != nil {
		decoded = data
	}

	if !base64Pattern.MatchString(decoded) {
		d.logger.Warn("Payload is not base64, returning as plain text")
		return data
	}

	raw, err := base64.StdEncoding.DecodeString(decoded)
	if err != nil {
		return data
	}

	plaintext, err := d.decryptOpenSSL(raw)
	if err != nil {
		d.logger.Warn("Payload decryption failed, returning input unchanged", zap.Error(err))
		return data
	}

	return string(plaintext)
}

// Encrypt produces an envelope Decrypt can open. Used by tooling and tests.
func (d *Decryptor) Encrypt(data string) (string, error) {
	if len(d.key) == 0 {
		return "", fmt.Errorf("encryption key is not configured")
	}

	salt := make([]byte, 8)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key, iv := deriveKeyAndIV(d.key, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(data), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	envelope := append([]byte(saltedPrefix), salt...)
	envelope = append(envelope, ciphertext...)

	return url.QueryEscape(base64.StdEncoding.EncodeToString(envelope)), nil
}

func (d *Decryptor) decryptOpenSSL(raw []byte) ([]byte, error) {
	if len(raw) < len(saltedPrefix)+8 || !bytes.HasPrefix(raw, []byte(saltedPrefix)) {
		return nil, fmt.Errorf("missing salted envelope header")
	}

	salt := raw[len(saltedPrefix) : len(saltedPrefix)+8]
	ciphertext := raw[len(saltedPrefix)+8:]

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a block multiple", len(ciphertext))
	}

	key, iv := deriveKeyAndIV(d.key, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	if len(unpadded) == 0 {
		return nil, fmt.Errorf("decryption produced empty plaintext")
	}

	return unpadded, nil
}

// deriveKeyAndIV implements OpenSSL EVP_BytesToKey with MD5 for a 32-byte
// key and 16-byte IV, matching the envelope producer.
func deriveKeyAndIV(passphrase, salt []byte) (key, iv []byte) {
	var derived []byte
	var block []byte
	for len(derived) < 48 {
		h := md5.New()
		h.Write(block)
		h.Write(passphrase)
		h.Write(salt)
		block = h.Sum(nil)
		derived = append(derived, block...)
	}
	return derived[:32], derived[32:48]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", padding)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-padding], nil
}
