package crypto

// https://minecraft.wiki/w/Protocol_encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Encryption is the server side of the AES-128/CFB-8 exchange: the shared
// secret always arrives already decrypted (via ServerKeyPair.Decrypt, from
// the client's RSA-encrypted EncryptionResponse), so unlike a client this
// side never generates a shared secret of its own or encrypts anything
// with a peer's public key.
type Encryption struct {
	encryptStream cipher.Stream
	decryptStream cipher.Stream
	sharedSecret  []byte
}

func NewEncryption() *Encryption {
	return &Encryption{}
}

func (e *Encryption) SetSharedSecret(secret []byte) {
	e.sharedSecret = secret
}

func (e *Encryption) EnableEncryption() error {
	if e.sharedSecret == nil {
		return fmt.Errorf("shared secret not set")
	}

	block, err := aes.NewCipher(e.sharedSecret)
	if err != nil {
		return fmt.Errorf("failed to create AES cipher: %w", err)
	}

	e.encryptStream = NewEncryptStream(block, e.sharedSecret)
	e.decryptStream = NewDecryptStream(block, e.sharedSecret)

	return nil
}

func (e *Encryption) Encrypt(data []byte) []byte {
	if e.encryptStream == nil {
		return data
	}
	encrypted := make([]byte, len(data))
	e.encryptStream.XORKeyStream(encrypted, data)
	return encrypted
}

func (e *Encryption) Decrypt(data []byte) []byte {
	if e.decryptStream == nil {
		return data
	}
	decrypted := make([]byte, len(data))
	e.decryptStream.XORKeyStream(decrypted, data)
	return decrypted
}

func (e *Encryption) IsEnabled() bool {
	return e.encryptStream != nil && e.decryptStream != nil
}
