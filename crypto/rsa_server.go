package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
)

// ServerKeyPair holds the RSA keypair a server generates once at startup
// for the login-phase key exchange (§4.5 step 3).
type ServerKeyPair struct {
	Private *rsa.PrivateKey
	SPKI    []byte // DER-encoded SubjectPublicKeyInfo, sent in Encryption Request
}

// GenerateServerKeyPair generates a fresh 1024-bit RSA keypair, matching
// the size real Minecraft servers use for this exchange.
func GenerateServerKeyPair() (*ServerKeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keypair: %w", err)
	}
	spki, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode public key: %w", err)
	}
	return &ServerKeyPair{Private: priv, SPKI: spki}, nil
}

// Decrypt reverses the client's RSA PKCS1v15 encryption of the shared
// secret and verify token.
func (k *ServerKeyPair) Decrypt(ciphertext []byte) ([]byte, error) {
	out, err := rsa.DecryptPKCS1v15(rand.Reader, k.Private, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt with server private key: %w", err)
	}
	return out, nil
}
