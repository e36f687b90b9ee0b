package crypto_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/go-mclib/mcserver/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateServerKeyPairDecryptsClientCiphertext(t *testing.T) {
	kp, err := crypto.GenerateServerKeyPair()
	require.NoError(t, err)
	require.NotEmpty(t, kp.SPKI)

	plaintext := []byte("0123456789abcdef")
	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, &kp.Private.PublicKey, plaintext)
	require.NoError(t, err)

	decrypted, err := kp.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}
