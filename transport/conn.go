package transport

import (
	"net"
	"sync"

	"github.com/go-mclib/mcserver/crypto"
)

// Conn wraps a net.Conn with an optional, one-way-installable cipher. Every
// Read/Write passes through the cipher once installed; framing composes on
// top of Conn so the frame reader/writer never sees anything but plaintext
// on their side of the interface, while the raw bytes crossing the network
// are enciphered (§4.4 "the cipher wraps the raw bytes").
type Conn struct {
	net.Conn

	mu         sync.Mutex
	encryption *crypto.Encryption
}

// NewConn wraps conn with encryption disabled.
func NewConn(conn net.Conn) *Conn {
	return &Conn{Conn: conn, encryption: crypto.NewEncryption()}
}

// InstallCipher enables AES-128/CFB-8 with the given shared secret (used as
// both key and IV, per §4.4). Installation is irreversible for the
// lifetime of the connection; calling it twice is a programmer error.
func (c *Conn) InstallCipher(sharedSecret []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.encryption.IsEnabled() {
		panic("transport: cipher already installed on this connection")
	}
	c.encryption.SetSharedSecret(sharedSecret)
	return c.encryption.EnableEncryption()
}

// Read implements io.Reader, decrypting in place when the cipher is installed.
func (c *Conn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 && c.encryption.IsEnabled() {
		copy(p[:n], c.encryption.Decrypt(p[:n]))
	}
	return n, err
}

// Write implements io.Writer, encrypting before the underlying socket sees
// the bytes when the cipher is installed.
func (c *Conn) Write(p []byte) (int, error) {
	data := p
	if c.encryption.IsEnabled() {
		data = c.encryption.Encrypt(p)
	}
	n, err := c.Conn.Write(data)
	if err != nil && n > len(p) {
		n = len(p)
	}
	return n, err
}
