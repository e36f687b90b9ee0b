// Package login defines the Login-phase packets: username declaration,
// the RSA/shared-secret key exchange, and the three ways a login can
// conclude (Disconnect, LoginSuccess, or a SetCompression handoff into
// Play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login
package login

import (
	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/wire"
)

// LoginStart is Serverbound 0x00.
type LoginStart struct {
	Username wire.String
}

func (p *LoginStart) ToBytes() (wire.ByteArray, error)           { return codec.EncodeRecord(p) }
func (p *LoginStart) FromBytes(data wire.ByteArray) (int, error) { return codec.DecodeRecord(data, p) }
func (p *LoginStart) PacketID() wire.VarInt                      { return 0x00 }

// EncryptionResponse is Serverbound 0x01: the client's RSA-encrypted
// shared secret and verify token.
type EncryptionResponse struct {
	SharedSecretEnc wire.Bytes
	VerifyTokenEnc  wire.Bytes
}

func (p *EncryptionResponse) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *EncryptionResponse) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *EncryptionResponse) PacketID() wire.VarInt { return 0x01 }

// DisconnectJSON is the JSON payload of Disconnect: a chat-component-shaped
// text reason.
type DisconnectJSON struct {
	Text string `json:"text"`
}

// Disconnect is Clientbound 0x00.
type Disconnect struct {
	Reason wire.Json[DisconnectJSON]
}

func (p *Disconnect) ToBytes() (wire.ByteArray, error)           { return codec.EncodeRecord(p) }
func (p *Disconnect) FromBytes(data wire.ByteArray) (int, error) { return codec.DecodeRecord(data, p) }
func (p *Disconnect) PacketID() wire.VarInt                      { return 0x00 }

// EncryptionRequest is Clientbound 0x01: the server's public key (SPKI DER)
// and a random verify token, keyed by an empty-string server ID (online
// mode always uses "").
type EncryptionRequest struct {
	ServerID    wire.String
	PublicKey   wire.Bytes
	VerifyToken wire.Bytes
}

func (p *EncryptionRequest) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *EncryptionRequest) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *EncryptionRequest) PacketID() wire.VarInt { return 0x01 }

// LoginSuccess is Clientbound 0x02: the authenticated player identity.
type LoginSuccess struct {
	UUID     wire.UUID
	Username wire.String
}

func (p *LoginSuccess) ToBytes() (wire.ByteArray, error)           { return codec.EncodeRecord(p) }
func (p *LoginSuccess) FromBytes(data wire.ByteArray) (int, error) { return codec.DecodeRecord(data, p) }
func (p *LoginSuccess) PacketID() wire.VarInt                      { return 0x02 }

// SetCompression is Clientbound 0x03: negotiates the compression threshold
// for all subsequent frames. Present for schema completeness (§5
// supplemented features); the core never sends it since compression stays
// disabled by default.
type SetCompression struct {
	Threshold wire.VarInt
}

func (p *SetCompression) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *SetCompression) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *SetCompression) PacketID() wire.VarInt { return 0x03 }

var (
	Serverbound = codec.NewTable("login.serverbound")
	Clientbound = codec.NewTable("login.clientbound")
)

func init() {
	Serverbound.Register(0x00, func() codec.Packet { return &LoginStart{} })
	Serverbound.Register(0x01, func() codec.Packet { return &EncryptionResponse{} })

	Clientbound.Register(0x00, func() codec.Packet { return &Disconnect{} })
	Clientbound.Register(0x01, func() codec.Packet { return &EncryptionRequest{} })
	Clientbound.Register(0x02, func() codec.Packet { return &LoginSuccess{} })
	Clientbound.Register(0x03, func() codec.Packet { return &SetCompression{} })
}
