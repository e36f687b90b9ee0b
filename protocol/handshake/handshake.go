// Package handshake defines the single Handshake-phase packet: the intent
// declaration a client sends immediately after opening the TCP connection,
// selecting whether the server should switch into Status or Login.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Handshake
package handshake

import (
	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/wire"
)

// NextState values carried in Handshake.NextState.
const (
	NextStateStatus wire.VarInt = iota + 1
	NextStateLogin
)

// Handshake is Serverbound 0x00.
type Handshake struct {
	ProtocolVersion wire.VarInt
	ServerAddress   wire.String
	ServerPort      wire.UnsignedShort
	NextState       wire.VarInt
}

func (h *Handshake) ToBytes() (wire.ByteArray, error)         { return codec.EncodeRecord(h) }
func (h *Handshake) FromBytes(data wire.ByteArray) (int, error) { return codec.DecodeRecord(data, h) }
func (h *Handshake) PacketID() wire.VarInt                    { return 0x00 }

// Serverbound is the single-entry dispatch table for the Handshake phase.
var Serverbound = codec.NewTable("handshake.serverbound")

func init() {
	Serverbound.Register(0x00, func() codec.Packet { return &Handshake{} })
}
