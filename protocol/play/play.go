// Package play defines a representative subset of the Play phase's packet
// vocabulary (§4.3, §6 "Play-phase scope" in SPEC_FULL.md): enough to
// exercise the packet-table registry, the codec engine, and a realistic
// connection lifecycle, without implementing gameplay logic (physics, AI,
// block updates — all explicit Non-goals).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Play
package play

import (
	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/wire"
)

// ChatComponent is the plain-text chat component shape used by the packets
// below; richer component trees (translate, extra, click events, ...) are
// out of scope.
type ChatComponent struct {
	Text string `json:"text"`
}

// ServerboundKeepAlive is Serverbound 0x0F: echoes the ID from the most
// recent ClientboundKeepAlive.
type ServerboundKeepAlive struct {
	KeepAliveID wire.Long
}

func (p *ServerboundKeepAlive) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *ServerboundKeepAlive) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *ServerboundKeepAlive) PacketID() wire.VarInt { return 0x0F }

// ServerboundChatMessage is Serverbound 0x03: a plain chat line, at most
// 256 characters (enforcement left to the handler, not the codec).
type ServerboundChatMessage struct {
	Message wire.String
}

func (p *ServerboundChatMessage) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *ServerboundChatMessage) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *ServerboundChatMessage) PacketID() wire.VarInt { return 0x03 }

// ServerboundPluginMessage is Serverbound 0x0A: a named channel carrying an
// opaque payload to the end of the frame.
type ServerboundPluginMessage struct {
	Channel wire.String
	Data    wire.UnprefixedBytes
}

func (p *ServerboundPluginMessage) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *ServerboundPluginMessage) FromBytes(data wire.ByteArray) (int, error) {
	// UnprefixedBytes consumes the remainder of the frame, so it is decoded
	// by hand with FromBytesSized over everything after the channel.
	var channel wire.String
	n, err := channel.FromBytes(data)
	if err != nil {
		return 0, err
	}
	var payload wire.UnprefixedBytes
	m, err := payload.FromBytesSized(data[n:], -1)
	if err != nil {
		return 0, err
	}
	p.Channel = channel
	p.Data = payload
	return n + m, nil
}
func (p *ServerboundPluginMessage) PacketID() wire.VarInt { return 0x0A }

// ClientboundKeepAlive is Clientbound 0x1E.
type ClientboundKeepAlive struct {
	KeepAliveID wire.Long
}

func (p *ClientboundKeepAlive) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *ClientboundKeepAlive) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *ClientboundKeepAlive) PacketID() wire.VarInt { return 0x1E }

// ClientboundSystemChatMessage is Clientbound 0x0E: a server-originated
// chat line with a position (0 chat, 1 system, 2 game info) and the
// sending entity's UUID (zero UUID for server-originated messages).
type ClientboundSystemChatMessage struct {
	JSONData wire.Json[ChatComponent]
	Position wire.Byte
	Sender   wire.UUID
}

func (p *ClientboundSystemChatMessage) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *ClientboundSystemChatMessage) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *ClientboundSystemChatMessage) PacketID() wire.VarInt { return 0x0E }

// ClientboundPluginMessage is Clientbound 0x18, mirroring its serverbound
// counterpart.
type ClientboundPluginMessage struct {
	Channel wire.String
	Data    wire.UnprefixedBytes
}

func (p *ClientboundPluginMessage) ToBytes() (wire.ByteArray, error) {
	channelBytes, err := p.Channel.ToBytes()
	if err != nil {
		return nil, err
	}
	dataBytes, err := p.Data.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(channelBytes, dataBytes...), nil
}
func (p *ClientboundPluginMessage) FromBytes(data wire.ByteArray) (int, error) {
	var channel wire.String
	n, err := channel.FromBytes(data)
	if err != nil {
		return 0, err
	}
	var payload wire.UnprefixedBytes
	m, err := payload.FromBytesSized(data[n:], -1)
	if err != nil {
		return 0, err
	}
	p.Channel = channel
	p.Data = payload
	return n + m, nil
}
func (p *ClientboundPluginMessage) PacketID() wire.VarInt { return 0x18 }

// ClientboundDisconnect is Clientbound 0x1A: ends the Play-phase
// connection with a chat-component reason.
type ClientboundDisconnect struct {
	Reason wire.Json[ChatComponent]
}

func (p *ClientboundDisconnect) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *ClientboundDisconnect) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *ClientboundDisconnect) PacketID() wire.VarInt { return 0x1A }

// ClientboundJoinGame is Clientbound 0x26: the packet that moves a
// connection from Login into an active Play session. Field set trimmed to
// what a representative implementation needs to round-trip; the full 1.18.1
// shape carries a registry codec and per-dimension NBT this core treats
// opaquely via NbtBlob.
type ClientboundJoinGame struct {
	EntityID            wire.Int
	IsHardcore          wire.Bool
	GameMode            wire.UnsignedByte
	PreviousGameMode    wire.Byte
	DimensionCodec      wire.NbtBlob
	DimensionName       wire.String
	HashedSeed          wire.Long
	MaxPlayers          wire.VarInt
	ViewDistance        wire.VarInt
	SimulationDistance  wire.VarInt
	ReducedDebugInfo    wire.Bool
	EnableRespawnScreen wire.Bool
	IsDebug             wire.Bool
	IsFlat              wire.Bool
}

func (p *ClientboundJoinGame) ToBytes() (wire.ByteArray, error) { return codec.EncodeRecord(p) }
func (p *ClientboundJoinGame) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *ClientboundJoinGame) PacketID() wire.VarInt { return 0x26 }

// ClientboundPlayerPositionAndLook is Clientbound 0x38: an absolute
// teleport the client must acknowledge with ServerboundTeleportConfirm
// carrying the same TeleportID (not modeled here; see SPEC_FULL.md §6).
type ClientboundPlayerPositionAndLook struct {
	X, Y, Z          wire.Double
	Yaw, Pitch       wire.Float
	Flags            wire.Byte
	TeleportID       wire.VarInt
	DismountVehicle  wire.Bool
}

func (p *ClientboundPlayerPositionAndLook) ToBytes() (wire.ByteArray, error) {
	return codec.EncodeRecord(p)
}
func (p *ClientboundPlayerPositionAndLook) FromBytes(data wire.ByteArray) (int, error) {
	return codec.DecodeRecord(data, p)
}
func (p *ClientboundPlayerPositionAndLook) PacketID() wire.VarInt { return 0x38 }

var (
	Serverbound = codec.NewTable("play.serverbound")
	Clientbound = codec.NewTable("play.clientbound")
)

func init() {
	Serverbound.Register(0x03, func() codec.Packet { return &ServerboundChatMessage{} })
	Serverbound.Register(0x0A, func() codec.Packet { return &ServerboundPluginMessage{} })
	Serverbound.Register(0x0F, func() codec.Packet { return &ServerboundKeepAlive{} })

	Clientbound.Register(0x0E, func() codec.Packet { return &ClientboundSystemChatMessage{} })
	Clientbound.Register(0x18, func() codec.Packet { return &ClientboundPluginMessage{} })
	Clientbound.Register(0x1A, func() codec.Packet { return &ClientboundDisconnect{} })
	Clientbound.Register(0x1E, func() codec.Packet { return &ClientboundKeepAlive{} })
	Clientbound.Register(0x26, func() codec.Packet { return &ClientboundJoinGame{} })
	Clientbound.Register(0x38, func() codec.Packet { return &ClientboundPlayerPositionAndLook{} })
}
