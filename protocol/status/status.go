// Package status defines the Status-phase packets: the server list ping
// exchange (Request/Response) and latency probe (Ping/Pong).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Status
package status

import (
	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/wire"
)

// Request is Serverbound 0x00: an empty packet requesting the status JSON.
type Request struct{}

func (r *Request) ToBytes() (wire.ByteArray, error)           { return wire.ByteArray{}, nil }
func (r *Request) FromBytes(data wire.ByteArray) (int, error) { return 0, nil }
func (r *Request) PacketID() wire.VarInt                      { return 0x00 }

// Ping is Serverbound 0x01: an opaque payload echoed back by Pong.
type Ping struct {
	Payload wire.Long
}

func (p *Ping) ToBytes() (wire.ByteArray, error)           { return codec.EncodeRecord(p) }
func (p *Ping) FromBytes(data wire.ByteArray) (int, error) { return codec.DecodeRecord(data, p) }
func (p *Ping) PacketID() wire.VarInt                      { return 0x01 }

// PlayerSample is one entry in Response.Players.Sample.
type PlayerSample struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ResponseJSON is the status JSON body, matching the fields the vanilla
// client expects in the server list entry.
type ResponseJSON struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int            `json:"max"`
		Online int            `json:"online"`
		Sample []PlayerSample `json:"sample,omitempty"`
	} `json:"players"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	Favicon string `json:"favicon,omitempty"`
}

// Response is Clientbound 0x00: the status JSON, UTF-8 text inside a
// PrefixedString.
type Response struct {
	JSON wire.Json[ResponseJSON]
}

func (r *Response) ToBytes() (wire.ByteArray, error)           { return codec.EncodeRecord(r) }
func (r *Response) FromBytes(data wire.ByteArray) (int, error) { return codec.DecodeRecord(data, r) }
func (r *Response) PacketID() wire.VarInt                      { return 0x00 }

// Pong is Clientbound 0x01: echoes Ping.Payload unchanged.
type Pong struct {
	Payload wire.Long
}

func (p *Pong) ToBytes() (wire.ByteArray, error)           { return codec.EncodeRecord(p) }
func (p *Pong) FromBytes(data wire.ByteArray) (int, error) { return codec.DecodeRecord(data, p) }
func (p *Pong) PacketID() wire.VarInt                      { return 0x01 }

var (
	Serverbound = codec.NewTable("status.serverbound")
	Clientbound = codec.NewTable("status.clientbound")
)

func init() {
	Serverbound.Register(0x00, func() codec.Packet { return &Request{} })
	Serverbound.Register(0x01, func() codec.Packet { return &Ping{} })
	Clientbound.Register(0x00, func() codec.Packet { return &Response{} })
	Clientbound.Register(0x01, func() codec.Packet { return &Pong{} })
}
