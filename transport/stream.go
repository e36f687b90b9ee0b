package transport

import "github.com/go-mclib/mcserver/wire"

// PacketStream pairs a FrameReader/FrameWriter over the same Conn, so a
// connection worker has one thing to hold onto per direction.
type PacketStream struct {
	Conn   *Conn
	Reader *FrameReader
	Writer *FrameWriter
}

// NewPacketStream builds a stream with compression disabled on both sides.
func NewPacketStream(conn *Conn) *PacketStream {
	return &PacketStream{
		Conn:   conn,
		Reader: NewFrameReader(conn),
		Writer: NewFrameWriter(conn),
	}
}

// SetCompressionThreshold updates both directions together, mirroring the
// SetCompression packet's effect on the connection (§5 supplemented
// features): a threshold < 0 disables compression.
func (s *PacketStream) SetCompressionThreshold(threshold int) {
	s.Reader.CompressionThreshold = threshold
	s.Writer.CompressionThreshold = threshold
}

// ReadPacket reads one frame and returns its packet ID and body.
func (s *PacketStream) ReadPacket() (wire.VarInt, wire.ByteArray, error) {
	return s.Reader.ReadFrame()
}

// WritePacket writes one frame for an already-encoded packet body.
func (s *PacketStream) WritePacket(id wire.VarInt, body wire.ByteArray) error {
	return s.Writer.WriteFrame(id, body)
}
