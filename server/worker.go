package server

import (
	"crypto/rand"
	"fmt"
	"net"

	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/internal/logz"
	"github.com/go-mclib/mcserver/internal/protoerr"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/protocol/handshake"
	"github.com/go-mclib/mcserver/protocol/login"
	"github.com/go-mclib/mcserver/protocol/play"
	"github.com/go-mclib/mcserver/protocol/status"
	"github.com/go-mclib/mcserver/session"
	"github.com/go-mclib/mcserver/transport"
	"github.com/go-mclib/mcserver/wire"
	"go.uber.org/zap"
)

// Worker owns one accepted connection exclusively and drives it through
// the phase state machine (§4.5). A worker never outlives its connection:
// any error it can't recover from closes the socket and returns.
type Worker struct {
	state  *State
	log    *zap.Logger
	stream *transport.PacketStream
}

// NewWorker wraps a freshly accepted net.Conn, naming its logger after the
// remote socket address per §4.6.
func NewWorker(state *State, conn net.Conn) *Worker {
	tc := transport.NewConn(conn)
	return &Worker{
		state:  state,
		log:    logz.ForConnection(state.Logger, conn.RemoteAddr().String()),
		stream: transport.NewPacketStream(tc),
	}
}

// Run drives the connection to completion, recovering from any panic so a
// single bad connection can't take the accept loop down with it.
func (w *Worker) Run() {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("worker panic", zap.Any("recover", r))
		}
		w.stream.Conn.Close()
	}()

	next, err := w.handleHandshake()
	if err != nil {
		w.log.Debug("handshake failed", zap.Error(err))
		return
	}

	switch next {
	case protocol.PhaseStatus:
		if err := w.handleStatus(); err != nil {
			w.log.Debug("status phase ended", zap.Error(err))
		}
	case protocol.PhaseLogin:
		if err := w.handleLogin(); err != nil {
			w.log.Info("login failed", zap.Error(err))
			return
		}
		if err := w.handlePlay(); err != nil {
			w.log.Debug("play phase ended", zap.Error(err))
		}
	}
}

// handleHandshake reads the single Handshake packet and returns the phase
// it requests (§4.5 "Handshake").
func (w *Worker) handleHandshake() (protocol.Phase, error) {
	id, body, err := w.stream.ReadPacket()
	if err != nil {
		return 0, fmt.Errorf("read handshake: %w", err)
	}
	pkt, err := handshake.Serverbound.New(id)
	if err != nil {
		return 0, err
	}
	if err := decodeFull("Handshake", pkt, body); err != nil {
		return 0, err
	}
	hs := pkt.(*handshake.Handshake)

	switch hs.NextState {
	case handshake.NextStateStatus:
		return protocol.PhaseStatus, nil
	case handshake.NextStateLogin:
		if int32(hs.ProtocolVersion) != protocol.WireVersion {
			return 0, &protoerr.VersionMismatchError{Expected: protocol.WireVersion, Actual: int32(hs.ProtocolVersion)}
		}
		return protocol.PhaseLogin, nil
	default:
		return 0, &protoerr.PhaseViolationError{Phase: "Handshake", Detail: fmt.Sprintf("invalid next_state %d", hs.NextState)}
	}
}

// handleStatus loops Request/Ping until the client closes the connection
// (§4.5 "Status").
func (w *Worker) handleStatus() error {
	for {
		id, body, err := w.stream.ReadPacket()
		if err != nil {
			return err
		}
		pkt, err := status.Serverbound.New(id)
		if err != nil {
			return err
		}
		if err := decodeFull("status packet", pkt, body); err != nil {
			return err
		}

		switch p := pkt.(type) {
		case *status.Request:
			if err := w.writeStatusResponse(); err != nil {
				return err
			}
		case *status.Ping:
			pong := &status.Pong{Payload: p.Payload}
			if err := w.writePacket(pong); err != nil {
				return err
			}
		}
	}
}

func (w *Worker) writeStatusResponse() error {
	resp := &status.Response{}
	resp.JSON.Value.Version.Name = protocol.HumanVersion
	resp.JSON.Value.Version.Protocol = protocol.WireVersion
	resp.JSON.Value.Players.Max = 20
	resp.JSON.Value.Players.Online = w.state.PlayerCount()
	resp.JSON.Value.Description.Text = w.state.Config.Listing.MOTD
	resp.JSON.Value.Favicon = w.state.Config.Listing.IconDataURI
	return w.writePacket(resp)
}

// handleLogin drives the RSA/shared-secret exchange and session
// verification (§4.5 "Login"), installing the cipher before acknowledging
// success.
func (w *Worker) handleLogin() error {
	id, body, err := w.stream.ReadPacket()
	if err != nil {
		return fmt.Errorf("read login start: %w", err)
	}
	pkt, err := login.Serverbound.New(id)
	if err != nil {
		return err
	}
	if err := decodeFull("LoginStart", pkt, body); err != nil {
		return err
	}
	start, ok := pkt.(*login.LoginStart)
	if !ok {
		return &protoerr.PhaseViolationError{Phase: "Login", Detail: "expected LoginStart"}
	}

	verifyToken := make([]byte, 4)
	if _, err := rand.Read(verifyToken); err != nil {
		return fmt.Errorf("generate verify token: %w", err)
	}
	encReq := &login.EncryptionRequest{
		ServerID:    "",
		PublicKey:   wire.Bytes(w.state.KeyPair.SPKI),
		VerifyToken: wire.Bytes(verifyToken),
	}
	if err := w.writePacket(encReq); err != nil {
		return err
	}

	id, body, err = w.stream.ReadPacket()
	if err != nil {
		return fmt.Errorf("read encryption response: %w", err)
	}
	pkt, err = login.Serverbound.New(id)
	if err != nil {
		return err
	}
	if err := decodeFull("EncryptionResponse", pkt, body); err != nil {
		return err
	}
	encResp, ok := pkt.(*login.EncryptionResponse)
	if !ok {
		return &protoerr.PhaseViolationError{Phase: "Login", Detail: "expected EncryptionResponse"}
	}

	sharedSecret, err := w.state.KeyPair.Decrypt(encResp.SharedSecretEnc)
	if err != nil {
		return fmt.Errorf("decrypt shared secret: %w", err)
	}
	decryptedToken, err := w.state.KeyPair.Decrypt(encResp.VerifyTokenEnc)
	if err != nil {
		return fmt.Errorf("decrypt verify token: %w", err)
	}
	if !bytesEqual(decryptedToken, verifyToken) {
		return &protoerr.VerifyTokenMismatchError{}
	}

	serverHash := session.ComputeServerHash(sharedSecret, w.state.KeyPair.SPKI)
	identity, err := w.state.Verifier.Verify(string(start.Username), serverHash)
	if err != nil {
		_ = w.writePacket(&login.Disconnect{Reason: disconnectJSON("Failed to verify session: " + err.Error())})
		return fmt.Errorf("verify session: %w", err)
	}

	if err := w.stream.Conn.InstallCipher(sharedSecret); err != nil {
		return fmt.Errorf("install cipher: %w", err)
	}

	playerUUID, err := wire.ParseUUID(identity.UUID.String())
	if err != nil {
		return fmt.Errorf("convert profile uuid: %w", err)
	}
	success := &login.LoginSuccess{UUID: playerUUID, Username: wire.String(identity.Username)}
	if err := w.writePacket(success); err != nil {
		return err
	}

	w.log.Info("player authenticated", zap.String("username", identity.Username), zap.String("uuid", identity.UUID.String()))
	return nil
}

// handlePlay sends a greeting Disconnect, the only Play behavior within
// scope (§4.5 "Play").
func (w *Worker) handlePlay() error {
	w.state.IncrementPlayerCount()
	defer w.state.DecrementPlayerCount()

	return w.writePacket(&play.ClientboundDisconnect{
		Reason: wire.Json[play.ChatComponent]{Value: play.ChatComponent{Text: "Thanks for connecting!"}},
	})
}

// decodeFull decodes body into pkt and rejects trailing bytes left over
// afterward — strict mode per §9, rather than silently accepting a packet
// whose declared length doesn't match what its fields actually consumed.
func decodeFull(what string, pkt codec.Packet, body wire.ByteArray) error {
	n, err := pkt.FromBytes(body)
	if err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	if n != len(body) {
		return &codec.UnexpectedLengthError{What: what, Expected: len(body), Actual: n}
	}
	return nil
}

func disconnectJSON(text string) wire.Json[login.DisconnectJSON] {
	return wire.Json[login.DisconnectJSON]{Value: login.DisconnectJSON{Text: text}}
}

func (w *Worker) writePacket(p interface {
	ToBytes() (wire.ByteArray, error)
	PacketID() wire.VarInt
}) error {
	body, err := p.ToBytes()
	if err != nil {
		return err
	}
	return w.stream.WritePacket(p.PacketID(), body)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
