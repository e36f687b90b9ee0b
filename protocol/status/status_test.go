package status_test

import (
	"testing"

	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/protocol/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRoundTripViaTable(t *testing.T) {
	pkt, err := status.Serverbound.New(0x00)
	require.NoError(t, err)
	_, ok := pkt.(*status.Request)
	assert.True(t, ok)

	body, err := pkt.ToBytes()
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestPingPongEchoesPayload(t *testing.T) {
	ping := &status.Ping{Payload: 123456789}
	body, err := ping.ToBytes()
	require.NoError(t, err)

	pkt, err := status.Serverbound.New(ping.PacketID())
	require.NoError(t, err)
	n, err := pkt.FromBytes(body)
	require.NoError(t, err)
	assert.Equal(t, len(body), n)

	decodedPing := pkt.(*status.Ping)
	pong := &status.Pong{Payload: decodedPing.Payload}
	assert.Equal(t, ping.Payload, pong.Payload)
}

func TestResponseJSONRoundTrip(t *testing.T) {
	resp := &status.Response{}
	resp.JSON.Value.Version.Name = "1.18.1"
	resp.JSON.Value.Version.Protocol = 757
	resp.JSON.Value.Players.Max = 20
	resp.JSON.Value.Description.Text = "A Minecraft Server"

	body, err := resp.ToBytes()
	require.NoError(t, err)

	pkt, err := status.Clientbound.New(resp.PacketID())
	require.NoError(t, err)
	_, err = pkt.FromBytes(body)
	require.NoError(t, err)

	decoded := pkt.(*status.Response)
	assert.Equal(t, "1.18.1", decoded.JSON.Value.Version.Name)
	assert.Equal(t, 757, decoded.JSON.Value.Version.Protocol)
	assert.Equal(t, "A Minecraft Server", decoded.JSON.Value.Description.Text)
}

func TestUnregisteredPacketIDErrors(t *testing.T) {
	_, err := status.Serverbound.New(0x55)
	require.Error(t, err)

	var discErr *codec.UnrecognizedEnumDiscriminant
	assert.ErrorAs(t, err, &discErr)
}
