package login_test

import (
	"testing"

	"github.com/go-mclib/mcserver/protocol/login"
	"github.com/go-mclib/mcserver/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStartRoundTrip(t *testing.T) {
	original := &login.LoginStart{Username: "Notch"}
	body, err := original.ToBytes()
	require.NoError(t, err)

	decoded := &login.LoginStart{}
	_, err = decoded.FromBytes(body)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncryptionRequestResponseRoundTrip(t *testing.T) {
	req := &login.EncryptionRequest{
		ServerID:    "",
		PublicKey:   wire.Bytes{0x01, 0x02, 0x03},
		VerifyToken: wire.Bytes{0xAA, 0xBB, 0xCC, 0xDD},
	}
	body, err := req.ToBytes()
	require.NoError(t, err)

	decoded := &login.EncryptionRequest{}
	_, err = decoded.FromBytes(body)
	require.NoError(t, err)
	assert.Equal(t, req, decoded)

	resp := &login.EncryptionResponse{
		SharedSecretEnc: wire.Bytes{0x01, 0x02},
		VerifyTokenEnc:  wire.Bytes{0xAA, 0xBB, 0xCC, 0xDD},
	}
	respBody, err := resp.ToBytes()
	require.NoError(t, err)

	decodedResp := &login.EncryptionResponse{}
	_, err = decodedResp.FromBytes(respBody)
	require.NoError(t, err)
	assert.Equal(t, resp, decodedResp)
}

func TestLoginSuccessRoundTrip(t *testing.T) {
	u, err := wire.ParseUUID("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	require.NoError(t, err)
	original := &login.LoginSuccess{UUID: u, Username: "Notch"}

	body, err := original.ToBytes()
	require.NoError(t, err)

	decoded := &login.LoginSuccess{}
	_, err = decoded.FromBytes(body)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
