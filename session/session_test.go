package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-mclib/mcserver/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeServerHashMatchesMinecraftSHA1(t *testing.T) {
	// empty shared secret and spki reduces ComputeServerHash to hashing the
	// empty string, which is the well-known SHA-1 of "".
	hash := session.ComputeServerHash(nil, nil)
	assert.Equal(t, "-25c65c11a194b4f2cdaa40106a9fe76f5027f8f7", hash)
}

func newTestVerifier(t *testing.T, sessionServer *httptest.Server) *session.MojangVerifier {
	t.Helper()
	v := session.NewMojangVerifier()
	v.SessionServerBaseURL = sessionServer.URL
	v.ProfileAPIBaseURL = sessionServer.URL
	return v
}

func TestVerifyReturnsIdentityOnHasJoined200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/session/minecraft/hasJoined", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "069a79f444e94726a5befca90e38aaf5",
			"name": "Notch",
			"properties": []map[string]string{
				{"name": "textures", "value": "eyJ0ZXh0dXJlcyI6e319"},
			},
		})
	}))
	defer srv.Close()

	v := newTestVerifier(t, srv)
	identity, err := v.Verify("Notch", "somehash")
	require.NoError(t, err)
	assert.Equal(t, "Notch", identity.Username)
	assert.Equal(t, "069a79f4-44e9-4726-a5be-fca90e38aaf5", identity.UUID.String())
	assert.Equal(t, "eyJ0ZXh0dXJlcyI6e319", identity.SkinTextureB64)
}

func TestVerifyFallsBackOnNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/session/minecraft/hasJoined":
			w.WriteHeader(http.StatusNoContent)
		case strings.HasPrefix(r.URL.Path, "/users/profiles/minecraft/"):
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "069a79f444e94726a5befca90e38aaf5"})
		case strings.HasPrefix(r.URL.Path, "/session/minecraft/profile/"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":   "069a79f444e94726a5befca90e38aaf5",
				"name": "Notch",
			})
		default:
			t.Fatalf("unexpected request path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	v := newTestVerifier(t, srv)
	identity, err := v.Verify("Notch", "somehash")
	require.NoError(t, err)
	assert.Equal(t, "Notch", identity.Username)
}

func TestVerifyErrorsOnServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	v := newTestVerifier(t, srv)
	_, err := v.Verify("Notch", "somehash")
	assert.Error(t, err)
}
