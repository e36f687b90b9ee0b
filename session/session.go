// Package session implements the Mojang session-authentication step of
// Login (§4.5 step 6): given a username and the Minecraft-flavoured server
// ID hash, confirm the client actually holds a session with Mojang and
// recover its canonical UUID and skin textures.
package session

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-mclib/mcserver/crypto"
	"github.com/google/uuid"
)

// Identity is what Login needs back from verification: the canonical
// profile UUID, the canonical-cased username, and (per §5 supplemented
// features) the raw base64 skin texture blob, forwarded but not
// interpreted.
type Identity struct {
	UUID           uuid.UUID
	Username       string
	SkinTextureB64 string
}

// Verifier confirms a client session and resolves its profile identity.
type Verifier interface {
	Verify(username, serverIDHash string) (*Identity, error)
}

// Property is one entry of a Mojang profile's "properties" array.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type hasJoinedResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

type profileLookupResponse struct {
	ID string `json:"id"`
}

// MojangVerifier calls the real Mojang session server and profile API.
type MojangVerifier struct {
	SessionServerBaseURL string
	ProfileAPIBaseURL    string
	httpClient           *http.Client
}

// NewMojangVerifier returns a verifier pointed at the production Mojang
// endpoints with a bounded request timeout.
func NewMojangVerifier() *MojangVerifier {
	return &MojangVerifier{
		SessionServerBaseURL: "https://sessionserver.mojang.com",
		ProfileAPIBaseURL:    "https://api.mojang.com",
		httpClient:           &http.Client{Timeout: 10 * time.Second},
	}
}

// ComputeServerHash is the Mojang-flavoured SHA-1 described in §4.5 step 5:
// hash of the concatenation "" (empty server id) || sharedSecret || spki.
func ComputeServerHash(sharedSecret, spki []byte) string {
	h := crypto.NewMinecraftSHA1()
	h.Write([]byte(""))
	h.Write(sharedSecret)
	h.Write(spki)
	return h.HexDigest()
}

// Verify queries /session/minecraft/hasJoined; on a 204 (no content) it
// falls back to the two-step username→uuid then uuid→profile resolve
// (§4.5 step 6's fallback path) rather than failing the login outright.
func (v *MojangVerifier) Verify(username, serverIDHash string) (*Identity, error) {
	u := fmt.Sprintf("%s/session/minecraft/hasJoined?username=%s&serverId=%s",
		v.SessionServerBaseURL, url.QueryEscape(username), url.QueryEscape(serverIDHash))

	resp, err := v.get(u)
	if err != nil {
		return nil, fmt.Errorf("session: hasJoined request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return v.fallbackResolve(username)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session: hasJoined returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("session: read hasJoined body: %w", err)
	}
	var parsed hasJoinedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("session: parse hasJoined body: %w", err)
	}
	return identityFromHasJoined(&parsed)
}

// fallbackResolve implements "resolve {username -> uuid} and then
// {uuid -> profile}" when hasJoined reports no session in progress.
func (v *MojangVerifier) fallbackResolve(username string) (*Identity, error) {
	lookupURL := fmt.Sprintf("%s/users/profiles/minecraft/%s", v.ProfileAPIBaseURL, url.PathEscape(username))
	resp, err := v.get(lookupURL)
	if err != nil {
		return nil, fmt.Errorf("session: username lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session: username lookup returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("session: read username lookup body: %w", err)
	}
	var looked profileLookupResponse
	if err := json.Unmarshal(body, &looked); err != nil {
		return nil, fmt.Errorf("session: parse username lookup body: %w", err)
	}

	profileURL := fmt.Sprintf("%s/session/minecraft/profile/%s", v.SessionServerBaseURL, looked.ID)
	profResp, err := v.get(profileURL)
	if err != nil {
		return nil, fmt.Errorf("session: profile lookup: %w", err)
	}
	defer profResp.Body.Close()
	if profResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session: profile lookup returned status %d", profResp.StatusCode)
	}
	profBody, err := io.ReadAll(profResp.Body)
	if err != nil {
		return nil, fmt.Errorf("session: read profile lookup body: %w", err)
	}
	var profile hasJoinedResponse
	if err := json.Unmarshal(profBody, &profile); err != nil {
		return nil, fmt.Errorf("session: parse profile lookup body: %w", err)
	}
	return identityFromHasJoined(&profile)
}

// identityFromHasJoined parses the profile's undashed UUID via google/uuid,
// which accepts both dashed and undashed hex forms.
func identityFromHasJoined(r *hasJoinedResponse) (*Identity, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("session: invalid profile uuid %q: %w", r.ID, err)
	}
	identity := &Identity{UUID: id, Username: r.Name}
	for _, p := range r.Properties {
		if p.Name == "textures" {
			identity.SkinTextureB64 = p.Value
		}
	}
	return identity, nil
}

func (v *MojangVerifier) get(u string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "go-mclib-mcserver")
	return v.httpClient.Do(req)
}
