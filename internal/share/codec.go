package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/youruser/tarotshare/internal/reading"
)

// QueryParam carries the encoded payload on share links.
const QueryParam = "d"

var ErrEmptyToken = errors.New("empty share token")

// Encode serializes a payload to the URL-safe token format: JSON, UTF-8,
// base64 with the URL alphabet and padding stripped.
func Encode(p *reading.Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode reverses Encode and validates the payload at the boundary.
// Malformed input fails closed with an error; it never panics.
func Decode(token string) (*reading.Payload, error) {
	token = strings.TrimRight(strings.TrimSpace(token), "=")
	if token == "" {
		return nil, ErrEmptyToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decode share token: %w", err)
	}
	var p reading.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode share payload: %w", err)
	}
	if err := p.Normalize(); err != nil {
		return nil, err
	}
	return &p, nil
}

// URL builds the canonical share link for a payload.
func URL(site string, p *reading.Payload) (string, error) {
	token, err := Encode(p)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(site, "/") + "/share/?" + QueryParam + "=" + token, nil
}
