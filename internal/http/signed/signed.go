// Package signed implements the cookie value format used everywhere a piece
// of client-owned state has to survive round trips through the browser:
// base64url(payload) + "." + base64url(hmac-sha256(payload)).
//
// The signature stops casual tampering with prices or the admin flag; it is
// not encryption and the payload is readable by the user it belongs to.
package signed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalid = errors.New("invalid signed value")

type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

func (c *Codec) Encode(payload []byte) string {
	p := base64.RawURLEncoding.EncodeToString(payload)
	return p + "." + sign(c.secret, p)
}

// Decode verifies and unpacks a value produced by Encode. Any structural or
// signature problem returns ErrInvalid; callers treat that as "no value".
func (c *Codec) Decode(v string) ([]byte, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	return raw, nil
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
