package flash

import (
	"encoding/json"
	"strings"
	"time"

	"flipkartmini.com/app/internal/http/signed"
	"flipkartmini.com/app/pkg/view"
)

type Codec struct {
	CookieName string
	Secure     bool

	signer *signed.Codec
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{CookieName: cookieName, Secure: secure, signer: signed.NewCodec(secret)}
}

func (c *Codec) Encode(f view.Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return c.signer.Encode(b), nil
}

func (c *Codec) Decode(v string) (*view.Flash, error) {
	raw, err := c.signer.Decode(v)
	if err != nil {
		return nil, err
	}
	var f view.Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, signed.ErrInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		return nil, signed.ErrInvalid
	}
	return &f, nil
}

func (c *Codec) CookieMaxAge() int {
	// Flash is one-shot: two minutes is plenty to survive the redirect.
	return int((2 * time.Minute).Seconds())
}
