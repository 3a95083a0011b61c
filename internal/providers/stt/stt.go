package stt

import (
	"context"
	"strings"
)

// Audio is one recorded voice message.
type Audio struct {
	Data     []byte
	MimeType string // audio/webm, audio/ogg, audio/wav, audio/flac
	Language string // en, en-US, hi-IN ...
}

type Provider interface {
	Transcribe(ctx context.Context, a Audio) (text string, confidence float64, err error)
	Close() error
}

// NormalizeLanguage maps short codes to BCP-47 tags; empty means en-US.
func NormalizeLanguage(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "", "en", "en-us":
		return "en-US"
	case "en-in":
		return "en-IN"
	case "hi", "hi-in":
		return "hi-IN"
	default:
		return v
	}
}
