package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vasantha-kumar-s/career-bot/internal/providers/stt"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const MaxVoiceAudioSize = 10 << 20

type VoiceReply struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Response   string  `json:"response"`
}

// VoiceService transcribes a spoken message and sends the text through chat.
type VoiceService interface {
	Send(ctx context.Context, userID string, audio stt.Audio) (*VoiceReply, error)
}

type voiceService struct {
	stt    stt.Provider // nil when speech is disabled
	chat   ChatService
	logger *logrus.Logger
}

func NewVoiceService(p stt.Provider, chat ChatService, logger *logrus.Logger) VoiceService {
	if logger == nil {
		logger = logrus.New()
	}
	return &voiceService{stt: p, chat: chat, logger: logger}
}

func (s *voiceService) Send(ctx context.Context, userID string, audio stt.Audio) (*VoiceReply, error) {
	const op = "VoiceService.Send"

	if userID == "" || len(audio.Data) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and audio are required", nil)
	}
	if len(audio.Data) > MaxVoiceAudioSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "audio must be at most 10MB", nil)
	}
	if s.stt == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "speech recognition is not configured", nil)
	}

	audio.Language = stt.NormalizeLanguage(audio.Language)
	text, conf, err := s.stt.Transcribe(ctx, audio)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("transcription failed")
		return nil, utils.E(utils.CodeUnavailable, op, "speech recognition failed", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no speech detected", nil)
	}

	reply, err := s.chat.Send(ctx, userID, text)
	if err != nil {
		return nil, err
	}
	return &VoiceReply{Transcript: text, Confidence: conf, Response: reply}, nil
}
