package testutil

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/providers/stt"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

// ConversationStore is an in-memory conversation log keyed by user.
type ConversationStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ChatSession
	Appends  int
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{sessions: map[string]*models.ChatSession{}}
}

func (s *ConversationStore) GetOrCreate(_ context.Context, userID string) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		now := time.Now().UTC()
		sess = &models.ChatSession{UserID: userID, ConversationHistory: []models.ChatTurn{}, CreatedAt: now, LastUpdated: now}
		s.sessions[userID] = sess
	}
	return copySession(sess), nil
}

func (s *ConversationStore) Get(_ context.Context, userID string) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return copySession(sess), nil
}

func (s *ConversationStore) Append(_ context.Context, userID string, turns ...models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &models.ChatSession{UserID: userID, CreatedAt: time.Now().UTC()}
		s.sessions[userID] = sess
	}
	sess.ConversationHistory = append(sess.ConversationHistory, turns...)
	sess.LastUpdated = time.Now().UTC()
	s.Appends++
	return nil
}

func (s *ConversationStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.sessions))
	s.sessions = map[string]*models.ChatSession{}
	return n, nil
}

func copySession(s *models.ChatSession) *models.ChatSession {
	c := *s
	c.ConversationHistory = append([]models.ChatTurn(nil), s.ConversationHistory...)
	return &c
}

// LLM returns Reply (or Err) and records every prompt it receives.
type LLM struct {
	mu      sync.Mutex
	Reply   string
	Err     error
	Delay   time.Duration
	prompts []string
}

func (l *LLM) Generate(ctx context.Context, prompt string) (string, error) {
	l.mu.Lock()
	l.prompts = append(l.prompts, prompt)
	delay, reply, err := l.Delay, l.Reply, l.Err
	l.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return reply, err
}

func (l *LLM) Close() error { return nil }

func (l *LLM) Prompts() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.prompts...)
}

func (l *LLM) Calls() int { return len(l.Prompts()) }

// Transcriber is a fixed speech-to-text result.
type Transcriber struct {
	Text       string
	Confidence float64
	Err        error
	Last       stt.Audio
}

func (t *Transcriber) Transcribe(_ context.Context, a stt.Audio) (string, float64, error) {
	t.Last = a
	return t.Text, t.Confidence, t.Err
}

func (t *Transcriber) Close() error { return nil }

// Uploader keeps uploaded objects in memory.
type Uploader struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Err     error
}

func (u *Uploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if u.Err != nil {
		return "", u.Err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Objects == nil {
		u.Objects = map[string][]byte{}
	}
	u.Objects[objectName] = buf.Bytes()
	return "gs://test-bucket/" + objectName, nil
}

func (u *Uploader) Delete(_ context.Context, objectName string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.Objects, objectName)
	return nil
}
