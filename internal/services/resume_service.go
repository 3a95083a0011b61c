package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/storage"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const MaxResumeSize = 10 << 20

type ResumeUpload struct {
	UserID   string
	FileName string
	FileSize int
	MimeType string
	Body     io.Reader
}

type ResumeService interface {
	Upload(ctx context.Context, in ResumeUpload) (*models.Resume, error)
	Latest(ctx context.Context, userID string) (*models.Resume, error)
}

type resumeService struct {
	users    pgrepo.UserRepository
	repo     pgrepo.ResumeRepository
	uploader storage.Uploader // nil when no bucket is configured
	now      func() time.Time
}

func NewResumeService(users pgrepo.UserRepository, repo pgrepo.ResumeRepository, uploader storage.Uploader) ResumeService {
	return &resumeService{users: users, repo: repo, uploader: uploader, now: time.Now}
}

func (s *resumeService) Upload(ctx context.Context, in ResumeUpload) (*models.Resume, error) {
	const op = "ResumeService.Upload"

	if in.UserID == "" || in.Body == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and file are required", nil)
	}
	if in.FileSize <= 0 || in.FileSize > MaxResumeSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "file must be between 1 byte and 10MB", nil)
	}
	if in.MimeType != "application/pdf" && !strings.EqualFold(path.Ext(in.FileName), ".pdf") {
		return nil, utils.E(utils.CodeInvalidArgument, op, "only PDF resumes are accepted", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "resume storage is not configured", nil)
	}

	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check user", err)
	}
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "user not found", utils.ErrNotFound)
	}

	id := uuid.NewString()
	objectName := "resumes/" + in.UserID + "/" + id + ".pdf"

	storedPath, err := s.uploader.Upload(ctx, objectName, "application/pdf", in.Body)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	row := &models.Resume{
		ID:         id,
		UserID:     in.UserID,
		FileName:   path.Base(in.FileName),
		FilePath:   storedPath,
		FileSize:   in.FileSize,
		MimeType:   "application/pdf",
		UploadedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, row); err != nil {
		// drop the orphaned object; the upload is reported as failed either way
		if derr := s.uploader.Delete(context.WithoutCancel(ctx), objectName); derr != nil {
			err = errors.Join(err, derr)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume metadata", err)
	}
	return row, nil
}

func (s *resumeService) Latest(ctx context.Context, userID string) (*models.Resume, error) {
	const op = "ResumeService.Latest"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	row, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "no resume uploaded", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load resume", err)
	}
	return row, nil
}
