package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/testutil"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

func pdf(userID string) ResumeUpload {
	body := []byte("%PDF-1.4 resume")
	return ResumeUpload{
		UserID:   userID,
		FileName: "../../cv.pdf",
		FileSize: len(body),
		MimeType: "application/pdf",
		Body:     bytes.NewReader(body),
	}
}

func TestResumeUploadAndLatest(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Ravi")
	up := &testutil.Uploader{}
	svc := NewResumeService(s.users, s.resumes, up)

	_, err := svc.Latest(ctx, u.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	row, err := svc.Upload(ctx, pdf(u.ID))
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", row.FileName)
	assert.Contains(t, row.FilePath, "gs://test-bucket/resumes/"+u.ID+"/")
	assert.Len(t, up.Objects, 1)

	latest, err := svc.Latest(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, latest.ID)
}

func TestResumeUploadRejects(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Sita")

	_, err := NewResumeService(s.users, s.resumes, nil).Upload(ctx, pdf(u.ID))
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))

	svc := NewResumeService(s.users, s.resumes, &testutil.Uploader{})

	in := pdf(u.ID)
	in.FileName, in.MimeType = "cv.docx", "application/msword"
	_, err = svc.Upload(ctx, in)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	in = pdf(u.ID)
	in.FileSize = MaxResumeSize + 1
	_, err = svc.Upload(ctx, in)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

type failingResumes struct{ pgrepo.ResumeRepository }

func (failingResumes) Insert(context.Context, *models.Resume) error { return errors.New("db down") }

func TestResumeUploadRemovesObjectWhenMetadataFails(t *testing.T) {
	s := newStores(t)
	u := s.addUser(t, "Kiran")
	up := &testutil.Uploader{}

	_, err := NewResumeService(s.users, failingResumes{s.resumes}, up).Upload(context.Background(), pdf(u.ID))
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
	assert.Empty(t, up.Objects)
}
