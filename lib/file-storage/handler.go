package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"ims-backend/db"
	applicationstore "ims-backend/lib/application/store"
	"ims-backend/lib/file-storage/store"
	dbmodels "ims-backend/models/db"
	s3client "ims-backend/s3"
)

type Provider interface {
	UploadResume(ctx context.Context, applicationID, fileName, contentType string, data []byte) (id string, err error)
	DownloadResume(ctx context.Context, applicationID string) (rec *dbmodels.Resume, body io.ReadCloser, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            store.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            store.Provider
	applicationStore applicationstore.Provider
}

// UploadResume stores the file in the bucket and upserts the metadata row;
// a second upload for the same application replaces the previous file.
func (i impl) UploadResume(ctx context.Context, applicationID, fileName, contentType string, data []byte) (id string, err error) {
	logger := log.
		WithField("application_id", applicationID).
		WithField("file_name", fileName)
	if len(data) == 0 {
		return "", errors.New("file is empty")
	}
	if s3client.Instance == nil {
		return "", errors.New("file storage is not configured")
	}
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to find application")
		return "", err
	}
	if application == nil {
		return "", errors.New("application not found")
	}
	existing, err := i.store.GetByApplication(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to find existing resume")
		return "", err
	}
	objectKey := fmt.Sprintf("resumes/%s/%s", applicationID, fileName)
	err = s3client.Instance.Upload(ctx, objectKey, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.WithError(err).Error("failed to upload resume")
		return "", err
	}
	rec := dbmodels.Resume{
		ApplicationID: applicationID,
		FileName:      fileName,
		ObjectKey:     objectKey,
		ContentType:   contentType,
		Size:          int64(len(data)),
	}
	if existing != nil {
		rec.BaseModel = existing.BaseModel
		if existing.ObjectKey != objectKey {
			if err := s3client.Instance.Remove(ctx, existing.ObjectKey); err != nil {
				logger.WithError(err).Warn("failed to remove replaced resume object")
			}
		}
	}
	id, err = i.store.Save(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save resume record")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("resume uploaded")
	return id, nil
}

func (i impl) DownloadResume(ctx context.Context, applicationID string) (*dbmodels.Resume, io.ReadCloser, error) {
	if s3client.Instance == nil {
		return nil, nil, errors.New("file storage is not configured")
	}
	rec, err := i.store.GetByApplication(applicationID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errors.New("resume not found")
	}
	body, err := s3client.Instance.Download(ctx, rec.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}
