package dbmodels

import (
	"github.com/pkg/errors"
)

// Resume points at the uploaded document in object storage, one per application.
type Resume struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);uniqueIndex"`
	FileName      string `gorm:"type:varchar(255)"`
	ObjectKey     string `gorm:"type:varchar(255)"`
	ContentType   string `gorm:"type:varchar(100)"`
	Size          int64
}

func (r Resume) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("application is required")
	}
	if r.FileName == "" {
		return errors.New("file name is required")
	}
	return nil
}
