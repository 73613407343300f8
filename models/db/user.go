package dbmodels

import (
	"fmt"

	"github.com/pkg/errors"
	"ims-backend/models"
)

type User struct {
	BaseModel
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(100)"`
	FirstName string          `gorm:"type:varchar(100)"`
	LastName  string          `gorm:"type:varchar(100)"`
	Phone     string          `gorm:"type:varchar(20)"`
	Role      models.UserRole `gorm:"type:varchar(15);index"`
	IsStaff   bool
}

func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (u User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.FirstName == "" || u.LastName == "" {
		return errors.New("first and last name are required")
	}
	if !u.Role.IsValid() {
		return errors.New("unknown user role")
	}
	return nil
}
