package accountapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"ims-backend/models"
	dbmodels "ims-backend/models/db"
)

type RegisterRequest struct {
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role"`
	Password  string          `json:"password"`
	Password2 string          `json:"password2"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name are required")
	}
	if !r.Role.IsValid() {
		return errors.New("unknown user role")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if r.Password != r.Password2 {
		return errors.New("passwords must match")
	}
	return nil
}

type UserView struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	FullName  string          `json:"full_name"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:        rec.ID,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		FullName:  rec.FullName(),
		Phone:     rec.Phone,
		Role:      rec.Role,
	}
}
