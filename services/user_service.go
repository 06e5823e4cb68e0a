package services

import (
	"errors"

	"github.com/shlangelhu/AIDish/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) Profile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	Name   string
	Gender string
	Age    int
	Height float64
	Weight float64
}

// UpdateProfile overwrites the fields that were actually provided;
// zero values leave the stored value alone.
func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Gender != "" {
		user.Gender = upd.Gender
	}
	if upd.Age > 0 {
		user.Age = upd.Age
	}
	if upd.Height > 0 {
		user.Height = upd.Height
	}
	if upd.Weight > 0 {
		user.Weight = upd.Weight
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
