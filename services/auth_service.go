package services

import (
	"errors"

	"github.com/shlangelhu/AIDish/models"
	"github.com/shlangelhu/AIDish/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
)

type AuthService struct {
	db    *gorm.DB
	codec *utils.TokenCodec
}

func NewAuthService(db *gorm.DB, codec *utils.TokenCodec) *AuthService {
	return &AuthService{db: db, codec: codec}
}

type RegisterInput struct {
	Username string
	Password string
	Name     string
	Gender   string
	Age      int
	Height   float64
	Weight   float64
}

// Register creates the account and its nutrition spirit in one
// transaction, then issues a token so the client is logged in right
// away.
func (s *AuthService) Register(in RegisterInput) (*models.User, *models.UserSpirit, string, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, nil, "", err
	}
	if count > 0 {
		return nil, nil, "", ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, nil, "", err
	}

	user := models.User{
		Username: in.Username,
		Password: hashed,
		Name:     in.Name,
		Gender:   in.Gender,
		Age:      in.Age,
		Height:   in.Height,
		Weight:   in.Weight,
	}
	var spirit models.UserSpirit
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		spirit = NewbornSpirit(user.ID, in.Name, in.Gender)
		return tx.Create(&spirit).Error
	})
	if err != nil {
		return nil, nil, "", err
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, nil, "", err
	}
	return &user, &spirit, token, nil
}

// Login checks the credentials and issues a fresh 30-minute token.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
