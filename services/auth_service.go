package services

import (
	"errors"
	"strings"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/config"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/utils"
)

var ErrCredentialsTaken = errors.New("username or email already in use")

func RegisterUser(username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := config.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return ErrCredentialsTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(username, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("username = ?", strings.TrimSpace(username)).First(&user)
	if result.Error != nil {
		return nil, errors.New("invalid username or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("invalid username or password")
	}

	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}, nil
}

func UpdateUserProfile(userID uint, email string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && email != user.Email {
		var other models.User
		if err := config.DB.Where("email = ? AND id <> ?", email, userID).First(&other).Error; err == nil {
			return ErrCredentialsTaken
		}
		user.Email = email
	}

	return config.DB.Save(&user).Error
}
