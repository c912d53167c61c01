package repository

import (
	"errors"
	"strings"
	"time"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/role"

	"gorm.io/gorm"
)

// Методы для работы с пользователями

func (r *Repository) CreateUser(login, passwordHash string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Login:     login,
		Password:  passwordHash,
		Role:      userRole,
		CreatedAt: time.Now(),
	}

	err := r.db.Create(&user).Error
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, ErrLoginTaken
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

// UpdateUserProfile обновляет только переданные поля профиля
func (r *Repository) UpdateUserProfile(userID uint, name, email, phone *string) (*ds.User, error) {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if email != nil {
		updates["email"] = *email
	}
	if phone != nil {
		updates["phone"] = *phone
	}

	if len(updates) > 0 {
		result := r.db.Model(&ds.User{}).Where("id = ?", userID).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.GetUserByID(userID)
}

func (r *Repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Count(&count).Error
	return count, err
}
