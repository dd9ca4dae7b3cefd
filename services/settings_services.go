package services

import (
	"errors"
	"fmt"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

// GetAppSetting reads a settings value. The boolean reports whether the key exists.
func GetAppSetting(key string) (string, bool, error) {
	var setting models.AppSetting
	if err := database.DB.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to fetch setting %s: %w", key, err)
	}
	return setting.Value, true, nil
}

// SetAppSetting writes a settings value, overwriting any previous one
func SetAppSetting(key, value string) error {
	setting := models.AppSetting{Key: key, Value: value}
	if err := database.DB.Save(&setting).Error; err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	return nil
}
