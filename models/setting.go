package models

import "gorm.io/gorm"

// Setting keys.
const (
	SettingMaxWinningPerTicket = "max_winning_per_ticket"
)

type Setting struct {
	gorm.Model

	Key         string `gorm:"uniqueIndex;size:100" json:"key"`
	Value       string `gorm:"type:text" json:"value"`
	Description string `gorm:"type:text" json:"description"`
}

// GetSetting returns the stored value for key, or fallback when the key is
// absent or empty.
func GetSetting(db *gorm.DB, key, fallback string) string {
	var s Setting
	if err := db.Where("key = ?", key).First(&s).Error; err != nil {
		return fallback
	}
	if s.Value == "" {
		return fallback
	}
	return s.Value
}
