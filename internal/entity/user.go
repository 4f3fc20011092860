package entity

import "time"

type User struct {
	Base
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (u *User) TableName() string {
	return "users"
}

type UserProfile struct {
	UserID     string `gorm:"primaryKey;type:varchar(36)"`
	User       User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Nickname   string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Level      int    `gorm:"not null;default:0;check:chk_user_profiles_level,level >= 0 AND level <= 999"`
	Experience int    `gorm:"not null;default:0;check:chk_user_profiles_experience,experience >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p *UserProfile) TableName() string {
	return "user_profiles"
}

type UserConfig struct {
	UserID        string `gorm:"primaryKey;type:varchar(36)"`
	User          User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ActiveThemeID string `gorm:"type:varchar(36);not null;index"`
	ActiveTheme   Theme  `gorm:"foreignKey:ActiveThemeID;constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *UserConfig) TableName() string {
	return "user_configs"
}
