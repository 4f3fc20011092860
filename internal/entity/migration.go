package entity

import "time"

type Migration struct {
	Version   string `gorm:"primaryKey;type:varchar(20)"`
	CreatedAt time.Time
}

func (m *Migration) TableName() string {
	return "migrations"
}
