package models

import "time"

type Pokemon struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	BirthDate time.Time `json:"birth_date"`
}

func (Pokemon) TableName() string {
	return "pokemon"
}
