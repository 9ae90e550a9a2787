package models

type Reviewer struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name" gorm:"not null"`
}

func (Reviewer) TableName() string {
	return "reviewers"
}
