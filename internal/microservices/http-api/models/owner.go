package models

type Owner struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	CountryID int64  `json:"country_id" gorm:"not null;index"`

	// Associations
	Country *Country `json:"country,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT;"`
}

func (Owner) TableName() string {
	return "owners"
}
