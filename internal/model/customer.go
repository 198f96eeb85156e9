package model

import "time"

// customers
type Customer struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Name       string `gorm:"type:varchar(50);not null;index"`
	Address    string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(50)"`
	Phone      string `gorm:"type:varchar(50)"`
	Division   string `gorm:"type:varchar(50)"`
	Country    string `gorm:"type:varchar(50)"`

	CreatedAt time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"type:varchar(50)"`
	UpdatedAt time.Time `gorm:"not null"`
	UpdatedBy string    `gorm:"type:varchar(50)"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
