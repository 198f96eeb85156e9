package model

import "time"

// appointments
//
// StartAt/EndAt хранятся в UTC; интервал полуоткрытый [StartAt, EndAt).
// Составной индекс по (customer_id, start_at, end_at) обслуживает поиск пересечений.
type Appointment struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Title       string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:varchar(255);not null"`
	Location    string `gorm:"type:varchar(50);not null"`
	Type        string `gorm:"type:varchar(50);not null;index"`

	StartAt time.Time `gorm:"not null;index:idx_appointments_customer_range,priority:2"`
	EndAt   time.Time `gorm:"not null;index:idx_appointments_customer_range,priority:3"`

	CustomerID int64 `gorm:"not null;index:idx_appointments_customer_range,priority:1"`
	UserID     int64 `gorm:"not null;index"`
	ContactID  int64 `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"type:varchar(50)"`
	UpdatedAt time.Time `gorm:"not null"`
	UpdatedBy string    `gorm:"type:varchar(50)"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Contact *Contact `gorm:"foreignKey:ContactID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
