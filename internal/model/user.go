package model

import "time"

// users — сотрудники, от имени которых создаются встречи.
type User struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Name string `gorm:"type:varchar(50);not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// contacts — контактные лица, закреплённые за встречей.
type Contact struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Name  string `gorm:"type:varchar(50);not null"`
	Email string `gorm:"type:varchar(255)"`
}
