package models

import "time"

type HospitalStaff struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	UserID     uint `json:"user_id" gorm:"uniqueIndex"`
	HospitalID uint `json:"hospital_id"`

	Role       string `json:"role"`       // "doctor", "nurse", "technician", "admin"
	Department string `json:"department"` // "emergency", "surgery", "cardiology", ...

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     *User     `json:"-" gorm:"foreignKey:UserID"`
	Hospital *Hospital `json:"hospital,omitempty" gorm:"foreignKey:HospitalID"`
}
