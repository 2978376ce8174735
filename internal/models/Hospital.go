package models

import "time"

type Hospital struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"unique"`
	HospitalType string `json:"hospital_type" gorm:"default:general"`

	Address string `json:"address"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country" gorm:"default:Ukraine"`

	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Website     string `json:"website"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Staff         []HospitalStaff `json:"-" gorm:"foreignKey:HospitalID"`
	BloodRequests []BloodRequest  `json:"-" gorm:"foreignKey:HospitalID"`
}
