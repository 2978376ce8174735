package models

import "time"

type Donor struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex"`

	BloodType   string    `json:"blood_type"` // "O+", "O-", "A+", "A-", "B+", "B-", "AB+", "AB-"
	Gender      string    `json:"gender"`     // "male", "female", "other"
	DateOfBirth time.Time `json:"date_of_birth"`
	Weight      float64   `json:"weight"` // kilograms, minimum 50 required for donation
	Height      float64   `json:"height"` // centimeters

	FirstDonationDate *time.Time `json:"first_donation_date,omitempty"`
	LastDonationDate  *time.Time `json:"last_donation_date,omitempty"`
	TotalDonations    int        `json:"total_donations" gorm:"default:0"`

	IsEligible      bool       `json:"is_eligible" gorm:"default:true"`
	IneligibleUntil *time.Time `json:"ineligible_until,omitempty"`
	HealthNotes     string     `json:"health_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User      *User      `json:"-" gorm:"foreignKey:UserID"`
	Donations []Donation `json:"donations" gorm:"foreignKey:DonorID"`
}
