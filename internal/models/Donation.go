package models

import "time"

// Donation statuses as exposed on the wire.
const (
	DonationScheduled = "SCHEDULED"
	DonationCompleted = "COMPLETED"
	DonationCanceled  = "CANCELED"
)

type Donation struct {
	ID             uint  `json:"id" gorm:"primaryKey"`
	DonorID        uint  `json:"donor_id"`
	HospitalID     uint  `json:"hospital_id"`
	BloodRequestID *uint `json:"blood_request_id,omitempty"`

	BloodType     string    `json:"blood_type"`
	BloodAmountML int       `json:"blood_amount_ml"`
	DonationDate  time.Time `json:"donation_date"`
	Status        string    `json:"status" gorm:"default:SCHEDULED"`
	Notes         string    `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hospital *Hospital `json:"hospital,omitempty" gorm:"foreignKey:HospitalID"`
}
