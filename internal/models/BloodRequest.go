package models

import "time"

// Blood request statuses as exposed on the wire.
const (
	RequestActive    = "ACTIVE"
	RequestFulfilled = "FULFILLED"
	RequestCanceled  = "CANCELED"
	RequestExpired   = "EXPIRED"
)

type BloodRequest struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	HospitalID uint `json:"hospital_id"`
	StaffID    uint `json:"staff_id"`

	BloodType     string `json:"blood_type"`
	BloodAmountML int    `json:"blood_amount_ml"`
	UrgencyLevel  int    `json:"urgency_level" gorm:"default:1"` // 1 (routine) to 5 (critical)
	PatientInfo   string `json:"patient_info"`
	Status        string `json:"status" gorm:"default:ACTIVE"`

	RequestDate  time.Time  `json:"request_date"`
	NeededByDate *time.Time `json:"needed_by_date,omitempty"`
	Notes        string     `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hospital  *Hospital      `json:"-" gorm:"foreignKey:HospitalID"`
	Staff     *HospitalStaff `json:"-" gorm:"foreignKey:StaffID"`
	Donations []Donation     `json:"donations" gorm:"foreignKey:BloodRequestID"`
}
