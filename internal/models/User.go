package models

import "time"

type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" gorm:"unique"`
	PhoneNumber string `json:"phone_number" gorm:"unique"`
	Password    string `json:"-"`

	// Role flags are independent booleans: a user may hold several roles at once.
	IsUser          bool `json:"is_user" gorm:"default:true"`
	IsAdmin         bool `json:"is_admin" gorm:"default:false"`
	IsSuperAdmin    bool `json:"is_super_admin" gorm:"default:false"`
	IsDonor         bool `json:"is_donor" gorm:"default:false"`
	IsHospitalStaff bool `json:"is_hospital_staff" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DonorProfile         []Donor         `json:"donor_profile,omitempty" gorm:"foreignKey:UserID"`
	HospitalStaffProfile []HospitalStaff `json:"hospital_staff_profile,omitempty" gorm:"foreignKey:UserID"`
}
