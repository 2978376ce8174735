package webui

import "time"

// Records the page layer decodes from the REST backend. Optional sections
// are modeled as slices/pointers with explicit presence checks instead of
// duck-typed lookups.

type UserRecord struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`

	IsUser          bool `json:"is_user"`
	IsAdmin         bool `json:"is_admin"`
	IsSuperAdmin    bool `json:"is_super_admin"`
	IsDonor         bool `json:"is_donor"`
	IsHospitalStaff bool `json:"is_hospital_staff"`

	CreatedAt time.Time `json:"created_at"`

	DonorProfile         []DonorProfile `json:"donor_profile"`
	HospitalStaffProfile []StaffProfile `json:"hospital_staff_profile"`
}

func (u *UserRecord) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Donor returns the first donor profile entry, or nil. The backend keeps
// the profile as a list; only the first entry is meaningful here.
func (u *UserRecord) Donor() *DonorProfile {
	if len(u.DonorProfile) == 0 {
		return nil
	}
	return &u.DonorProfile[0]
}

// Staff returns the first hospital staff profile entry, or nil.
func (u *UserRecord) Staff() *StaffProfile {
	if len(u.HospitalStaffProfile) == 0 {
		return nil
	}
	return &u.HospitalStaffProfile[0]
}

type DonorProfile struct {
	BloodType   string           `json:"blood_type"`
	Gender      string           `json:"gender"`
	DateOfBirth time.Time        `json:"date_of_birth"`
	Weight      float64          `json:"weight"`
	Height      float64          `json:"height"`
	HealthNotes string           `json:"health_notes"`
	IsEligible  bool             `json:"is_eligible"`
	Donations   []DonationRecord `json:"donations"`
}

type DonationRecord struct {
	ID            uint         `json:"id"`
	DonationDate  time.Time    `json:"donation_date"`
	BloodAmountML int          `json:"blood_amount_ml"`
	Status        string       `json:"status"`
	Hospital      *HospitalRef `json:"hospital"`
}

type HospitalRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type StaffProfile struct {
	HospitalID uint         `json:"hospital_id"`
	Role       string       `json:"role"`
	Department string       `json:"department"`
	Hospital   *HospitalRef `json:"hospital"`
}

type BloodRequestRecord struct {
	ID            uint             `json:"id"`
	RequestDate   time.Time        `json:"request_date"`
	BloodType     string           `json:"blood_type"`
	BloodAmountML int              `json:"blood_amount_ml"`
	Status        string           `json:"status"`
	Donations     []DonationRecord `json:"donations"`
}

type HospitalStats struct {
	ActiveRequests     int `json:"active_requests"`
	ScheduledDonations int `json:"scheduled_donations"`
	CompletedDonations int `json:"completed_donations"`
	StaffCount         int `json:"staff_count"`
	BloodRequestsCount int `json:"blood_requests_count"`
}

type AdminStats struct {
	UserCount         int `json:"user_count"`
	HospitalCount     int `json:"hospital_count"`
	BloodRequestCount int `json:"blood_request_count"`
}
