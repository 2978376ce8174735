package webui

import "fmt"

// StatusBadge is a colored status label in a table cell. Color is empty for
// statuses outside the fixed mapping.
type StatusBadge struct {
	Text  string
	Color string
}

var donationStatusColors = map[string]string{
	"SCHEDULED": "is-warning",
	"COMPLETED": "is-success",
	"CANCELED":  "is-danger",
}

var requestStatusColors = map[string]string{
	"ACTIVE":    "is-warning",
	"FULFILLED": "is-success",
	"CANCELED":  "is-danger",
	"EXPIRED":   "is-light",
}

func statusBadge(colors map[string]string, status string) StatusBadge {
	return StatusBadge{Text: status, Color: colors[status]}
}

type DonationRow struct {
	ID        uint
	Date      string
	Hospital  string
	Volume    string
	Status    StatusBadge
	DetailURL string
}

// DonationTable renders the donor's donation history. When Placeholder is
// non-empty the table shows that single row spanning all columns.
type DonationTable struct {
	Placeholder string
	Rows        []DonationRow
}

// BuildDonationTable maps donation records to table rows, in input order.
func BuildDonationTable(donations []DonationRecord) DonationTable {
	if len(donations) == 0 {
		return DonationTable{Placeholder: "Немає записів про донації"}
	}

	rows := make([]DonationRow, 0, len(donations))
	for _, donation := range donations {
		hospital := "-"
		if donation.Hospital != nil && donation.Hospital.Name != "" {
			hospital = donation.Hospital.Name
		}
		rows = append(rows, DonationRow{
			ID:        donation.ID,
			Date:      FormatDate(donation.DonationDate),
			Hospital:  hospital,
			Volume:    fmt.Sprintf("%d мл", donation.BloodAmountML),
			Status:    statusBadge(donationStatusColors, donation.Status),
			DetailURL: fmt.Sprintf("/pages/donations/%d", donation.ID),
		})
	}
	return DonationTable{Rows: rows}
}

type RequestRow struct {
	ID            uint
	Date          string
	BloodType     string
	Volume        string
	Status        StatusBadge
	DonationCount int
	DetailURL     string
}

// RequestTable renders a hospital's blood requests.
type RequestTable struct {
	Placeholder string
	Rows        []RequestRow
}

// BuildRequestTable maps blood request records to table rows, in input order.
func BuildRequestTable(requests []BloodRequestRecord) RequestTable {
	if len(requests) == 0 {
		return RequestTable{Placeholder: "Немає записів про запити на кров"}
	}

	rows := make([]RequestRow, 0, len(requests))
	for _, request := range requests {
		rows = append(rows, RequestRow{
			ID:            request.ID,
			Date:          FormatDate(request.RequestDate),
			BloodType:     request.BloodType,
			Volume:        fmt.Sprintf("%d мл", request.BloodAmountML),
			Status:        statusBadge(requestStatusColors, request.Status),
			DonationCount: len(request.Donations),
			DetailURL:     fmt.Sprintf("/pages/blood-requests/%d", request.ID),
		})
	}
	return RequestTable{Rows: rows}
}
