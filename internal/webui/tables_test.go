package webui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDonationTableEmpty(t *testing.T) {
	table := BuildDonationTable(nil)

	assert.Equal(t, "Немає записів про донації", table.Placeholder)
	assert.Empty(t, table.Rows)
}

func TestBuildDonationTableRows(t *testing.T) {
	donations := []DonationRecord{
		{
			ID:            7,
			DonationDate:  time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC),
			BloodAmountML: 450,
			Status:        "COMPLETED",
			Hospital:      &HospitalRef{ID: 3, Name: "Охматдит"},
		},
		{
			ID:            8,
			DonationDate:  time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			BloodAmountML: 300,
			Status:        "SCHEDULED",
		},
	}

	table := BuildDonationTable(donations)

	assert.Empty(t, table.Placeholder)
	assert.Len(t, table.Rows, 2)

	first := table.Rows[0]
	assert.Equal(t, uint(7), first.ID)
	assert.Equal(t, "02.05.2024", first.Date)
	assert.Equal(t, "Охматдит", first.Hospital)
	assert.Equal(t, "450 мл", first.Volume)
	assert.Equal(t, StatusBadge{Text: "COMPLETED", Color: "is-success"}, first.Status)
	assert.Equal(t, "/pages/donations/7", first.DetailURL)

	second := table.Rows[1]
	assert.Equal(t, "-", second.Hospital)
	assert.Equal(t, StatusBadge{Text: "SCHEDULED", Color: "is-warning"}, second.Status)
}

func TestDonationStatusColors(t *testing.T) {
	table := BuildDonationTable([]DonationRecord{{Status: "CANCELED"}})
	assert.Equal(t, "is-danger", table.Rows[0].Status.Color)

	table = BuildDonationTable([]DonationRecord{{Status: "UNKNOWN"}})
	assert.Equal(t, "", table.Rows[0].Status.Color)
	assert.Equal(t, "UNKNOWN", table.Rows[0].Status.Text)
}

func TestBuildRequestTableEmpty(t *testing.T) {
	table := BuildRequestTable(nil)

	assert.Equal(t, "Немає записів про запити на кров", table.Placeholder)
	assert.Empty(t, table.Rows)
}

func TestBuildRequestTableRows(t *testing.T) {
	requests := []BloodRequestRecord{
		{
			ID:            12,
			RequestDate:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			BloodType:     "O+",
			BloodAmountML: 900,
			Status:        "ACTIVE",
			Donations:     []DonationRecord{{ID: 1}, {ID: 2}},
		},
	}

	table := BuildRequestTable(requests)

	assert.Empty(t, table.Placeholder)
	row := table.Rows[0]
	assert.Equal(t, uint(12), row.ID)
	assert.Equal(t, "15.01.2024", row.Date)
	assert.Equal(t, "O+", row.BloodType)
	assert.Equal(t, "900 мл", row.Volume)
	assert.Equal(t, StatusBadge{Text: "ACTIVE", Color: "is-warning"}, row.Status)
	assert.Equal(t, 2, row.DonationCount)
	assert.Equal(t, "/pages/blood-requests/12", row.DetailURL)
}

func TestRequestStatusColors(t *testing.T) {
	for status, color := range map[string]string{
		"ACTIVE":    "is-warning",
		"FULFILLED": "is-success",
		"CANCELED":  "is-danger",
		"EXPIRED":   "is-light",
	} {
		table := BuildRequestTable([]BloodRequestRecord{{Status: status}})
		assert.Equal(t, color, table.Rows[0].Status.Color, status)
	}
}
