package webui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleBadgesColorsAndOrder(t *testing.T) {
	user := UserRecord{
		IsUser:          true,
		IsDonor:         true,
		IsHospitalStaff: true,
		IsAdmin:         true,
		IsSuperAdmin:    true,
	}

	badges := RoleBadges(user)

	want := []RoleBadge{
		{Label: "Роль", Name: "Користувач", Color: "is-info"},
		{Label: "Роль", Name: "Донор", Color: "is-danger"},
		{Label: "Роль", Name: "Працівник лікарні", Color: "is-success"},
		{Label: "Роль", Name: "Адміністратор", Color: "is-warning"},
		{Label: "Роль", Name: "Супер Адмін", Color: "is-primary"},
	}
	assert.Equal(t, want, badges)
}

func TestRoleBadgesOnlyActiveFlags(t *testing.T) {
	badges := RoleBadges(UserRecord{IsUser: true, IsDonor: true})

	assert.Len(t, badges, 2)
	assert.Equal(t, "Користувач", badges[0].Name)
	assert.Equal(t, "Донор", badges[1].Name)
}

func TestRoleBadgesNoFlags(t *testing.T) {
	assert.Empty(t, RoleBadges(UserRecord{}))
}

func TestRoleBadgesAllFlagCombinations(t *testing.T) {
	names := []string{"Користувач", "Донор", "Працівник лікарні", "Адміністратор", "Супер Адмін"}

	for mask := 0; mask < 32; mask++ {
		user := UserRecord{
			IsUser:          mask&1 != 0,
			IsDonor:         mask&2 != 0,
			IsHospitalStaff: mask&4 != 0,
			IsAdmin:         mask&8 != 0,
			IsSuperAdmin:    mask&16 != 0,
		}
		badges := RoleBadges(user)

		var wantNames []string
		for bit, name := range names {
			if mask&(1<<bit) != 0 {
				wantNames = append(wantNames, name)
			}
		}

		require.Len(t, badges, len(wantNames), "mask %05b", mask)
		for i, badge := range badges {
			assert.Equal(t, wantNames[i], badge.Name, "mask %05b", mask)
			assert.Equal(t, "Роль", badge.Label)
		}
	}
}
