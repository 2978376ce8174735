package webui

// RoleBadge is one "Роль" tag pair rendered for an active role flag.
type RoleBadge struct {
	Label string // always "Роль"
	Name  string
	Color string // Bulma tag modifier
}

const badgeLabel = "Роль"

// RoleBadges maps the user's role flags to badges, one per true flag, in a
// fixed order with the fixed color mapping. The same list feeds the main
// content area and the sidebar summary.
func RoleBadges(user UserRecord) []RoleBadge {
	var badges []RoleBadge
	add := func(name, color string) {
		badges = append(badges, RoleBadge{Label: badgeLabel, Name: name, Color: color})
	}

	if user.IsUser {
		add("Користувач", "is-info")
	}
	if user.IsDonor {
		add("Донор", "is-danger")
	}
	if user.IsHospitalStaff {
		add("Працівник лікарні", "is-success")
	}
	if user.IsAdmin {
		add("Адміністратор", "is-warning")
	}
	if user.IsSuperAdmin {
		add("Супер Адмін", "is-primary")
	}
	return badges
}
