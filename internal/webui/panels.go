package webui

// PanelSet is the profile page's tab state: a fixed set of named panels of
// which at most one is visible. It is an explicit value passed to the
// template rather than ambient global state; Switch is the only transition.
type PanelSet struct {
	IDs    []string
	Active string
}

// ProfilePanels returns the profile page panel set with its initial
// active panel.
func ProfilePanels() PanelSet {
	return PanelSet{
		IDs: []string{
			"profile-overview",
			"profile-edit",
			"password-change",
			"donor-section",
			"hospital-section",
			"admin-section",
		},
		Active: "profile-overview",
	}
}

// Has reports whether id names one of the set's panels.
func (p PanelSet) Has(id string) bool {
	for _, known := range p.IDs {
		if known == id {
			return true
		}
	}
	return false
}

// Switch hides every panel and shows only id. When id names no panel the
// hide-all step still applies, so no panel stays visible, and no error is
// raised.
func (p PanelSet) Switch(id string) PanelSet {
	next := p
	if next.Has(id) {
		next.Active = id
	} else {
		next.Active = ""
	}
	return next
}

// IsActive reports whether id is the visible panel.
func (p PanelSet) IsActive(id string) bool {
	return p.Active != "" && p.Active == id
}
