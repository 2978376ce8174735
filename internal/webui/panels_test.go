package webui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfilePanelsInitialState(t *testing.T) {
	panels := ProfilePanels()

	assert.Len(t, panels.IDs, 6)
	assert.True(t, panels.IsActive("profile-overview"))
	assert.False(t, panels.IsActive("profile-edit"))
}

func TestPanelSetSwitch(t *testing.T) {
	panels := ProfilePanels().Switch("donor-section")

	assert.True(t, panels.IsActive("donor-section"))
	assert.False(t, panels.IsActive("profile-overview"))
}

func TestPanelSetSwitchUnknownHidesAll(t *testing.T) {
	panels := ProfilePanels().Switch("no-such-panel")

	for _, id := range panels.IDs {
		assert.False(t, panels.IsActive(id), id)
	}
	assert.False(t, panels.IsActive(""))
}

func TestPanelSetHas(t *testing.T) {
	panels := ProfilePanels()
	assert.True(t, panels.Has("admin-section"))
	assert.False(t, panels.Has("settings"))
}
