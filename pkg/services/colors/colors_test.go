package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFor_Stable(t *testing.T) {
	first := ColorFor("Ana Gomez", CampaignPalette)
	second := ColorFor("Ana Gomez", CampaignPalette)
	assert.Equal(t, first, second)
	assert.Contains(t, CampaignPalette, first)
}

func TestColorFor_EmptyName(t *testing.T) {
	assert.Equal(t, DefaultColor, ColorFor("", CampaignPalette))
	assert.Equal(t, DefaultColor, ColorFor("", DeveloperPalette))
	assert.NotContains(t, CampaignPalette, DefaultColor)
	assert.NotContains(t, DeveloperPalette, DefaultColor)
}

func TestColorFor_KnownHash(t *testing.T) {
	// hash("a") = 97, so the index is 97 % len(palette).
	assert.Equal(t, CampaignPalette[97%len(CampaignPalette)], ColorFor("a", CampaignPalette))
	// hash("ab") = 97*31 + 98 = 3105.
	assert.Equal(t, DeveloperPalette[3105%len(DeveloperPalette)], ColorFor("ab", DeveloperPalette))
}

func TestColorFor_PaletteAgnostic(t *testing.T) {
	// Same name, different domains: both deterministic, independently.
	assert.Contains(t, CampaignPalette, ColorFor("Campaña Norte", CampaignPalette))
	assert.Contains(t, DeveloperPalette, ColorFor("Campaña Norte", DeveloperPalette))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#22c55e", StatusColor("Entregado"))
	assert.Equal(t, "#eab308", StatusColor("EN PROCESO"))
	assert.Equal(t, DefaultColor, StatusColor("algo raro"))
	assert.Equal(t, DefaultColor, StatusColor(""))
}
