package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conn-castle/appdeck/internal/catalog"
	"github.com/conn-castle/appdeck/internal/installer"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{Categories: []catalog.Category{
		{Name: "Editors", Apps: []catalog.App{
			{Name: "vim", Description: "editor", Package: "vim"},
			{Name: "Helix", Description: "modal editor", Package: "helix"},
		}},
		{Name: "Tools", Apps: []catalog.App{
			{Name: "htop", Description: "process viewer", Package: "htop"},
		}},
	}}
}

func TestChoicesRequestsFollowCatalogOrder(t *testing.T) {
	cat := testCatalog()
	choices := NewChoices()
	// Selection order within a category does not matter; catalog display
	// order decides processing order.
	choices.Selected["Tools"] = []string{"htop"}
	choices.Selected["Editors"] = []string{"helix", "vim"}

	assert.Equal(t, []installer.Request{
		{DisplayName: "vim", PackageID: "vim"},
		{DisplayName: "Helix", PackageID: "helix"},
		{DisplayName: "htop", PackageID: "htop"},
	}, choices.Requests(cat))
}

func TestChoicesEmpty(t *testing.T) {
	assert.Empty(t, NewChoices().Requests(testCatalog()))
}
