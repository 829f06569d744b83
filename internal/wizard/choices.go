package wizard

import (
	"github.com/conn-castle/appdeck/internal/catalog"
	"github.com/conn-castle/appdeck/internal/installer"
)

// Choices tracks user selections in the wizard.
type Choices struct {
	// Selected maps a category name to the package ids chosen in it.
	Selected map[string][]string
}

// NewChoices returns an empty Choices.
func NewChoices() *Choices {
	return &Choices{Selected: make(map[string][]string)}
}

// Requests flattens the selections into install requests following catalog
// display order, so the run processes apps in the order the user saw them.
func (c *Choices) Requests(cat *catalog.Catalog) []installer.Request {
	var requests []installer.Request
	for _, category := range cat.Categories {
		chosen := make(map[string]bool, len(c.Selected[category.Name]))
		for _, pkg := range c.Selected[category.Name] {
			chosen[pkg] = true
		}
		for _, app := range category.Apps {
			if chosen[app.Package] {
				requests = append(requests, app.Request())
			}
		}
	}
	return requests
}
