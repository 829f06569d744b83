// Package catalog holds the table of installable applications grouped by
// category. The built-in catalog is embedded; a user-supplied TOML file can
// replace it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/appdeck/internal/installer"
	"github.com/conn-castle/appdeck/internal/messages"
)

//go:embed catalog.toml
var defaultCatalogTOML []byte

// App is one installable application.
type App struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Package     string `toml:"package"`
}

// Category groups apps under a display heading.
type Category struct {
	Name string `toml:"name"`
	Apps []App  `toml:"apps"`
}

// Catalog is the full application table in display order.
type Catalog struct {
	Categories []Category `toml:"categories"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return parse(defaultCatalogTOML, "built-in catalog")
}

// LoadFile reads a catalog from a TOML file. A leading ~ in path is expanded
// to the user's home directory.
func LoadFile(path string) (*Catalog, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogExpandPathFmt, path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogReadFailedFmt, expanded, err)
	}
	return parse(data, expanded)
}

func parse(data []byte, source string) (*Catalog, error) {
	var cat Catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf(messages.CatalogParseFailedFmt, source, err)
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf(messages.CatalogParseFailedFmt, source, err)
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	if len(c.Categories) == 0 {
		return errors.New(messages.CatalogEmpty)
	}
	for _, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return errors.New(messages.CatalogCategoryNoName)
		}
		for _, app := range cat.Apps {
			if strings.TrimSpace(app.Name) == "" || strings.TrimSpace(app.Package) == "" {
				return fmt.Errorf(messages.CatalogAppIncompleteFmt, app.Name, cat.Name)
			}
		}
	}
	return nil
}

// FindApp looks up an app by display name or package id, case-insensitively.
func (c *Catalog) FindApp(name string) (App, bool) {
	for _, cat := range c.Categories {
		for _, app := range cat.Apps {
			if strings.EqualFold(app.Name, name) || app.Package == name {
				return app, true
			}
		}
	}
	return App{}, false
}

// Requests maps names onto install requests, preserving argument order.
// Names not present in the catalog pass through as raw package identifiers;
// the orchestrator validates them like any other id.
func (c *Catalog) Requests(names []string) []installer.Request {
	requests := make([]installer.Request, 0, len(names))
	for _, name := range names {
		if app, ok := c.FindApp(name); ok {
			requests = append(requests, installer.Request{DisplayName: app.Name, PackageID: app.Package})
			continue
		}
		requests = append(requests, installer.Request{DisplayName: name, PackageID: name})
	}
	return requests
}

// Request returns the install request for a single app.
func (a App) Request() installer.Request {
	return installer.Request{DisplayName: a.Name, PackageID: a.Package}
}
