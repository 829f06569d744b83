package messages

// Catalog messages.
const (
	CatalogReadFailedFmt    = "failed to read catalog %s: %w"
	CatalogParseFailedFmt   = "failed to parse catalog %s: %w"
	CatalogExpandPathFmt    = "failed to expand catalog path %s: %w"
	CatalogEmpty            = "catalog has no categories"
	CatalogCategoryNoName   = "catalog category is missing a name"
	CatalogAppIncompleteFmt = "catalog app %q in %q is missing a name or package"
)
