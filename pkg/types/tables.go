package types

// Standard table names for Catalog.GetTable.
const (
	ItemsTable     = "items"
	DocumentsTable = "documents"
	WebsitesTable  = "websites"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	ItemsTable,
	DocumentsTable,
	WebsitesTable,
}
