package httpapi

import (
	"fmt"
	"strings"

	app "github.com/groceryworks/listd/internal/app"
)

// renderDocs produces the plain-text API listing served at /docs, which the
// welcome message links to.
func renderDocs() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s v%s\n\n", app.ServiceName, app.Version)
	b.WriteString("Endpoints:\n")
	b.WriteString("  GET    /             Welcome message\n")
	b.WriteString("  POST   /items        Add an item: {\"name\": \"Milk\"} (1-100 chars)\n")
	b.WriteString("  GET    /items        List all items\n")
	b.WriteString("  DELETE /items/{name} Remove one item (case-insensitive)\n")
	b.WriteString("  DELETE /items        Clear the list\n")
	b.WriteString("  GET    /items/count  Count items\n")
	b.WriteString("  GET    /health       Health check\n")
	b.WriteString("  GET    /metrics      Prometheus metrics\n")
	b.WriteString("\nItem names are stored title-cased; duplicates are rejected case-insensitively.\n")
	return b.String()
}
