package main

import (
	"fmt"
	"os"

	"go-course-advisor-backend/internal/repository/jsoncatalog"
)

// Sanity-checks a catalog file before deployment: prints the course count and
// categories, exits non-zero when the catalog fails to load or is empty.
func main() {
	path := "data/course_catalog.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store := jsoncatalog.NewStore(path)
	if store.Count() == 0 {
		fmt.Fprintf(os.Stderr, "catalog %s is empty or unreadable\n", path)
		os.Exit(1)
	}

	fmt.Printf("catalog %s: %d courses\n", path, store.Count())
	for _, category := range store.Categories() {
		fmt.Printf("  %s\n", category)
	}
}
