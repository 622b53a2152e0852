package cmd

import (
	"fmt"
	"os"
)

// printEmptyResult prints a "no results" message with a create hint
// resourceType: "favorite locations", etc.
// createCmd: the command to create the resource
func printEmptyResult(resourceType, createCmd string) {
	_, _ = fmt.Fprintf(os.Stdout, "No %s saved.\n", resourceType)
	_, _ = fmt.Fprintf(os.Stdout, "Add one with: %s\n", dimStyle.Render(createCmd))
}
