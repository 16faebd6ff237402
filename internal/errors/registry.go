package errors

import (
	"maps"
	"slices"
	"sync"
)

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

var (
	registryMu sync.RWMutex

	// registry maps error codes to their templates.
	registry = map[string]Template{
		// Configuration (F100-F199)
		"F100": {
			Category: CategoryConfig,
			Message:  "Cannot read configuration file",
		},
		"F101": {
			Category:   CategoryConfig,
			Message:    "Invalid configuration file",
			Detail:     "The file could not be parsed. Unknown keys are rejected.",
			Suggestion: "Compare the file with the output of 'funhtml config'",
		},
		"F102": {
			Category: CategoryConfig,
			Message:  "Invalid configuration value",
		},

		// Rendering (F200-F299)
		"F200": {
			Category: CategoryRender,
			Message:  "Cannot read input",
		},
		"F201": {
			Category: CategoryRender,
			Message:  "Markdown conversion failed",
		},
		"F202": {
			Category: CategoryRender,
			Message:  "Cannot write output",
		},
		"F203": {
			Category:   CategoryRender,
			Message:    "Invalid front matter",
			Detail:     "The YAML block between the leading '---' lines could not be parsed.",
			Suggestion: "Only title, lang and description are accepted",
		},

		// Preview server (F300-F399)
		"F300": {
			Category:   CategoryServe,
			Message:    "Preview server failed",
			Suggestion: "Check that the port is free or pass --port",
		},
		"F301": {
			Category: CategoryServe,
			Message:  "Not a directory",
		},

		// Publishing (F400-F499)
		"F400": {
			Category:   CategoryPublish,
			Message:    "No bucket configured",
			Suggestion: "Pass --bucket or set publish.bucket in the configuration file",
		},
		"F401": {
			Category:   CategoryPublish,
			Message:    "Missing storage credentials",
			Suggestion: "Set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY",
		},
		"F402": {
			Category: CategoryPublish,
			Message:  "Upload failed",
		},

		// CLI (F500-F599)
		"F500": {
			Category: CategoryCLI,
			Message:  "Invalid arguments",
		},
	}
)

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template Template) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[code] = template
}
