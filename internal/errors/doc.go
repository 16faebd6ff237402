// Package errors provides structured, actionable error messages for the
// funhtml command.
//
// Each error carries a code, a category, a short message, and optionally
// a longer detail, a hint on how to fix it, the file it concerns and the
// underlying cause. Library packages return plain Go errors; the CLI
// converts them to this type at its boundary so users see one consistent
// format.
//
// # Error Categories
//
//   - config: the configuration file cannot be read or is invalid
//   - render: Markdown input cannot be read or converted
//   - serve: the preview server failed
//   - publish: uploading to object storage failed
//   - cli: invalid arguments or flags
//
// # Usage
//
//	err := errors.New("F101").
//	    WithFile("funhtml.yaml").
//	    WithSuggestion("Check the indentation of the serve block").
//	    Wrap(parseErr)
//
//	fmt.Print(err.Format())
//	// ERROR F101: Invalid configuration file
//	//
//	//   funhtml.yaml
//	//
//	//   Hint: Check the indentation of the serve block
package errors
