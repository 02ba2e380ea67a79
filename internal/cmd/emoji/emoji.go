// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents a failed operation.
	Error = "✗"

	// Warning represents a non-fatal issue such as running offline.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"

	// Enabled marks a tweak that is switched on.
	Enabled = "●"

	// Disabled marks a tweak that is switched off.
	Disabled = "○"

	// Irreversible is appended to the state of a tweak without an off command.
	Irreversible = "*"
)
