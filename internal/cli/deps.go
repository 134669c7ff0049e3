package cli

import (
	"io"
	"os"

	"github.com/xolan/tlreport/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services

	// Output
	JSON    bool
	NoColor bool
}

// NewDeps creates a new Deps with the given services writing to the
// process streams
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
	}
}

// FormatOptions returns rendering options for Stdout
func (d *Deps) FormatOptions() FormatOptions {
	return FormatOptions{
		Location: d.Services.Report.Location(),
		Color:    ColorEnabled(d.Stdout, d.NoColor),
	}
}
