package domain

import "io"

// PageRenderer renders a named HTML page with the given data.
type PageRenderer interface {
	Render(w io.Writer, page string, data any) error
}
