package domain

import (
	"log/slog"
	"time"
)

// Header is the first line of a batch file.
type Header struct {
	Name     string
	Date     time.Time
	Lot      string
	Quantity int
}

// Detail is one card line of a batch file. Pan holds digits only.
type Detail struct {
	Line     int
	Sequence *int
	Pan      string
}

// LogValue keeps the PAN out of logs.
func (d Detail) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("line", d.Line)}
	if d.Sequence != nil {
		attrs = append(attrs, slog.Int("sequence", *d.Sequence))
	}
	return slog.GroupValue(attrs...)
}

// Trailer is the closing line of a batch file.
type Trailer struct {
	Line  int
	Lot   string
	Count int
}

// Batch is a fully parsed and verified batch file. Trailer is nil when the file
// ended without one.
type Batch struct {
	Header  Header
	Details []Detail
	Trailer *Trailer
}
