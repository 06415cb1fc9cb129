package domain

// Fixed layout markers.
const (
	// DetailMarker is the first byte of every detail line.
	DetailMarker = 'C'
	// TrailerMarker starts the trailer line.
	TrailerMarker = "LOTE"
	// HeaderDateLayout is the reference date format of the header.
	HeaderDateLayout = "20060102"
)

// Detail PAN bounds. The upper bound is the longest PAN the layout can carry;
// the tokenizer applies its own stricter limit.
const (
	MinDetailPanDigits = 12
	MaxDetailPanDigits = 19
)

// Defaults applied to cards coming from a batch file, which carries neither
// brand nor expiry.
const (
	IngestBrand       = "UNKNOWN"
	IngestExpiryMonth = 12
	IngestExpiryYear  = 2099
)

// Column is a fixed byte range [Start, Start+Length) of a line.
type Column struct {
	Start  int
	Length int
}

// Header columns.
var (
	HeaderNameColumn     = Column{Start: 0, Length: 29}
	HeaderDateColumn     = Column{Start: 29, Length: 8}
	HeaderLotColumn      = Column{Start: 37, Length: 8}
	HeaderQuantityColumn = Column{Start: 45, Length: 6}
)

// Detail columns.
var (
	DetailSequenceColumn = Column{Start: 1, Length: 6}
	DetailPanColumn      = Column{Start: 7, Length: 19}
)

// Trailer columns.
var (
	TrailerLotColumn   = Column{Start: 0, Length: 8}
	TrailerCountColumn = Column{Start: 8, Length: 6}
)
