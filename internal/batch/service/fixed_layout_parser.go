// Package service provides the fixed-layout batch file parser.
package service

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	apperrors "github.com/allisson/cardvault/internal/errors"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// maxLineBytes bounds a single line. Real lines are about 50 bytes.
const maxLineBytes = 64 * 1024

// FixedLayoutParser parses the header/detail/trailer layout.
type FixedLayoutParser struct {
	requireTrailer bool
}

// NewFixedLayoutParser creates a parser. When requireTrailer is set a file that
// ends without a trailer fails with missing_trailer.
func NewFixedLayoutParser(requireTrailer bool) *FixedLayoutParser {
	return &FixedLayoutParser{requireTrailer: requireTrailer}
}

// Parse reads the whole file and returns the batch or the first ParseError.
// Lines after the trailer are ignored.
func (p *FixedLayoutParser) Parse(r io.Reader) (*batchDomain.Batch, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, readError(1, err)
		}
		return nil, batchDomain.NewParseError(1, batchDomain.ErrMissingHeader)
	}

	header, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	batch := &batchDomain.Batch{Header: header}
	line := 1
	for scanner.Scan() {
		line++
		text := scanner.Text()

		if strings.TrimSpace(text) == "" {
			continue
		}

		if strings.HasPrefix(text, batchDomain.TrailerMarker) {
			trailer, err := parseTrailer(text, line, header, len(batch.Details))
			if err != nil {
				return nil, err
			}
			batch.Trailer = trailer
			return batch, nil
		}

		detail, err := parseDetail(text, line)
		if err != nil {
			return nil, err
		}
		batch.Details = append(batch.Details, detail)
	}
	if err := scanner.Err(); err != nil {
		return nil, readError(line+1, err)
	}

	if p.requireTrailer {
		return nil, batchDomain.NewParseError(line+1, batchDomain.ErrMissingTrailer)
	}
	return batch, nil
}

func parseHeader(text string) (batchDomain.Header, error) {
	if strings.TrimSpace(text) == "" {
		return batchDomain.Header{}, batchDomain.NewParseError(1, batchDomain.ErrMissingHeader)
	}

	date, err := time.Parse(batchDomain.HeaderDateLayout, take(text, batchDomain.HeaderDateColumn))
	if err != nil {
		return batchDomain.Header{}, batchDomain.NewParseError(1, batchDomain.ErrInvalidHeaderDate)
	}

	quantity, ok := parseCount(take(text, batchDomain.HeaderQuantityColumn))
	if !ok {
		return batchDomain.Header{}, batchDomain.NewParseError(1, batchDomain.ErrInvalidHeaderQuantity)
	}

	return batchDomain.Header{
		Name:     take(text, batchDomain.HeaderNameColumn),
		Date:     date,
		Lot:      take(text, batchDomain.HeaderLotColumn),
		Quantity: quantity,
	}, nil
}

func parseDetail(text string, line int) (batchDomain.Detail, error) {
	if text[0] != batchDomain.DetailMarker {
		return batchDomain.Detail{}, batchDomain.NewParseError(line, batchDomain.ErrInvalidIdentifier)
	}

	pan := tokenizationDomain.DigitsOnly(take(text, batchDomain.DetailPanColumn))
	if len(pan) < batchDomain.MinDetailPanDigits {
		return batchDomain.Detail{}, batchDomain.NewParseError(line, batchDomain.ErrPanLength)
	}
	if len(pan) > batchDomain.MaxDetailPanDigits {
		pan = pan[:batchDomain.MaxDetailPanDigits]
	}

	return batchDomain.Detail{
		Line:     line,
		Sequence: parseSequence(take(text, batchDomain.DetailSequenceColumn)),
		Pan:      pan,
	}, nil
}

func parseTrailer(
	text string,
	line int,
	header batchDomain.Header,
	seen int,
) (*batchDomain.Trailer, error) {
	count, ok := parseCount(take(text, batchDomain.TrailerCountColumn))
	if !ok {
		return nil, batchDomain.NewParseError(line, batchDomain.ErrInvalidTrailerQuantity)
	}

	lot := take(text, batchDomain.TrailerLotColumn)
	if lot != header.Lot {
		return nil, batchDomain.NewParseError(line, batchDomain.ErrTrailerLotMismatch)
	}
	if count != seen {
		return nil, batchDomain.NewParseError(line, batchDomain.ErrTrailerCountMismatch)
	}

	return &batchDomain.Trailer{Line: line, Lot: lot, Count: count}, nil
}

// take returns the column clamped to the line bounds with trailing whitespace removed.
func take(text string, col batchDomain.Column) string {
	start := max(0, col.Start)
	end := min(len(text), col.Start+max(0, col.Length))
	if start >= end {
		return ""
	}
	return strings.TrimRightFunc(text[start:end], unicode.IsSpace)
}

func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseSequence is lenient: an empty or non-numeric sequence is nil.
func parseSequence(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func readError(line int, err error) error {
	return apperrors.Wrap(batchDomain.NewParseError(line, batchDomain.ErrReadFailed), err.Error())
}
