package tabular

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrEmptySheet is returned by Decode when the sheet has no rows at all.
var ErrEmptySheet = errors.New("empty sheet")

// TitleBlock is the Block index reported when the sheet title itself cannot
// be encoded.
const TitleBlock = -1

// EncodePreconditionError is returned by Encode when the document cannot be
// written without losing structure. Nothing is emitted when it is returned.
//
// Besides a table row whose width differs from its header, Encode rejects
// every input that would decode back as something else:
//   - a title that starts with a marker prefix (Block is TitleBlock)
//   - a chart value that is NaN or infinite
//   - a table header whose cells are all empty
//   - a table row whose cells are all empty
//   - a table without headers that has rows
//   - a nil block or a Block type the codec does not know
//
// Reason says which of these applies.
type EncodePreconditionError struct {
	// Block is the index of the offending block, or TitleBlock.
	Block int
	// Row is the index of the offending table row, or -1.
	Row    int
	Want   int
	Got    int
	Reason string
}

func (e *EncodePreconditionError) Error() string {
	switch {
	case e.Block == TitleBlock:
		return fmt.Sprintf("cannot encode title: %s", e.Reason)
	case e.Row >= 0 && e.Want != e.Got:
		return fmt.Sprintf("cannot encode block %d: row %d has %d cells, header has %d", e.Block, e.Row, e.Got, e.Want)
	case e.Row >= 0:
		return fmt.Sprintf("cannot encode block %d: row %d: %s", e.Block, e.Row, e.Reason)
	default:
		return fmt.Sprintf("cannot encode block %d: %s", e.Block, e.Reason)
	}
}

// IsEncodePrecondition reports whether err is, or wraps, an
// *EncodePreconditionError.
func IsEncodePrecondition(err error) bool {
	var e *EncodePreconditionError
	return errors.As(err, &e)
}
