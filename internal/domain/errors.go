package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/splice/internal/model"
)

var (
	// ErrAnchorNotFound is matched by every *AnchorNotFoundError.
	ErrAnchorNotFound = errors.New("anchor not found")
	// ErrInvalidRegion is matched by every *InvalidRegionError.
	ErrInvalidRegion = errors.New("invalid region")
	// ErrEncodingMismatch is returned when recipes for one file name different encodings.
	ErrEncodingMismatch = errors.New("recipes for the same file use different encodings")
	// ErrNotRegularFile is returned when a recipe targets a directory or a device.
	ErrNotRegularFile = errors.New("not a regular file")
)

// AnchorNotFoundError reports an anchor missing from the scanned line range.
// From and To are the first and last line indices examined, in scan order.
type AnchorNotFoundError struct {
	Role   m.MatchRole
	Anchor m.Anchor
	From   int
	To     int
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("%s anchor %q not found in lines %d..%d", e.Role, e.Anchor, e.From+1, e.To+1)
}

// Is makes errors.Is(err, ErrAnchorNotFound) hold.
func (e *AnchorNotFoundError) Is(target error) bool {
	return target == ErrAnchorNotFound
}

// InvalidRegionError reports a region violating 0 <= Start <= End <= Len.
type InvalidRegionError struct {
	Region m.Region
	Len    int
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("region [%d, %d) is invalid for a document of %d lines", e.Region.Start, e.Region.End, e.Len)
}

// Is makes errors.Is(err, ErrInvalidRegion) hold.
func (e *InvalidRegionError) Is(target error) bool {
	return target == ErrInvalidRegion
}
