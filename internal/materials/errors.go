package materials

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidSubType is returned when a material variant is not present in
	// the table of its category.
	ErrInvalidSubType = constError("invalid material sub-type")

	// ErrUnknownCategory is returned for identifiers outside Categories().
	ErrUnknownCategory = constError("unknown material category")
)

// SubTypeError names the category and variant that failed a lookup.
type SubTypeError struct {
	Category Category
	Kind     string
	SubType  string
}

func (e *SubTypeError) Error() string {
	return fmt.Sprintf("%s: unknown %s %s %q", ErrInvalidSubType, e.Category, e.Kind, e.SubType)
}

func (e *SubTypeError) Unwrap() error { return ErrInvalidSubType }

func subTypeErr(c Category, kind, id string) error {
	return &SubTypeError{Category: c, Kind: kind, SubType: id}
}
