package form

import "fmt"

// IndexError reports an entry index outside the list.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("entry index %d out of range [0, %d)", e.Index, e.Len)
}

// SectionError reports an unknown section name.
type SectionError struct {
	Section string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// PatchError reports a patch that could not be decoded into its target, such
// as a malformed date or a value of the wrong type.
type PatchError struct {
	Target string
	Cause  error
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("invalid %s patch: %v", e.Target, e.Cause)
}

func (e *PatchError) Unwrap() error {
	return e.Cause
}
