package quant

import "errors"

type unknownTagError struct{ tag string }

func (e unknownTagError) Error() string { return "quantization tag '" + e.tag + "' not recognized" }

// ErrUnknownTag returns the error reported when tag is absent from a Table.
func ErrUnknownTag(tag string) error { return unknownTagError{tag: tag} }

// IsUnknownTag reports whether err indicates a lookup miss.
func IsUnknownTag(err error) bool {
	var ute unknownTagError
	return errors.As(err, &ute)
}
