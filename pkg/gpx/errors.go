package gpx

import "fmt"

// SchemaViolationError means the document disagrees with the GPX 1.1 schema:
// a required attribute or element is missing, or a value's text isn't of the
// schema type. Always fatal to the enclosing load.
type SchemaViolationError struct {
	Element string
	Field   string
	Reason  string
}

func (e *SchemaViolationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("gpx: %s: %s: %s", e.Element, e.Field, e.Reason)
	}

	return fmt.Sprintf("gpx: %s: %s", e.Element, e.Reason)
}

// RangeViolationError means a value parsed fine but sits outside the legal
// interval for its type. Out of range input is rejected, never clamped or
// wrapped.
type RangeViolationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeViolationError) Error() string {
	return fmt.Sprintf("gpx: %s value %s outside of [%s, %s]",
		e.Field, formatDecimal(e.Value), formatDecimal(e.Min), formatDecimal(e.Max))
}

// ExtensionConversionError wraps a failure from a configured ExtensionReader.
// The default passthrough reader never produces one.
type ExtensionConversionError struct {
	Err error
}

func (e *ExtensionConversionError) Error() string {
	return fmt.Sprintf("gpx: extension conversion: %s", e.Err)
}

func (e *ExtensionConversionError) Unwrap() error {
	return e.Err
}
