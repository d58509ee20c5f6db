package gpx

import (
	"fmt"
	"time"
)

// ReaderSettings carries the cross-cutting policy for a single parse. It is
// constructed once by the caller, never mutated mid-parse, and threaded as an
// explicit parameter through every Load call.
type ReaderSettings struct {
	// TimeZone is the zone naive timestamps (no explicit offset) are
	// interpreted in. Defaults to UTC.
	TimeZone *time.Location

	// ExtensionReader converts the children of any extensions element.
	// Defaults to the raw passthrough.
	ExtensionReader ExtensionReader
}

func DefaultReaderSettings() *ReaderSettings {
	return &ReaderSettings{
		TimeZone:        time.UTC,
		ExtensionReader: RawExtensionReader{},
	}
}

func (settings *ReaderSettings) location() *time.Location {
	if settings == nil || settings.TimeZone == nil {
		return time.UTC
	}

	return settings.TimeZone
}

func (settings *ReaderSettings) extensionReader() ExtensionReader {
	if settings == nil || settings.ExtensionReader == nil {
		return RawExtensionReader{}
	}

	return settings.ExtensionReader
}

// WriterSettings mirrors ReaderSettings for the save path.
type WriterSettings struct {
	ExtensionReader ExtensionReader
}

func DefaultWriterSettings() *WriterSettings {
	return &WriterSettings{
		ExtensionReader: RawExtensionReader{},
	}
}

func (settings *WriterSettings) extensionReader() ExtensionReader {
	if settings == nil || settings.ExtensionReader == nil {
		return RawExtensionReader{}
	}

	return settings.ExtensionReader
}

const naiveTimestampFormat = "2006-01-02T15:04:05.999999999"

func parseTimestamp(text string, settings *ReaderSettings) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return parsed, nil
	}

	parsed, err := time.ParseInLocation(naiveTimestampFormat, text, settings.location())
	if err != nil {
		return time.Time{}, &SchemaViolationError{Element: "time", Reason: fmt.Sprintf("%q is not a valid timestamp", text)}
	}

	return parsed, nil
}

func formatTimestamp(timestamp time.Time) string {
	return timestamp.Format(time.RFC3339Nano)
}
