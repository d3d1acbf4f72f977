package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// ReportFormat names the documents written by SealReport.
	ReportFormat = "genebits.report"
	// ReportVersion is the layout version written by SealReport. Version 1
	// carries bit offsets for genes and the mutation arithmetic selected by
	// the analyzer.
	ReportVersion = 1
)

var (
	// ErrUnknownFormat is returned when a document is not a report.
	ErrUnknownFormat = errors.New("codec: unknown document format")
	// ErrUnsupportedVersion is returned for a report layout newer than
	// ReportVersion.
	ErrUnsupportedVersion = errors.New("codec: unsupported report version")
	// ErrUnknownCodec is returned when a report names a codec ByName does
	// not know.
	ErrUnknownCodec = errors.New("codec: unknown codec")
)

// Envelope wraps an encoded report with its format, layout version and the
// name of the codec that encoded the body.
type Envelope struct {
	Format  string          `json:"format"`
	Version int             `json:"version"`
	Codec   string          `json:"codec"`
	Report  json.RawMessage `json:"report"`
}

// SealReport encodes report with c and wraps it in an Envelope.
func SealReport(c Codec, report any) ([]byte, error) {
	if c == nil {
		c = Default
	}
	body, err := c.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return c.Marshal(Envelope{
		Format:  ReportFormat,
		Version: ReportVersion,
		Codec:   c.Name(),
		Report:  body,
	})
}

// OpenReport decodes a document written by SealReport into report, using
// the codec recorded in the envelope. It returns the envelope header.
func OpenReport(data []byte, report any) (Envelope, error) {
	var env Envelope
	if err := Default.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}
	if env.Format != ReportFormat {
		return env, fmt.Errorf("%w: %q", ErrUnknownFormat, env.Format)
	}
	if env.Version < 1 || env.Version > ReportVersion {
		return env, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	c, ok := ByName(env.Codec)
	if !ok {
		return env, fmt.Errorf("%w: %q", ErrUnknownCodec, env.Codec)
	}
	if err := c.Unmarshal(env.Report, report); err != nil {
		return env, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return env, nil
}
