// Package ipc implements the framed delegation protocol between the
// launcher and an engine process.
//
// The launcher writes exactly one launch frame to the engine's stdin
// and reads frames from its stdout until a result frame arrives.
// Frames are msgpack payloads behind a 4-byte big-endian length
// prefix. Unknown frame types are skipped so newer engines can emit
// progress frames an older launcher does not understand.
package ipc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/skiffrun/skiff/types"
)

// Frame size constants.
const (
	// MaxFrameSize is the maximum frame size (16 MiB), including the
	// length prefix.
	MaxFrameSize = 16 * 1024 * 1024
	// LengthPrefixSize is the size of the length prefix in bytes.
	LengthPrefixSize = 4
	// MaxPayloadSize is the maximum payload size.
	MaxPayloadSize = MaxFrameSize - LengthPrefixSize
)

// Frame type discriminants.
const (
	// LaunchType marks the launcher-to-engine launch frame.
	LaunchType = "launch"
	// ResultType marks the engine-to-launcher result frame.
	ResultType = "result"
)

// LaunchFrame carries the validated invocation options and discovered
// project root to the engine.
type LaunchFrame struct {
	Type    string                   `msgpack:"type"`
	Version string                   `msgpack:"version"`
	Root    string                   `msgpack:"root"`
	Options *types.InvocationOptions `msgpack:"options"`
}

// ResultFrame is the engine's completion report: a single success
// flag plus an optional human-readable message.
type ResultFrame struct {
	Type    string `msgpack:"type"`
	Success bool   `msgpack:"success"`
	Message string `msgpack:"message,omitempty"`
}

// FrameErrorKind classifies frame codec errors.
type FrameErrorKind int

const (
	// FrameErrorPartial indicates a truncated or incomplete frame.
	FrameErrorPartial FrameErrorKind = iota
	// FrameErrorTooLarge indicates a frame exceeding MaxFrameSize.
	FrameErrorTooLarge
	// FrameErrorDecode indicates a msgpack decoding error.
	FrameErrorDecode
)

// FrameError represents a frame codec error.
type FrameError struct {
	Kind FrameErrorKind
	Msg  string
	Err  error
}

func (e *FrameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// FrameEncoder writes length-prefixed msgpack frames to a stream.
type FrameEncoder struct {
	writer io.Writer
}

// NewFrameEncoder creates a new frame encoder.
func NewFrameEncoder(w io.Writer) *FrameEncoder {
	return &FrameEncoder{writer: w}
}

// WriteLaunch encodes and writes a launch frame. The frame's Type
// field is forced to LaunchType.
func (e *FrameEncoder) WriteLaunch(frame *LaunchFrame) error {
	frame.Type = LaunchType
	payload, err := msgpack.Marshal(frame)
	if err != nil {
		return &FrameError{Kind: FrameErrorDecode, Msg: "failed to encode launch frame", Err: err}
	}
	return e.writeFrame(payload)
}

// WriteResult encodes and writes a result frame. Engines use this on
// their side of the contract.
func (e *FrameEncoder) WriteResult(frame *ResultFrame) error {
	frame.Type = ResultType
	payload, err := msgpack.Marshal(frame)
	if err != nil {
		return &FrameError{Kind: FrameErrorDecode, Msg: "failed to encode result frame", Err: err}
	}
	return e.writeFrame(payload)
}

func (e *FrameEncoder) writeFrame(payload []byte) error {
	if len(payload) > MaxPayloadSize {
		return &FrameError{
			Kind: FrameErrorTooLarge,
			Msg:  fmt.Sprintf("payload size %d exceeds maximum %d", len(payload), MaxPayloadSize),
		}
	}

	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(payload)))

	if _, err := e.writer.Write(lengthBuf[:]); err != nil {
		return fmt.Errorf("failed to write length prefix: %w", err)
	}
	if _, err := e.writer.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// FrameDecoder decodes length-prefixed msgpack frames from a stream.
type FrameDecoder struct {
	reader io.Reader
}

// NewFrameDecoder creates a new frame decoder.
func NewFrameDecoder(r io.Reader) *FrameDecoder {
	return &FrameDecoder{reader: r}
}

// ReadFrame reads a single frame from the stream and returns the raw
// msgpack payload.
//
// Errors:
//   - io.EOF: stream ended cleanly (no more frames)
//   - *FrameError with Kind=FrameErrorPartial: incomplete frame
//   - *FrameError with Kind=FrameErrorTooLarge: frame exceeds limit
func (d *FrameDecoder) ReadFrame() ([]byte, error) {
	var lengthBuf [LengthPrefixSize]byte
	_, err := io.ReadFull(d.reader, lengthBuf[:])
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, &FrameError{
			Kind: FrameErrorPartial,
			Msg:  "failed to read length prefix",
			Err:  err,
		}
	}

	payloadSize := binary.BigEndian.Uint32(lengthBuf[:])
	if payloadSize > MaxPayloadSize {
		return nil, &FrameError{
			Kind: FrameErrorTooLarge,
			Msg:  fmt.Sprintf("payload size %d exceeds maximum %d", payloadSize, MaxPayloadSize),
		}
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(d.reader, payload); err != nil {
		return nil, &FrameError{
			Kind: FrameErrorPartial,
			Msg:  "failed to read payload",
			Err:  err,
		}
	}

	return payload, nil
}

// frameTypeProbe peeks at the type field without a full decode.
type frameTypeProbe struct {
	Type string `msgpack:"type"`
}

// DecodeLaunch decodes a payload as a LaunchFrame.
func DecodeLaunch(payload []byte) (*LaunchFrame, error) {
	var frame LaunchFrame
	if err := msgpack.Unmarshal(payload, &frame); err != nil {
		return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode launch frame", Err: err}
	}
	return &frame, nil
}

// DecodeResult decodes a payload as a ResultFrame.
func DecodeResult(payload []byte) (*ResultFrame, error) {
	var frame ResultFrame
	if err := msgpack.Unmarshal(payload, &frame); err != nil {
		return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode result frame", Err: err}
	}
	return &frame, nil
}

// ReadResult reads frames from the decoder until a result frame
// arrives, skipping frames of unknown type. A clean EOF before any
// result frame is an error: the engine exited without reporting.
func ReadResult(d *FrameDecoder) (*ResultFrame, error) {
	for {
		payload, err := d.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &FrameError{
					Kind: FrameErrorPartial,
					Msg:  "stream ended before a result frame",
				}
			}
			return nil, err
		}

		var probe frameTypeProbe
		if err := msgpack.Unmarshal(payload, &probe); err != nil {
			return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode frame type", Err: err}
		}
		if probe.Type != ResultType {
			continue
		}
		return DecodeResult(payload)
	}
}
