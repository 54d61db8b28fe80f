package spectate

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"airhockey/game"
)

// Format is the wire encoding chosen by a spectator
type Format int

const (
	FormatMsgpack Format = iota
	FormatJSON
)

// ParseFormat maps the "format" query value to a Format; anything but "json" is msgpack
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}
	return FormatMsgpack
}

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "msgpack"
}

// Frame is one message on the feed
type Frame struct {
	Snapshot game.Snapshot `json:"snapshot" msgpack:"snapshot"`
	Events   []game.Event  `json:"events,omitempty" msgpack:"events,omitempty"`
}

// Encode serialises a frame in the given format
func Encode(f Format, frame Frame) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.Marshal(frame)
	default:
		data, err = msgpack.Marshal(frame)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s frame: %w", f, err)
	}
	return data, nil
}

// Decode parses a frame produced by Encode
func Decode(f Format, data []byte) (Frame, error) {
	var frame Frame
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &frame)
	default:
		err = msgpack.Unmarshal(data, &frame)
	}
	if err != nil {
		return Frame{}, fmt.Errorf("failed to decode %s frame: %w", f, err)
	}
	return frame, nil
}
