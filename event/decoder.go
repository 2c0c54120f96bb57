package event

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the wire shape of one change message.
type envelope struct {
	Source struct {
		Table string `json:"table"`
	} `json:"source"`
	Op      string          `json:"op"`
	Payload json.RawMessage `json:"payload"`
}

// Decode parses a raw change message into a ChangeEvent. It is a pure
// function of the message bytes and its log position. A malformed message
// yields a *DecodeError; an empty message yields ErrTombstone.
func Decode(raw []byte, position string) (*ChangeEvent, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrTombstone
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Position: position, Reason: "malformed envelope", Err: err}
	}
	if env.Source.Table == "" {
		return nil, &DecodeError{Position: position, Reason: "missing source table"}
	}
	switch Operation(env.Op) {
	case OpCreate, OpUpdate, OpDelete:
	case "":
		return nil, &DecodeError{Position: position, Reason: "missing operation"}
	default:
		return nil, &DecodeError{Position: position, Reason: fmt.Sprintf("unknown operation code %q", env.Op)}
	}
	if len(env.Payload) == 0 {
		return nil, &DecodeError{Position: position, Reason: "missing payload"}
	}

	payload, err := decodePayload(env.Payload)
	if err != nil {
		return nil, &DecodeError{Position: position, Reason: "malformed payload", Err: err}
	}

	id, ok := payload.Get("id")
	if !ok || id == nil {
		return nil, &DecodeError{Position: position, Reason: "missing primary key"}
	}

	return &ChangeEvent{
		Op:         Operation(env.Op),
		EntityType: env.Source.Table,
		PrimaryKey: fmt.Sprintf("%v", id),
		Payload:    payload,
		Position:   position,
	}, nil
}

// decodePayload walks the payload object token by token so the source field
// order survives and numbers stay exact (json.Number, not float64).
func decodePayload(raw json.RawMessage) (*Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("payload is not an object")
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("payload key is not a string")
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		fields = append(fields, Field{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return NewPayload(fields), nil
}

// decodeValue reads one JSON value. Nested objects and arrays are kept as
// generic values; scalar columns are the common case.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := make(map[string]any)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string")
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj[key] = val
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			var arr []any
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		// string, json.Number, bool, or nil
		return tok, nil
	}
}
