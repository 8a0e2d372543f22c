package world

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers follow proto/state.proto.
const (
	stateTick     protowire.Number = 1
	stateOffset   protowire.Number = 2
	stateEntities protowire.Number = 3

	offsetX          protowire.Number = 1
	offsetY          protowire.Number = 2
	offsetGridWidth  protowire.Number = 3
	offsetGridHeight protowire.Number = 4

	entityID       protowire.Number = 1
	entityKind     protowire.Number = 2
	entityX        protowire.Number = 3
	entityY        protowire.Number = 4
	entityRotation protowire.Number = 5
	entityHealth   protowire.Number = 6
)

var errTruncated = errors.New("truncated message")

// MarshalWire encodes the state in protobuf wire format.
func (s *State) MarshalWire() []byte {
	var b []byte
	b = protowire.AppendTag(b, stateTick, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.Tick))

	var o []byte
	o = appendDouble(o, offsetX, s.Offset.X)
	o = appendDouble(o, offsetY, s.Offset.Y)
	o = appendInt(o, offsetGridWidth, int64(s.Offset.GridWidth))
	o = appendInt(o, offsetGridHeight, int64(s.Offset.GridHeight))
	b = protowire.AppendTag(b, stateOffset, protowire.BytesType)
	b = protowire.AppendBytes(b, o)

	for _, e := range s.Entities {
		var m []byte
		m = protowire.AppendTag(m, entityID, protowire.BytesType)
		m = protowire.AppendString(m, string(e.ID))
		m = appendInt(m, entityKind, int64(e.Kind))
		m = appendDouble(m, entityX, e.Coords.X)
		m = appendDouble(m, entityY, e.Coords.Y)
		m = appendDouble(m, entityRotation, e.Rotation)
		m = appendInt(m, entityHealth, int64(e.Health))
		b = protowire.AppendTag(b, stateEntities, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	return b
}

// UnmarshalState decodes a state written by MarshalWire. Unknown fields
// are skipped.
func UnmarshalState(b []byte) (*State, error) {
	s := &State{}
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == stateTick && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			s.Tick = int64(v)
			return n, nil
		case num == stateOffset && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			return n, unmarshalOffset(v, &s.Offset)
		case num == stateEntities && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			var e EntityState
			if err := unmarshalEntity(v, &e); err != nil {
				return n, err
			}
			s.Entities = append(s.Entities, e)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return s, nil
}

func unmarshalOffset(b []byte, o *WorldOffset) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == offsetX && typ == protowire.Fixed64Type:
			return consumeDouble(b, &o.X), nil
		case num == offsetY && typ == protowire.Fixed64Type:
			return consumeDouble(b, &o.Y), nil
		case num == offsetGridWidth && typ == protowire.VarintType:
			return consumeInt(b, &o.GridWidth), nil
		case num == offsetGridHeight && typ == protowire.VarintType:
			return consumeInt(b, &o.GridHeight), nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

func unmarshalEntity(b []byte, e *EntityState) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == entityID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			e.ID = ID(v)
			return n, nil
		case num == entityKind && typ == protowire.VarintType:
			var k int
			n := consumeInt(b, &k)
			e.Kind = Kind(k)
			return n, nil
		case num == entityX && typ == protowire.Fixed64Type:
			return consumeDouble(b, &e.Coords.X), nil
		case num == entityY && typ == protowire.Fixed64Type:
			return consumeDouble(b, &e.Coords.Y), nil
		case num == entityRotation && typ == protowire.Fixed64Type:
			return consumeDouble(b, &e.Rotation), nil
		case num == entityHealth && typ == protowire.VarintType:
			return consumeInt(b, &e.Health), nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// consumeFields walks every field in b. field must return the length of
// the value it consumed, or a negative protowire error code.
func consumeFields(b []byte, field func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		if n > len(b) {
			return errTruncated
		}
		b = b[n:]
	}
	return nil
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

// appendInt writes a zigzag encoded sint64.
func appendInt(b []byte, num protowire.Number, v int64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

func consumeDouble(b []byte, v *float64) int {
	u, n := protowire.ConsumeFixed64(b)
	if n >= 0 {
		*v = math.Float64frombits(u)
	}
	return n
}

func consumeInt(b []byte, v *int) int {
	u, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*v = int(protowire.DecodeZigZag(u))
	}
	return n
}
