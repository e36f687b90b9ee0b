package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-mclib/mcserver/wire"
)

// fieldTag parses the `codec:"..."` struct tag options. Unlike the
// teacher's `mc:` tag, conditional/length metadata isn't needed here: every
// wire type self-describes its own length (prefixed strings, prefixed
// collections, fixed-width primitives), so the record walker only has to
// know what to skip and how much padding surrounds a field.
type fieldTag struct {
	skip      bool
	padBefore int
	padAfter  int
}

func parseFieldTag(tag string) fieldTag {
	var ft fieldTag
	if tag == "" {
		return ft
	}
	if tag == "-" {
		ft.skip = true
		return ft
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if after, ok := strings.CutPrefix(part, "pad_before="); ok {
			if n, err := strconv.Atoi(after); err == nil {
				ft.padBefore = n
			}
		}
		if after, ok := strings.CutPrefix(part, "pad_after="); ok {
			if n, err := strconv.Atoi(after); err == nil {
				ft.padAfter = n
			}
		}
	}
	return ft
}

// EncodeRecord encodes a record as the concatenation of its field
// encodings in declaration order (§3.1), honoring pad_before/pad_after
// struct tags. v must be a struct or a pointer to one.
func EncodeRecord(v any) (wire.ByteArray, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("codec: cannot encode nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("codec: EncodeRecord requires a struct, got %s", val.Kind())
	}
	return encodeStructValue(val)
}

func encodeStructValue(val reflect.Value) (wire.ByteArray, error) {
	typ := val.Type()
	var out wire.ByteArray

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanInterface() {
			continue
		}
		ft := parseFieldTag(sf.Tag.Get("codec"))
		if ft.skip {
			continue
		}
		if ft.padBefore > 0 {
			out = append(out, make([]byte, ft.padBefore)...)
		}

		b, err := encodeFieldValue(field)
		if err != nil {
			return nil, &FieldError{Struct: typ.Name(), Field: sf.Name, Offset: len(out), Err: err}
		}
		out = append(out, b...)

		if ft.padAfter > 0 {
			out = append(out, make([]byte, ft.padAfter)...)
		}
	}
	return out, nil
}

func encodeFieldValue(field reflect.Value) (wire.ByteArray, error) {
	if field.CanAddr() {
		if enc, ok := field.Addr().Interface().(wire.Encoder); ok {
			return enc.ToBytes()
		}
	}
	if enc, ok := field.Interface().(wire.Encoder); ok {
		return enc.ToBytes()
	}
	if field.Kind() == reflect.Struct {
		return encodeStructValue(field)
	}
	return nil, fmt.Errorf("codec: field of type %s does not implement wire.Encoder", field.Type())
}

// DecodeRecord decodes a record's fields in declaration order from the
// front of data, honoring pad_before/pad_after. v must be a non-nil
// pointer to a struct. Returns the total number of bytes consumed.
func DecodeRecord(data wire.ByteArray, v any) (int, error) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return 0, fmt.Errorf("codec: DecodeRecord requires a non-nil pointer")
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return 0, fmt.Errorf("codec: DecodeRecord requires a pointer to struct, got %s", elem.Kind())
	}
	return decodeStructValue(elem, data)
}

func decodeStructValue(val reflect.Value, data wire.ByteArray) (int, error) {
	typ := val.Type()
	offset := 0

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() {
			continue
		}
		ft := parseFieldTag(sf.Tag.Get("codec"))
		if ft.skip {
			continue
		}
		if ft.padBefore > 0 {
			if len(data) < offset+ft.padBefore {
				return offset, &FieldError{Struct: typ.Name(), Field: sf.Name, Offset: offset, Err: wire.ErrUnexpectedEOF}
			}
			offset += ft.padBefore
		}

		n, err := decodeFieldValue(field, data[offset:])
		if err != nil {
			return offset, &FieldError{Struct: typ.Name(), Field: sf.Name, Offset: offset, Err: err}
		}
		offset += n

		if ft.padAfter > 0 {
			if len(data) < offset+ft.padAfter {
				return offset, &FieldError{Struct: typ.Name(), Field: sf.Name, Offset: offset, Err: wire.ErrUnexpectedEOF}
			}
			offset += ft.padAfter
		}
	}
	return offset, nil
}

func decodeFieldValue(field reflect.Value, data wire.ByteArray) (int, error) {
	if field.CanAddr() {
		if dec, ok := field.Addr().Interface().(wire.Decoder); ok {
			return dec.FromBytes(data)
		}
	}
	if field.Kind() == reflect.Struct {
		return decodeStructValue(field, data)
	}
	return 0, fmt.Errorf("codec: field of type %s does not implement wire.Decoder", field.Type())
}
