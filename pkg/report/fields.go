package report

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field maps one report column to a dot path into the record, such as
// "Customer.Name". A single segment may also name a no-argument method,
// so derived values like "IsLowStock" export without a helper column.
type Field struct {
	Header string
	Path   string
}

// BuildTable renders a slice of records into a Table by resolving each
// field path per record. Nil pointers along a path render as empty
// cells, maps and slices serialize to JSON, and times render as
// YYYY-MM-DD HH:MM:SS.
func BuildTable(name string, fields []Field, records any) (*Table, error) {
	rv := reflect.ValueOf(records)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("records must be a slice, got %s", rv.Kind())
	}

	table := &Table{Name: name}
	for _, f := range fields {
		table.Headers = append(table.Headers, f.Header)
	}

	for i := 0; i < rv.Len(); i++ {
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			cell, err := resolvePath(rv.Index(i), f.Path)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Path, err)
			}
			row = append(row, cell)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func resolvePath(v reflect.Value, path string) (string, error) {
	for _, segment := range strings.Split(path, ".") {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return "", nil
			}
			v = v.Elem()
		}

		next, err := resolveSegment(v, segment)
		if err != nil {
			return "", err
		}
		v = next
	}
	return renderValue(v)
}

func resolveSegment(v reflect.Value, segment string) (reflect.Value, error) {
	if v.Kind() == reflect.Struct {
		if field := v.FieldByName(segment); field.IsValid() {
			return field, nil
		}
	}
	if m := methodByName(v, segment); m.IsValid() {
		if m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
			return reflect.Value{}, fmt.Errorf("method %s is not a plain getter", segment)
		}
		return m.Call(nil)[0], nil
	}
	return reflect.Value{}, fmt.Errorf("no field or method %s on %s", segment, v.Type())
}

func methodByName(v reflect.Value, name string) reflect.Value {
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}
	if v.CanAddr() {
		return v.Addr().MethodByName(name)
	}
	return reflect.Value{}
}

func renderValue(v reflect.Value) (string, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return "", nil
	}

	switch val := v.Interface().(type) {
	case decimal.Decimal:
		return val.StringFixed(2), nil
	case time.Time:
		if val.IsZero() {
			return "", nil
		}
		return val.Format("2006-01-02 15:04:05"), nil
	case fmt.Stringer:
		return val.String(), nil
	}

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		raw, err := json.Marshal(v.Interface())
		if err != nil {
			return "", err
		}
		return string(raw), nil
	default:
		return fmt.Sprint(v.Interface()), nil
	}
}
