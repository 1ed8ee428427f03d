package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/guttosm/aodata-web/internal/domain/models"
)

// DecodeError reports a backend body that does not match the expected shape.
type DecodeError struct {
	Target string // Go type the body was decoded into, e.g. "[]models.MarketOrderCountByItem"
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// A zero Timestamp validates as absent, so "required" rejects null or missing values.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		ts, ok := field.Interface().(models.Timestamp)
		if !ok || ts.IsZero() {
			return nil
		}
		return ts.UnixNano()
	}, models.Timestamp{})
	return v
}

// DecodeOne decodes a single JSON object into T and validates it. T must be a struct.
func DecodeOne[T any](body []byte) (T, error) {
	var out T
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return out, &DecodeError{Target: typeName[T](), Err: errors.New("expected object, got null")}
	}
	if err := strictUnmarshal(body, &out); err != nil {
		return out, &DecodeError{Target: typeName[T](), Err: err}
	}
	if err := validate.Struct(out); err != nil {
		return out, &DecodeError{Target: typeName[T](), Err: err}
	}
	return out, nil
}

// DecodeList decodes a JSON array of T and validates every element.
// A JSON null is rejected; an empty array yields an empty, non-nil slice.
func DecodeList[T any](body []byte) ([]T, error) {
	var out []T
	if err := strictUnmarshal(body, &out); err != nil {
		return nil, &DecodeError{Target: "[]" + typeName[T](), Err: err}
	}
	if out == nil {
		return nil, &DecodeError{Target: "[]" + typeName[T](), Err: errors.New("expected array, got null")}
	}
	for i := range out {
		if err := validate.Struct(out[i]); err != nil {
			return nil, &DecodeError{Target: "[]" + typeName[T](), Err: fmt.Errorf("element %d: %w", i, err)}
		}
	}
	return out, nil
}

// strictUnmarshal rejects unknown fields and trailing data.
func strictUnmarshal(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
