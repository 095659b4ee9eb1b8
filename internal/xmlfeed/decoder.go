package xmlfeed

import "errors"

// RecordDecoder applies typed coercion to the fields of one record. The first
// failure is kept and every later call returns nil, so a caller can decode
// all fields and check Err once.
type RecordDecoder struct {
	rec   Record
	index int
	err   error
}

// NewRecordDecoder returns a decoder for rec, the index-th record of its document.
func NewRecordDecoder(rec Record, index int) *RecordDecoder {
	return &RecordDecoder{rec: rec, index: index}
}

// Err returns the first coercion failure as a *CoercionError, or nil.
func (d *RecordDecoder) Err() error {
	return d.err
}

func (d *RecordDecoder) fail(field string, err error) {
	var ce *CoercionError
	if !errors.As(err, &ce) {
		ce = &CoercionError{Err: err}
		if v := d.rec.Get(field); v != nil {
			ce.Value = *v
		}
	}
	attributed := *ce
	attributed.Index = d.index
	attributed.Field = field
	d.err = &attributed
}

func (d *RecordDecoder) Text(field string) *string {
	return d.rec.Get(field)
}

func (d *RecordDecoder) Integer(field string) *int {
	return decodeWith(d, field, Integer)
}

func (d *RecordDecoder) Decimal(field string) *float64 {
	return decodeWith(d, field, Decimal)
}

func (d *RecordDecoder) Boolean(field string) *bool {
	return decodeWith(d, field, Boolean)
}

func (d *RecordDecoder) Date(field, layout string) *Date {
	return decodeWith(d, field, func(raw *string) (*Date, error) {
		return ParseDate(raw, layout)
	})
}

func (d *RecordDecoder) TimeOfDay(field, layout string) *TimeOfDay {
	return decodeWith(d, field, func(raw *string) (*TimeOfDay, error) {
		return ParseTimeOfDay(raw, layout)
	})
}

// Decode applies parse to the text of field. Null fields are not passed to
// parse and decode to nil.
func Decode[T any](d *RecordDecoder, field string, parse func(string) (T, error)) *T {
	return decodeWith(d, field, func(raw *string) (*T, error) {
		if raw == nil {
			return nil, nil
		}
		v, err := parse(*raw)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}

func decodeWith[T any](d *RecordDecoder, field string, coerce func(*string) (*T, error)) *T {
	if d.err != nil {
		return nil
	}
	v, err := coerce(d.rec.Get(field))
	if err != nil {
		d.fail(field, err)
		return nil
	}
	return v
}
