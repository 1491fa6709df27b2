package service

import "chrozone/internal/services/interactions/domain"

// field binds one option name to a typed setter on T
type field[T any] struct {
	tag domain.Tag
	set func(*T, domain.OptionValue) error
}

// argTable maps option names to setters; tables are built once at package init
type argTable[T any] map[string]field[T]

// apply walks opts once in order; the first failure wins
func (t argTable[T]) apply(dst *T, opts []domain.Option) error {
	for _, o := range opts {
		f, ok := t[o.Name]
		if !ok {
			return domain.InvalidArgs
		}
		if o.Value.Tag != f.tag {
			return domain.Fatal
		}
		if err := f.set(dst, o.Value); err != nil {
			return err
		}
	}
	return nil
}

func stringField[T any](dst func(*T) *string) field[T] {
	return field[T]{tag: domain.TagString, set: func(t *T, v domain.OptionValue) error {
		*dst(t) = v.Str
		return nil
	}}
}

func boolField[T any](dst func(*T) *bool) field[T] {
	return field[T]{tag: domain.TagBoolean, set: func(t *T, v domain.OptionValue) error {
		*dst(t) = v.Bool
		return nil
	}}
}

// intField narrows the wire int64 into N, refusing values that do not survive the round trip
func intField[T any, N ~int8 | ~int16 | ~int32](dst func(*T) *N) field[T] {
	return field[T]{tag: domain.TagInteger, set: func(t *T, v domain.OptionValue) error {
		n := N(v.Int)
		if int64(n) != v.Int {
			return domain.OutOfRange
		}
		*dst(t) = n
		return nil
	}}
}
