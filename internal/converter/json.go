package converter

import (
	"encoding/json"
	"fmt"

	"bank_lookup/internal/repository"
)

// JSON renders records with encoding/json.
type JSON[T any] struct {
	indent string
}

type Option func(*options)

type options struct {
	indent string
}

// WithIndent pretty-prints the output using the given indent per level.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

func NewJSON[T any](opts ...Option) *JSON[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &JSON[T]{indent: o.indent}
}

func (c *JSON[T]) ToJSON(record T) (string, error) {
	var (
		data []byte
		err  error
	)
	if c.indent != "" {
		data, err = json.MarshalIndent(record, "", c.indent)
	} else {
		data, err = json.Marshal(record)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrSerialization, err)
	}
	return string(data), nil
}

var _ repository.Converter[any] = (*JSON[any])(nil)
