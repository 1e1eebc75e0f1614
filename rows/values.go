// Package rows provides folder.Row implementations: in-memory values, YAML fixtures
// and rows built from IMAP mailbox information.
package rows

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/creativeprojects/folders/folder"
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrNotNumeric       = errors.New("value is not numeric")
	ErrOutOfRange       = errors.New("value out of int32 range")
)

// Values is a positional row. Nil entries are null columns.
type Values []any

var _ folder.Row = Values{}

// NewValues returns a row with every column of folder.Projection set to null
func NewValues() Values {
	return make(Values, len(folder.Projection))
}

func (v Values) ColumnCount() int {
	return len(v)
}

func (v Values) get(column int) (any, error) {
	if column < 0 || column >= len(v) {
		return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}
	return v[column], nil
}

// Int converts the column to an int32. A null column is 0.
func (v Values) Int(column int) (int32, error) {
	value, err := v.Int64(column)
	if err != nil {
		return 0, err
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, value)
	}
	return int32(value), nil
}

// Int64 converts the column to an int64. A null column is 0.
func (v Values) Int64(column int) (int64, error) {
	value, err := v.get(column)
	if err != nil {
		return 0, err
	}
	switch typed := value.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(typed), nil
	case int32:
		return int64(typed), nil
	case int64:
		return typed, nil
	case uint32:
		return int64(typed), nil
	case uint64:
		if typed > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d", ErrOutOfRange, typed)
		}
		return int64(typed), nil
	case bool:
		if typed {
			return 1, nil
		}
		return 0, nil
	case string:
		number, err := strconv.ParseInt(typed, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, typed)
		}
		return number, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, value)
	}
}

// String converts the column to a string. A null column is empty.
func (v Values) String(column int) (string, error) {
	value, err := v.get(column)
	if err != nil {
		return "", err
	}
	switch typed := value.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case []byte:
		return string(typed), nil
	case fmt.Stringer:
		return typed.String(), nil
	case int, int32, int64, uint32, uint64, bool:
		return fmt.Sprint(typed), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}

// Set stores a value by column name
func (v Values) Set(column string, value any) error {
	index := folder.ColumnIndex(column)
	if index < 0 || index >= len(v) {
		return fmt.Errorf("unknown column %q", column)
	}
	v[index] = value
	return nil
}
