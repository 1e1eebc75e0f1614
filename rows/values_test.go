package rows

import (
	"math"
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesInt(t *testing.T) {
	fixtures := []struct {
		value    any
		expected int64
		err      error
	}{
		{nil, 0, nil},
		{12, 12, nil},
		{int32(-3), -3, nil},
		{int64(1666265460000), 1666265460000, nil},
		{uint32(7), 7, nil},
		{true, 1, nil},
		{false, 0, nil},
		{"42", 42, nil},
		{"forty-two", 0, ErrNotNumeric},
		{3.5, 0, ErrNotNumeric},
	}

	for _, fixture := range fixtures {
		values := Values{fixture.value}
		result, err := values.Int64(0)
		if fixture.err != nil {
			assert.ErrorIs(t, err, fixture.err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, fixture.expected, result)
	}
}

func TestValuesInt32Range(t *testing.T) {
	fixtures := []struct {
		value    any
		expected int32
		err      error
	}{
		{int64(math.MaxInt32), math.MaxInt32, nil},
		{int64(math.MinInt32), math.MinInt32, nil},
		{"4294967297", 0, ErrOutOfRange},
		{int64(math.MaxInt32) + 1, 0, ErrOutOfRange},
		{int64(math.MinInt32) - 1, 0, ErrOutOfRange},
		{uint32(math.MaxUint32), 0, ErrOutOfRange},
		{uint64(math.MaxUint64), 0, ErrOutOfRange},
	}

	for _, fixture := range fixtures {
		values := Values{fixture.value}
		result, err := values.Int(0)
		if fixture.err != nil {
			assert.ErrorIs(t, err, fixture.err, "%v", fixture.value)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, fixture.expected, result)
	}
}

func TestOutOfRangeColumnIsDecodeError(t *testing.T) {
	row := NewValues()
	require.NoError(t, row.Set("_id", "4294967297"))
	require.NoError(t, row.Set("folderUri", "content://mail/1/folder/1"))

	f, err := folder.FromRow(row)
	assert.Nil(t, f)
	var decodeErr *folder.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, folder.ColumnID, decodeErr.Column)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestValuesString(t *testing.T) {
	fixtures := []struct {
		value    any
		expected string
	}{
		{nil, ""},
		{"", ""},
		{"Inbox", "Inbox"},
		{[]byte("bytes"), "bytes"},
		{-16777216, "-16777216"},
		{folder.ParseURI("content://mail/1"), "content://mail/1"},
	}

	for _, fixture := range fixtures {
		values := Values{fixture.value}
		result, err := values.String(0)
		require.NoError(t, err)
		assert.Equal(t, fixture.expected, result)
	}
}

func TestValuesOutOfRange(t *testing.T) {
	values := Values{1}
	_, err := values.Int(1)
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
	_, err = values.String(-1)
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
}

func TestValuesSet(t *testing.T) {
	values := NewValues()
	assert.Equal(t, len(folder.Projection), values.ColumnCount())

	require.NoError(t, values.Set("name", "Inbox"))
	assert.Equal(t, "Inbox", values[folder.ColumnName])

	assert.Error(t, values.Set("no such column", 1))
}
