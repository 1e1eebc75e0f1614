package store

import (
	"bytes"
	"encoding/gob"
)

func serializeInt(value int) ([]byte, error) {
	buffer := &bytes.Buffer{}
	encoder := gob.NewEncoder(buffer)
	err := encoder.Encode(value)
	return buffer.Bytes(), err
}

func deserializeInt(input []byte) (int, error) {
	output := 0
	decoder := gob.NewDecoder(bytes.NewBuffer(input))
	err := decoder.Decode(&output)
	return output, err
}
