package rows

import (
	"fmt"
	"io"
	"os"

	"github.com/creativeprojects/folders/folder"
	"gopkg.in/yaml.v3"
)

// Fixture is a list of folder rows described by column name
type Fixture struct {
	Folders []map[string]any `yaml:"folders"`
}

// LoadFixtureFile reads a YAML fixture and returns one row per folder
func LoadFixtureFile(fileName string) ([]folder.Row, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadFixture(file)
}

// LoadFixture decodes a YAML fixture. Columns missing from an entry are null; unknown columns are an error.
func LoadFixture(reader io.Reader) ([]folder.Row, error) {
	fixture := Fixture{}
	decoder := yaml.NewDecoder(reader)
	err := decoder.Decode(&fixture)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot decode fixture: %w", err)
	}
	output := make([]folder.Row, 0, len(fixture.Folders))
	for index, entry := range fixture.Folders {
		values := NewValues()
		for column, value := range entry {
			err = values.Set(column, value)
			if err != nil {
				return nil, fmt.Errorf("folder entry %d: %w", index, err)
			}
		}
		output = append(output, values)
	}
	return output, nil
}
