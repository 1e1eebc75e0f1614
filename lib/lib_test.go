package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelimiter(t *testing.T) {
	fixtures := []struct {
		name             string
		currentDelimiter string
		newDelimiter     string
		expected         string
	}{
		{"name", "", "", "name"},
		{"name", "n", "", "name"},
		{"name", "", "n", "name"},
		{"name", "n", "n", "name"},
		{"name", ".", "/", "name"},
		{"folder.name", ".", "/", "folder/name"},
		{"INBOX.Work.2022", ".", "/", "INBOX/Work/2022"},
		{"folder.na/me", ".", "/", "folder/na\\/me"},
	}

	for _, fixture := range fixtures {
		result := VerifyDelimiter(fixture.name, fixture.currentDelimiter, fixture.newDelimiter)
		assert.Equal(t, fixture.expected, result)
	}
}

func TestSplitPath(t *testing.T) {
	fixtures := []struct {
		desc     string
		expected []string
	}{
		{"", []string{}},
		{"/", []string{}},
		{"Inbox", []string{"Inbox"}},
		{"Work/Projects/2022", []string{"Work", "Projects", "2022"}},
		{"/Work//Projects/", []string{"Work", "Projects"}},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.desc, func(t *testing.T) {
			assert.Equal(t, fixture.expected, SplitPath(fixture.desc))
		})
	}
}
