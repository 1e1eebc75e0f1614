package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRelease struct {
	version string
	newer   bool
}

func (r fakeRelease) LessOrEqual(other string) bool {
	return !r.newer
}

func (r fakeRelease) Version() string {
	return r.version
}

func TestUpdatePlan(t *testing.T) {
	newer := fakeRelease{version: "1.2.0", newer: true}
	same := fakeRelease{version: "1.1.0"}

	fixtures := []struct {
		name     string
		plan     updatePlan
		latest   release
		expected updateAction
		err      error
	}{
		{"up to date", updatePlan{current: "1.1.0"}, same, updateNone, nil},
		{"up to date with busy store", updatePlan{current: "1.1.0", storeBusy: true}, same, updateNone, nil},
		{"newer", updatePlan{current: "1.1.0"}, newer, updateReplace, nil},
		{"check only", updatePlan{current: "1.1.0", checkOnly: true, storeBusy: true}, newer, updateReport, nil},
		{"store in use", updatePlan{current: "1.1.0", storeBusy: true}, newer, updateNone, errStoreInUse},
		{"store in use forced", updatePlan{current: "1.1.0", storeBusy: true, force: true}, newer, updateReplace, nil},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			action, err := fixture.plan.decide(fixture.latest)
			if fixture.err != nil {
				assert.ErrorIs(t, err, fixture.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, fixture.expected, action)
		})
	}
}
