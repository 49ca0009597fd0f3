package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLongestMatchEntriesOrdersByKeyLengthThenAlpha(t *testing.T) {
	entries := BuildLongestMatchEntries(map[string]string{
		"db":      "database",
		"db_host": "host",
		"ab":      "alpha",
	})
	assert.Equal(t, "db_host", entries[0].Key)
	assert.Equal(t, []string{"ab", "db"}, []string{entries[1].Key, entries[2].Key})
}
