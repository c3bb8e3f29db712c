package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorCoversAllTables(t *testing.T) {
	for _, table := range Tables {
		assert.True(t, strings.Contains(Descriptor, table+" table"), "descriptor should describe %s", table)
	}
}

func TestEffortForQuery(t *testing.T) {
	assert.Equal(t, "high", EffortForQuery("run a complex cohort analysis"))
	assert.Equal(t, "high", EffortForQuery("this is COMPLEX"))
	assert.Equal(t, "medium", EffortForQuery("show top 5 customers"))
	assert.Equal(t, "medium", EffortForQuery(""))
}
