package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStrict(t *testing.T) {
	data, err := JSON(`{"sql_query": "SELECT 1", "answer": "one"}`)
	require.NoError(t, err)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Equal(t, "SELECT 1", obj["sql_query"])
}

func TestJSONFencedBlock(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"sql_query\": \"SELECT 2\"}\n```\nHope that helps!"

	data, err := JSON(raw)
	require.NoError(t, err)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Equal(t, "SELECT 2", obj["sql_query"])
}

func TestJSONGenericFence(t *testing.T) {
	raw := "```\n{\"sql_query\": \"SELECT 3\"}\n```"

	data, err := JSON(raw)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SELECT 3")
}

func TestJSONEmbeddedInProse(t *testing.T) {
	raw := `Sure! The plan is {"sql_query": "SELECT 4", "visualizations": [{"type": "bar"}]} as requested.`

	data, err := JSON(raw)
	require.NoError(t, err)

	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Contains(t, obj, "sql_query")
	assert.Contains(t, obj, "visualizations")
}

func TestJSONNestedBraces(t *testing.T) {
	raw := `prefix {"a": {"b": {"c": 1}}, "d": 2} suffix`

	data, err := JSON(raw)
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Equal(t, float64(2), obj["d"])
}

func TestJSONNoStructure(t *testing.T) {
	for _, raw := range []string{
		"I'm sorry, I can't help with that.",
		"",
		"```\nnot json at all\n```",
		"{truncated and never closed",
	} {
		_, err := JSON(raw)
		assert.ErrorIs(t, err, ErrNoJSON, "input: %q", raw)
	}
}

func TestJSONArrayIsNotAnObject(t *testing.T) {
	_, err := JSON(`[1, 2, 3]`)
	assert.ErrorIs(t, err, ErrNoJSON)
}
