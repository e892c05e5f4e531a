package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"leading fence only", "```json\n[1,2]", "[1,2]"},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.input))
		})
	}
}

func TestDecodeObject_Plain(t *testing.T) {
	var out map[string]interface{}
	err := DecodeObject(`{"year": 2026, "holidays": []}`, &out)

	require.NoError(t, err)
	assert.Equal(t, float64(2026), out["year"])
}

func TestDecodeObject_Fenced(t *testing.T) {
	var out map[string]interface{}
	err := DecodeObject("```json\n{\"gross_pay\": 759.76}\n```", &out)

	require.NoError(t, err)
	assert.Equal(t, 759.76, out["gross_pay"])
}

func TestDecodeObject_ProseWrapped(t *testing.T) {
	raw := `Here is the extracted data you asked for:

{"gross_pay": 100.50, "net_pay": 80.25}

Let me know if you need anything else.`

	var out map[string]interface{}
	err := DecodeObject(raw, &out)

	require.NoError(t, err)
	assert.Equal(t, 100.50, out["gross_pay"])
	assert.Equal(t, 80.25, out["net_pay"])
}

func TestDecodeObject_BracesInsideStrings(t *testing.T) {
	raw := `{"notes": "shift ended {late}", "hours": 8}`

	var out map[string]interface{}
	err := DecodeObject(raw, &out)

	require.NoError(t, err)
	assert.Equal(t, "shift ended {late}", out["notes"])
}

func TestDecodeObject_NestedObjects(t *testing.T) {
	raw := `prefix {"outer": {"inner": {"deep": 1}}} suffix`

	var out map[string]interface{}
	err := DecodeObject(raw, &out)

	require.NoError(t, err)
	outer := out["outer"].(map[string]interface{})
	assert.NotNil(t, outer["inner"])
}

func TestDecodeObject_NoObject(t *testing.T) {
	var out map[string]interface{}
	err := DecodeObject("the document appears to be blank", &out)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object found")
}

func TestDecodeObject_InvalidJSON(t *testing.T) {
	var out map[string]interface{}
	err := DecodeObject(`{"a": }`, &out)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decoding model JSON")
}

func TestDecodeArray_Fenced(t *testing.T) {
	var out []map[string]interface{}
	err := DecodeArray("```json\n[{\"date\":\"2024-01-15\"}]\n```", &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-15", out[0]["date"])
}

func TestDecodeArray_ProseWrapped(t *testing.T) {
	var out []int
	err := DecodeArray("Sure! The rows are: [1, 2, 3]", &out)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestDecodeArray_Empty(t *testing.T) {
	var out []map[string]interface{}
	err := DecodeArray("[]", &out)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeArray_NoArray(t *testing.T) {
	var out []int
	err := DecodeArray("no rows here", &out)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON array found")
}
