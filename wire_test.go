package unbusy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// assertJSONRoundTrip marshals v, optionally checks the exact wire form, and
// requires the decoded value to equal the original.
func assertJSONRoundTrip[T any](t *testing.T, v T, want string) {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	if want != "" {
		assert.JSONEq(t, want, string(data))
	}

	var decoded T
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, v, decoded)
}

// assertYAMLRoundTrip marshals v as YAML and requires the decoded value to
// equal the original.
func assertYAMLRoundTrip[T any](t *testing.T, v T) {
	t.Helper()

	data, err := yaml.Marshal(v)
	require.NoError(t, err)

	var decoded T
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, v, decoded)
}

func jsonDecode(t *testing.T, text string, out interface{}) error {
	t.Helper()
	return json.Unmarshal([]byte(text), out)
}

func yamlDecode(t *testing.T, text string, out interface{}) error {
	t.Helper()
	return yaml.Unmarshal([]byte(text), out)
}
