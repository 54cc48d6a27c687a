package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuality_String(t *testing.T) {
	cases := []struct {
		in   Quality
		want string
	}{
		{SinglePhase(), "-"},
		{TwoPhase(0), "0.000"},
		{TwoPhase(0.8871), "0.887"},
		{TwoPhase(1), "1.000"},
		{Quality{}, "-"}, // zero value is single-phase
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.String())
	}
}

func TestQuality_Value(t *testing.T) {
	x, ok := TwoPhase(0.42).Value()
	require.True(t, ok)
	assert.Equal(t, 0.42, x)

	_, ok = SinglePhase().Value()
	assert.False(t, ok)
	assert.False(t, SinglePhase().IsTwoPhase())
	assert.True(t, TwoPhase(1).IsTwoPhase())
}

func TestQuality_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(TwoPhase(0.5))
	require.NoError(t, err)
	assert.Equal(t, "0.5", string(b))

	b, err = json.Marshal(SinglePhase())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	// embedded in a struct, like a state record
	v := struct {
		X Quality `json:"x"`
	}{X: TwoPhase(0.25)}
	b, err = json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":0.25}`, string(b))
}

func TestQuality_UnmarshalJSON(t *testing.T) {
	var q Quality
	require.NoError(t, json.Unmarshal([]byte("0.887"), &q))
	assert.Equal(t, TwoPhase(0.887), q)

	q = TwoPhase(0.5)
	require.NoError(t, json.Unmarshal([]byte("null"), &q))
	assert.Equal(t, SinglePhase(), q)

	require.Error(t, json.Unmarshal([]byte(`"wet"`), &q))
}
