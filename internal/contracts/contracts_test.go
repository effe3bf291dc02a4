package contracts

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefined_FailsClosedOnNonFinite(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		defined bool
	}{
		{"finite", 42.5, true},
		{"zero", 0, true},
		{"negative", -3.2, true},
		{"nan", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Defined(tt.input)
			assert.Equal(t, tt.defined, v.IsDefined())
		})
	}
}

func TestValue_Float(t *testing.T) {
	v, ok := Defined(1.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, ok = Undefined().Float()
	assert.False(t, ok)
}

func TestValue_Or(t *testing.T) {
	assert.Equal(t, 2.0, Defined(2.0).Or(9))
	assert.Equal(t, 9.0, Undefined().Or(9))
}

func TestValue_Round(t *testing.T) {
	v, ok := Defined(3.14159).Round(2).Float()
	require.True(t, ok)
	assert.Equal(t, 3.14, v)

	assert.False(t, Undefined().Round(2).IsDefined())
}

func TestValue_JSON(t *testing.T) {
	data, err := json.Marshal(Defined(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(data))

	data, err = json.Marshal(Undefined())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var v Value
	require.NoError(t, json.Unmarshal([]byte("7.25"), &v))
	f, ok := v.Float()
	assert.True(t, ok)
	assert.Equal(t, 7.25, f)

	require.NoError(t, json.Unmarshal([]byte("null"), &v))
	assert.False(t, v.IsDefined())
}

func TestRecommendationForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Recommendation
	}{
		{100, StrongBuy},
		{80, StrongBuy},
		{79.99, Buy},
		{70, Buy},
		{69.99, Hold},
		{60, Hold},
		{59.99, WeakHold},
		{40, WeakHold},
		{39.99, Sell},
		{0, Sell},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RecommendationForScore(tt.score), "score %.2f", tt.score)
	}
}

func TestParseRiskTier(t *testing.T) {
	for _, s := range []string{"conservative", "moderate", "aggressive"} {
		tier, err := ParseRiskTier(s)
		require.NoError(t, err)
		assert.True(t, tier.Valid())
	}

	_, err := ParseRiskTier("reckless")
	require.Error(t, err)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestAnalysisStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}
