package utils

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235001))
}

func TestPrettyJSON(t *testing.T) {
	out := PrettyJSON(map[string]int{"daily": 2, "revenue": 1})
	assert.Equal(t, "{\n\t\"daily\": 2,\n\t\"revenue\": 1\n}", out)

	assert.Equal(t, "", PrettyJSON(math.Inf(1)))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(10))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(21)
	require.NoError(t, err)
	assert.Len(t, id, 21)
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		require.NoError(t, WriteJSON(w, http.StatusOK, map[string]float64{"revPerSecond": 1.5}))
	}))
	defer server.Close()

	var body map[string]float64
	require.NoError(t, GetJSON(context.Background(), server.Client(), server.URL+"/ok", &body))
	assert.Equal(t, 1.5, body["revPerSecond"])

	err := GetJSON(context.Background(), server.Client(), server.URL+"/fail", &body)
	assert.Error(t, err)
}
