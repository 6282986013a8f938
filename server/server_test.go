package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/gridworld/grid"
)

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	env, err := grid.NewGridEnvironment(grid.WithSeed(3))
	require.NoError(t, err)
	return NewServer(":0", env, nil).Handler()
}

func TestStepBeforeReset(t *testing.T) {
	h := newTestServer(t)
	w := do(t, h, http.MethodPost, "/step", `{"action": 0}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestResetStepRender(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodPost, "/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	var reset struct {
		Observation []int `json:"observation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reset))
	require.Len(t, reset.Observation, 2)

	w = do(t, h, http.MethodPost, "/step", `{"action": 1}`)
	require.Equal(t, http.StatusOK, w.Code)
	var step stepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &step))
	require.Len(t, step.Observation, 2)
	assert.Contains(t, []int{grid.TargetReward, grid.DeathReward, grid.DefaultReward}, step.Reward)
	assert.NotNil(t, step.Info)

	w = do(t, h, http.MethodGet, "/render", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, strings.Count(w.Body.String(), "\n"))
	assert.Equal(t, 1, strings.Count(w.Body.String(), "*"))
}

func TestInvalidStepRequests(t *testing.T) {
	h := newTestServer(t)
	do(t, h, http.MethodPost, "/reset", "")

	w := do(t, h, http.MethodPost, "/step", `{"action": 9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid action")

	w = do(t, h, http.MethodPost, "/step", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/step", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSpaces(t *testing.T) {
	h := newTestServer(t)
	w := do(t, h, http.MethodGet, "/spaces", "")
	require.Equal(t, http.StatusOK, w.Code)
	var spaces spacesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spaces))
	assert.Equal(t, 4, spaces.Actions)
	assert.Equal(t, []int{0, 0}, spaces.Low)
	assert.Equal(t, []int{4, 4}, spaces.High)
	assert.Equal(t, []int{-10, 100}, spaces.RewardRange)
}

func TestStepAfterDone(t *testing.T) {
	h := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/reset", "").Code)

	// decreasing the row never lands on the target in the bottom row,
	// so the episode ends on the step limit
	var step stepResponse
	for i := 1; i <= grid.DefaultMaxSteps; i++ {
		w := do(t, h, http.MethodPost, "/step", `{"action": 1}`)
		require.Equal(t, http.StatusOK, w.Code, "step %d", i)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &step))
		require.Equal(t, i == grid.DefaultMaxSteps, step.Done, "step %d", i)
	}

	w := do(t, h, http.MethodPost, "/step", `{"action": 1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), grid.ErrEpisodeDone.Error())

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/reset", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/step", `{"action": 1}`).Code)
}
