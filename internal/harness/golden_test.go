package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunWithGolden_LoginRetry replays testdata/scenarios/login_retry.yaml
// and compares the trace with testdata/golden/login_retry.golden.
//
// After an intentional change, regenerate with:
//
//	go test ./internal/harness -run TestRunWithGolden_LoginRetry -update
func TestRunWithGolden_LoginRetry(t *testing.T) {
	scenario, err := LoadScenario("../../testdata/scenarios/login_retry.yaml")
	require.NoError(t, err)

	err = RunWithGolden(t, scenario)
	require.NoError(t, err)
}

func TestExampleScenariosPass(t *testing.T) {
	for _, name := range []string{"login_retry", "patient_add_validation", "delete_patient_with_invoice"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("../../testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, strings.Join(result.Errors, "\n"))
		})
	}
}

func TestAssertGolden_FromResult(t *testing.T) {
	scenario, err := LoadScenario("../../testdata/scenarios/login_retry.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	require.True(t, result.Pass, strings.Join(result.Errors, "\n"))

	// AssertGolden has no scenario, so the snapshot omits the session token.
	err = AssertGolden(t, "login_retry_result", result)
	require.NoError(t, err)
}

func TestTraceSnapshotJSON(t *testing.T) {
	snapshot := TraceSnapshot{
		ScenarioName: "demo",
		SessionToken: "tok",
		Trace: []TraceEvent{
			{Seq: 1, Input: "press enter", Outcome: "stay", Screen: "login", Depth: 1, Errors: []string{"username", "password"}},
			{Seq: 2, Input: "type y", Outcome: "replace", Screen: "home", Depth: 1, Session: "alice", Notice: "Welcome"},
		},
	}

	data, err := snapshot.marshal()
	require.NoError(t, err)

	want := `{
  "scenario_name": "demo",
  "session_token": "tok",
  "trace": [
    {
      "seq": 1,
      "input": "press enter",
      "outcome": "stay",
      "screen": "login",
      "depth": 1,
      "errors": [
        "username",
        "password"
      ]
    },
    {
      "seq": 2,
      "input": "type y",
      "outcome": "replace",
      "screen": "home",
      "depth": 1,
      "session": "alice",
      "notice": "Welcome"
    }
  ]
}
`
	assert.Equal(t, want, string(data))

	var decoded TraceSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, snapshot, decoded)
}

func TestTraceSnapshotJSON_Deterministic(t *testing.T) {
	scenario, err := LoadScenario("../../testdata/scenarios/patient_add_validation.yaml")
	require.NoError(t, err)

	var outputs []string
	for i := 0; i < 3; i++ {
		result, err := Run(scenario)
		require.NoError(t, err)
		snapshot := TraceSnapshot{ScenarioName: scenario.Name, Trace: result.Trace}
		data, err := snapshot.marshal()
		require.NoError(t, err)
		outputs = append(outputs, string(data))
	}

	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, outputs[1], outputs[2])
}
