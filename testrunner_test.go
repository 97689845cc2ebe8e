package colorific

import (
	"slices"
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "menu"},
			{"action": "click", "x": 160, "y": 240},
			{"action": "settle"},
			{"action": "click", "row": 0, "col": 3},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].X != 160 || runner.steps[1].Y != 240 || runner.steps[1].Row != nil {
		t.Error("step 1 mismatch")
	}
	if st := runner.steps[3]; st.Row == nil || *st.Row != 0 || *st.Col != 3 {
		t.Error("step 3 mismatch")
	}
	if runner.Done() {
		t.Error("fresh runner is done")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"invalid json", `not json`, "parse script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, "unknown action"},
		{"row without col", `{"steps": [{"action": "click", "row": 1}]}`, "row and col"},
	}
	for _, tt := range tests {
		_, err := LoadScript([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.msg)
		}
	}
}

func TestRunnerClickWaitScreenshot(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 10, "y": 10},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "a"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	d := NewDirector(NewMenuScreen(NewSession(testConfig(3), 0)))
	d.SetScriptRunner(runner)
	var shots []string
	var shotFrame int
	d.SetScreenshotFunc(func(label string) {
		shots = append(shots, label)
		shotFrame = d.Frames()
	})

	d.Update(1.0 / 60)
	if _, ok := d.Current().(*GameScreen); !ok {
		t.Fatalf("click not delivered in the first frame: %T", d.Current())
	}
	for i := 0; i < 10; i++ {
		d.Update(1.0 / 60)
	}
	if !slices.Equal(shots, []string{"a"}) {
		t.Fatalf("shots = %v, want [a]", shots)
	}
	if shotFrame != 5 {
		t.Errorf("screenshot taken on frame %d, want 5", shotFrame)
	}
	if !runner.Done() {
		t.Error("runner not done")
	}
}

func TestRunnerSettleAndCellClick(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 160, "y": 240},
		{"action": "settle"},
		{"action": "click", "row": 0, "col": 0},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	d := NewDirector(NewMenuScreen(NewSession(testConfig(3), 0)))
	d.SetScriptRunner(runner)
	var shots []string
	d.SetScreenshotFunc(func(label string) { shots = append(shots, label) })

	runUntil(t, d, 5000, runner.Done)

	b := d.Board()
	if b == nil {
		t.Fatal("no board after the script")
	}
	if b.TurnsRemaining() != 24 {
		t.Errorf("TurnsRemaining = %d, want 24", b.TurnsRemaining())
	}
	if !slices.Equal(shots, []string{"after"}) {
		t.Errorf("shots = %v, want [after]", shots)
	}
}

func TestRunnerWithoutScreenshotFunc(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d := NewDirector(NewMenuScreen(NewSession(testConfig(3), 0)))
	d.SetScriptRunner(runner)
	d.Update(1.0 / 60)
	if !runner.Done() {
		t.Error("runner not done")
	}
	d.Update(1.0 / 60)
}
