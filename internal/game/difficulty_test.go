package game

import (
	"testing"

	"github.com/pkg/errors"
	"pgregory.net/rapid"
)

var thresholdTests = map[int]Thresholds{
	1:  {Perfect: 15, Great: 30, Good: 45},
	4:  {Perfect: 24, Great: 48, Good: 72},
	8:  {Perfect: 36, Great: 72, Good: 108},
	10: {Perfect: 42, Great: 84, Good: 126},
}

func TestThresholdsFor(t *testing.T) {
	for level, expected := range thresholdTests {
		out, err := ThresholdsFor(level)
		if nil != err || out != expected {
			t.Log("level   ", level)
			t.Log("out     ", out, err)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestThresholdsForInvalidLevel(t *testing.T) {
	for _, level := range []int{-1, 0, 11, 100} {
		out, err := ThresholdsFor(level)
		if !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("level %d: expected ErrInvalidLevel, got %v", level, err)
		}
		if out != (Thresholds{}) {
			t.Fatalf("level %d: expected zero thresholds, got %v", level, out)
		}
		if Label(level) != "" {
			t.Fatalf("level %d: expected empty label", level)
		}
	}
}

func TestThresholdsOrdered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(MinLevel, MaxLevel).Draw(t, "level")
		th, err := ThresholdsFor(level)
		if nil != err {
			t.Fatalf("unexpected error: %v", err)
		}
		if !(0 < th.Perfect && th.Perfect < th.Great && th.Great < th.Good) {
			t.Fatalf("windows not increasing: %+v", th)
		}
		if level == MaxLevel {
			return
		}
		next, _ := ThresholdsFor(level + 1)
		if next.Perfect-th.Perfect != 3 || next.Great-th.Great != 6 || next.Good-th.Good != 9 {
			t.Fatalf("step from %d: %+v -> %+v", level, th, next)
		}
	})
}

func TestLabels(t *testing.T) {
	seen := map[string]bool{}
	for level := MinLevel; level <= MaxLevel; level++ {
		l := Label(level)
		if l == "" || seen[l] {
			t.Fatalf("level %d has label %q", level, l)
		}
		seen[l] = true
	}
}

var classifyTests = map[float64]Judgement{
	0:      Perfect,
	24:     Perfect,
	-24:    Perfect,
	24.5:   Great,
	48:     Great,
	-60:    Good,
	72:     Good,
	72.01:  Miss,
	-1000:  Miss,
	-35.99: Great,
}

func TestClassify(t *testing.T) {
	th := Thresholds{Perfect: 24, Great: 48, Good: 72}
	for distance, expected := range classifyTests {
		if out := th.Classify(distance); out != expected {
			t.Log("distance", distance)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestPoints(t *testing.T) {
	expected := map[Judgement]int{None: 0, Perfect: 100, Great: 80, Good: 60, Miss: 0}
	for j, p := range expected {
		if j.Points() != p {
			t.Fatalf("%v: expected %d points, got %d", j, p, j.Points())
		}
	}
}
