package main

import (
	"testing"

	"github.com/gonewx/skydefense/pkg/config"
)

func TestRunGameIsDeterministic(t *testing.T) {
	rules := config.DefaultRules()
	pilot := autopilot{fireEvery: 10}

	a := runGame(rules, 42, 3000, pilot)
	b := runGame(rules, 42, 3000, pilot)

	if a.Score != b.Score || a.Level != b.Level || a.Ticks != b.Ticks {
		t.Errorf("same seed should give the same game: %+v vs %+v", a, b)
	}
	if a.Ticks > 3000 {
		t.Errorf("tick limit exceeded: %d", a.Ticks)
	}
	if a.Level != 1+a.Score/rules.Progression.PointsPerLevel {
		t.Errorf("level %d inconsistent with score %d", a.Level, a.Score)
	}
}
