package skyraid

import (
	"testing"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

func TestAutopilot(t *testing.T) {
	cfg := config.Default()
	gap := Obstacle{X: 300, TopHeight: 200, Gap: 200, Width: 60} // center at 300

	tests := []struct {
		name    string
		y       float64
		enemies []Enemy
		flap    bool
		fire    bool
	}{
		{name: "below gap center", y: 320, flap: true},
		{name: "above gap center", y: 200},
		{name: "enemy ahead in lane", y: 200, enemies: []Enemy{enemyAt(400, 200)}, fire: true},
		{name: "enemy behind", y: 200, enemies: []Enemy{enemyAt(20, 200)}},
		{name: "enemy out of lane", y: 200, enemies: []Enemy{enemyAt(400, 400)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := Snapshot{
				State: State{
					Character: Character{Pos: core.Vec2{X: 100, Y: tc.y}, Size: 30},
					Obstacles: []Obstacle{gap},
					Enemies:   tc.enemies,
				},
				Phase: PhaseRunning,
			}
			flap, fire := Autopilot(snap, cfg)
			if flap != tc.flap {
				t.Errorf("flap = %v, expected %v", flap, tc.flap)
			}
			if fire != tc.fire {
				t.Errorf("fire = %v, expected %v", fire, tc.fire)
			}
		})
	}
}

func TestAutopilotSkipsPassedObstacles(t *testing.T) {
	cfg := config.Default()
	snap := Snapshot{
		State: State{
			Character: Character{Pos: core.Vec2{X: 100, Y: 100}, Size: 30},
			Obstacles: []Obstacle{
				{X: 0, TopHeight: 0, Gap: 100, Width: 60},     // already behind
				{X: 300, TopHeight: 400, Gap: 150, Width: 60}, // next gap is low
			},
		},
		Phase: PhaseRunning,
	}

	if flap, _ := Autopilot(snap, cfg); flap {
		t.Error("autopilot should dive toward the next gap, not the passed one")
	}
}
