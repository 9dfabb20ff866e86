package skyraid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

func TestRenderIdleShowsTitle(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, &scriptedRand{})
	screen := core.NewScreen(80, 24)

	Render(Snapshot{State: g.State(), Phase: PhaseIdle}, cfg.Playfield, screen)

	out := screen.String()
	if !strings.Contains(out, "SKYRAID") {
		t.Error("idle screen should show the title")
	}
	if !strings.Contains(out, "Press Enter to start") {
		t.Error("idle screen should show the start hint")
	}
	if got := screen.Row(23); got != strings.Repeat(string(GroundChar), 80) {
		t.Errorf("bottom row = %q, expected ground line", got)
	}
}

func TestRenderOverShowsScore(t *testing.T) {
	cfg := config.Default()
	screen := core.NewScreen(80, 24)
	snap := Snapshot{
		State: State{Character: Character{Pos: core.Vec2{X: 100, Y: 570}, Size: 30}, Score: 42},
		Phase: PhaseOver,
		Cause: CauseGround,
	}

	Render(snap, cfg.Playfield, screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("over screen should show GAME OVER")
	}
	if !strings.Contains(out, "Score: 42") {
		t.Error("over screen should show the final score")
	}
}

func TestRenderScalesEntities(t *testing.T) {
	cfg := config.Default()
	screen := core.NewScreen(80, 24)
	snap := Snapshot{
		State: State{
			Character:   Character{Pos: core.Vec2{X: 100, Y: 250}, Size: 30},
			Projectiles: []Projectile{{Pos: core.Vec2{X: 400, Y: 300}, SpeedX: 10, Size: 8}},
			Enemies:     []Enemy{{Pos: core.Vec2{X: 585, Y: 85}, Size: 30, Edge: EdgeTop}},
		},
		Phase: PhaseRunning,
	}

	Render(snap, cfg.Playfield, screen)

	tests := []struct {
		name  string
		x, y  int
		glyph rune
		color core.Color
	}{
		// 80 columns over 800 units, 22 play rows over 600 units below the HUD
		{"character", 11, 10, CharacterChar, core.ColorYellow},
		{"projectile", 40, 12, ProjectileChar, core.ColorCyan},
		{"enemy", 60, 4, enemyChars[EdgeTop], core.ColorRed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := screen.GetCell(tc.x, tc.y)
			if cell.Rune != tc.glyph || cell.Color != tc.color {
				t.Errorf("cell (%d,%d) = %q/%v, expected %q/%v", tc.x, tc.y, cell.Rune, cell.Color, tc.glyph, tc.color)
			}
		})
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
}

func TestRenderObstacleLeavesGap(t *testing.T) {
	cfg := config.Default()
	screen := core.NewScreen(80, 24)
	snap := Snapshot{
		State: State{
			Character: Character{Pos: core.Vec2{X: 0, Y: 0}, Size: 30},
			Obstacles: []Obstacle{{X: 400, TopHeight: 150, Gap: 200, Width: 60}},
		},
		Phase: PhaseRunning,
	}

	Render(snap, cfg.Playfield, screen)

	// Rows 1-5 are the top segment, 6-12 the gap, 13-22 the bottom segment.
	for y := 1; y <= 22; y++ {
		inGap := y >= 6 && y <= 12
		got := screen.Get(40, y)
		if inGap && got == ObstacleChar {
			t.Errorf("row %d should be open", y)
		}
		if !inGap && got != ObstacleChar {
			t.Errorf("row %d = %q, expected obstacle", y, got)
		}
	}
}
