package skyraid

// Phase is the run-level state machine value.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first start
	PhaseRunning              // Tick loop active
	PhaseOver                 // Terminal until an explicit reset
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Cause records which terminal condition ended a run.
type Cause int

const (
	CauseNone     Cause = iota
	CauseGround         // Character clamped at the lower playfield bound
	CauseEnemy          // Character touched an enemy
	CauseObstacle       // Character left an obstacle's gap while overlapping it
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseGround:
		return "ground"
	case CauseEnemy:
		return "enemy"
	case CauseObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// State is the mutable world owned by a single Game.
type State struct {
	Character   Character
	Projectiles []Projectile
	Enemies     []Enemy
	Obstacles   []Obstacle
	Score       int
	Tick        int // Ticks processed since the last reset
}

// Clone returns a deep copy whose slices share nothing with s.
func (s State) Clone() State {
	c := s
	c.Projectiles = append([]Projectile(nil), s.Projectiles...)
	c.Enemies = append([]Enemy(nil), s.Enemies...)
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return c
}

// Snapshot is the committed, read-only view handed to renderers.
// It never aliases the live state.
type Snapshot struct {
	State
	Phase Phase
	Cause Cause // Set once Phase is PhaseOver
}
