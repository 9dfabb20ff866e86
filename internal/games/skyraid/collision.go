package skyraid

// resolveCollisions applies the collision passes to a moved world in a
// fixed order and returns the terminal cause, if any.
//
// Hits are collected during a read-only scan and removed afterwards, so
// each projectile scores at most once and each enemy is consumed at most
// once per tick.
func resolveCollisions(s *State, hitReward int) Cause {
	spent := make([]bool, len(s.Projectiles))
	downed := make([]bool, len(s.Enemies))

	for i, p := range s.Projectiles {
		shot := p.Bounds()
		for j, e := range s.Enemies {
			if downed[j] {
				continue
			}
			if shot.Overlaps(e.Bounds()) {
				spent[i] = true
				downed[j] = true
				s.Score += hitReward
				break
			}
		}
	}
	s.Projectiles = drop(s.Projectiles, spent)
	s.Enemies = drop(s.Enemies, downed)

	body := s.Character.Bounds()
	for _, e := range s.Enemies {
		if body.Overlaps(e.Bounds()) {
			return CauseEnemy
		}
	}

	hspan, vspan := s.Character.HSpan(), s.Character.VSpan()
	for _, o := range s.Obstacles {
		if hspan.Overlaps(o.HSpan()) && !vspan.Within(o.GapSpan()) {
			return CauseObstacle
		}
	}

	return CauseNone
}

// drop removes the items whose index is marked in dead.
func drop[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if !dead[i] {
			kept = append(kept, it)
		}
	}
	return kept
}
