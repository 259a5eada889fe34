package component

import core "github.com/milk9111/vrarena/component"

var MatchComponent = NewComponent[core.Match]()

var SpawnerComponent = NewComponent[core.TargetSpawner]()

// MatchStats accumulates combat counters for the current match.
type MatchStats struct {
	ShotsFired       int
	Hits             int
	Headshots        int
	Kills            int
	TargetsDestroyed int
	PlayerDeaths     int
}

// Accuracy is hits per shot fired.
func (s MatchStats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

var MatchStatsComponent = NewComponent[MatchStats]()
