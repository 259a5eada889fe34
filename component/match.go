package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchState is the game flow state.
type MatchState int

const (
	MatchMenu MatchState = iota
	MatchPlaying
	MatchGameOver
)

func (s MatchState) String() string {
	switch s {
	case MatchPlaying:
		return "playing"
	case MatchGameOver:
		return "game_over"
	default:
		return "menu"
	}
}

type MatchConfig struct {
	Duration    float64
	TargetScore int
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{Duration: 60, TargetScore: 100}
}

// MatchResult summarises a finished match.
type MatchResult struct {
	ID    uuid.UUID
	Score int
	Won   bool
	Time  float64
}

// Match is the timed score-attack game manager.
type Match struct {
	cfg   MatchConfig
	cues  CueSink
	log   *zap.Logger
	state MatchState

	id        uuid.UUID
	score     int
	remaining float64

	OnScoreChanged func(score int)
	OnEnded        func(result MatchResult)
}

func NewMatch(cfg MatchConfig, cues CueSink, log *zap.Logger) *Match {
	if log == nil {
		log = zap.NewNop()
	}
	return &Match{cfg: cfg, cues: cues, log: log}
}

func (m *Match) State() MatchState   { return m.state }
func (m *Match) Active() bool        { return m.state == MatchPlaying }
func (m *Match) Score() int          { return m.score }
func (m *Match) Remaining() float64  { return m.remaining }
func (m *Match) ID() uuid.UUID       { return m.id }
func (m *Match) Config() MatchConfig { return m.cfg }

// Start resets score and timer and enters Playing.
func (m *Match) Start() {
	m.id = uuid.New()
	m.score = 0
	m.remaining = m.cfg.Duration
	m.state = MatchPlaying
	m.cue(CueGameStart)
	m.log.Info("match: started",
		zap.Stringer("match", m.id),
		zap.Float64("duration", m.cfg.Duration),
		zap.Int("target_score", m.cfg.TargetScore),
	)
	if m.OnScoreChanged != nil {
		m.OnScoreChanged(0)
	}
}

// AddScore adds points while playing; reaching the target score wins the match.
func (m *Match) AddScore(points int) bool {
	if m.state != MatchPlaying || points == 0 {
		return false
	}
	m.score += points
	if m.OnScoreChanged != nil {
		m.OnScoreChanged(m.score)
	}
	if m.cfg.TargetScore > 0 && m.score >= m.cfg.TargetScore {
		m.End(true)
	}
	return true
}

// Tick counts the match clock down; running out of time loses.
func (m *Match) Tick(dt float64) {
	if m.state != MatchPlaying || m.cfg.Duration <= 0 {
		return
	}
	m.remaining -= dt
	if m.remaining <= 0 {
		m.remaining = 0
		m.End(false)
	}
}

// End finishes a running match.
func (m *Match) End(won bool) {
	if m.state != MatchPlaying {
		return
	}
	m.state = MatchGameOver
	m.cue(CueGameOver)
	result := MatchResult{ID: m.id, Score: m.score, Won: won, Time: m.cfg.Duration - m.remaining}
	m.log.Info("match: ended",
		zap.Stringer("match", m.id),
		zap.Int("score", m.score),
		zap.Bool("won", won),
	)
	if m.OnEnded != nil {
		m.OnEnded(result)
	}
}

// Reset returns to the menu.
func (m *Match) Reset() {
	m.state = MatchMenu
	m.score = 0
	m.remaining = 0
}

func (m *Match) cue(id CueID) {
	if m.cues != nil {
		m.cues.PlayCue(id, mgl64.Vec3{})
	}
}
