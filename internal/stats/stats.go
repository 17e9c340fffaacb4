// Package stats persists the aggregate win/loss tally across sessions. It
// is the only state that survives a process restart; full game state is
// never persisted.
package stats

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"

	"crazy-eights/internal/events"
)

// Tally is the durable record: total finished games, human wins, human
// losses.
type Tally struct {
	Games  int `json:"games"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Store reads the tally once at startup and rewrites it after every
// terminal transition. It implements events.Listener so it can sit on the
// session event bus next to the renderer.
type Store struct {
	log   *logrus.Logger
	path  string
	tally Tally
}

func NewStore(log *logrus.Logger, path string) *Store {
	return &Store{log: log, path: path}
}

// Load reads the persisted tally. An absent or malformed file is not an
// error: the tally starts from zero and the problem is logged.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnf("stats: could not read %s, starting fresh: %v", s.path, err)
		}
		s.tally = Tally{}
		return
	}
	var t Tally
	if err := json.Unmarshal(data, &t); err != nil {
		s.log.Warnf("stats: malformed %s, starting fresh: %v", s.path, err)
		s.tally = Tally{}
		return
	}
	s.tally = t
}

// Tally returns the current aggregate.
func (s *Store) Tally() Tally {
	return s.tally
}

// Record counts one finished game and rewrites the file. A write failure
// is logged and otherwise ignored - losing the tally must never take the
// game down.
func (s *Store) Record(win bool) {
	s.tally.Games++
	if win {
		s.tally.Wins++
	} else {
		s.tally.Losses++
	}
	data, err := json.MarshalIndent(s.tally, "", "  ")
	if err != nil {
		s.log.Warnf("stats: could not encode tally: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Warnf("stats: could not write %s: %v", s.path, err)
	}
}

// HandleEvent records terminal transitions of sessions a human played in.
// Headless batches leave the tally untouched.
func (s *Store) HandleEvent(e events.Event) {
	if over, ok := e.(events.GameOverEvent); ok && over.HumanPlayed {
		s.Record(over.HumanWon)
	}
}
