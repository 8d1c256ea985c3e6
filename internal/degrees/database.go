// Package degrees answers "how many games apart are two players?" over a
// database of chess games.
//
// Every game links its two players with an edge; the degree of separation
// between two players is the breadth-first distance between their vertices.
// Players are addressed by name; internal/roster translates names to graph
// vertex ids and back.
package degrees

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/internal/metrics"
	"github.com/katalvlaran/degrees/internal/pgn"
	"github.com/katalvlaran/degrees/internal/roster"
)

// ErrUnknownPlayer is returned when a name does not occur in any game.
var ErrUnknownPlayer = errors.New("degrees: no games by player")

// Database is a game graph plus its name table.
//
// All methods are safe for concurrent use: queries share a read lock,
// loading and AddGame take the write lock, so a traversal never observes a
// graph mid-growth.
type Database struct {
	mu    sync.RWMutex
	graph *core.Graph
	index *roster.Index
	st    counts

	reference string
	dedup     bool
	log       *slog.Logger
}

// counts tracks what a load did with its input.
type counts struct {
	games      int
	skipped    int
	selfPairs  int
	duplicates int
}

// Stats is a snapshot of the database contents.
type Stats struct {
	Players    int    `json:"players"`
	Pairings   int    `json:"pairings"`
	Games      int    `json:"games"`
	Skipped    int    `json:"skipped"`
	SelfPairs  int    `json:"self_pairs"`
	Duplicates int    `json:"duplicates"`
	Reference  string `json:"reference"`
}

// New returns an empty Database.
func New(opts ...Option) *Database {
	db := &Database{
		graph:     core.NewGraph(),
		index:     roster.New(),
		reference: DefaultReference,
		dedup:     true,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(db)
	}

	return db
}

// Load reads a PGN stream and builds a Database from it.
func Load(r io.Reader, opts ...Option) (*Database, error) {
	db := New(opts...)
	if err := db.Reload(r); err != nil {
		return nil, err
	}

	return db, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string, opts ...Option) (*Database, error) {
	db := New(opts...)
	if err := db.ReloadFile(path); err != nil {
		return nil, err
	}

	return db, nil
}

// ReloadFile replaces the contents of db with the games in the named file.
func (db *Database) ReloadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		metrics.Loads.WithLabelValues("error").Inc()
		return fmt.Errorf("degrees: open %s: %w", path, err)
	}
	defer f.Close()

	return db.Reload(f)
}

// Reload builds a fresh graph from r and swaps it in. On error db keeps its
// previous contents. Results handed out before the swap keep answering from
// the graph they were computed on.
func (db *Database) Reload(r io.Reader) error {
	start := time.Now()
	g := core.NewGraph()
	idx := roster.New()
	var st counts

	rd := pgn.NewReader(r)
	for game, err := range rd.Games() {
		if err != nil {
			metrics.Loads.WithLabelValues("error").Inc()
			return fmt.Errorf("degrees: load: %w", err)
		}
		st.games++
		if err := db.link(g, idx, &st, game.White, game.Black); err != nil {
			metrics.Loads.WithLabelValues("error").Inc()
			return fmt.Errorf("degrees: game at line %d: %w", game.Line, err)
		}
	}
	st.skipped = rd.Skipped()

	db.mu.Lock()
	db.graph, db.index, db.st = g, idx, st
	db.mu.Unlock()

	elapsed := time.Since(start)
	metrics.Loads.WithLabelValues("ok").Inc()
	metrics.LoadDuration.Observe(elapsed.Seconds())
	db.publish()
	db.log.Info("database loaded",
		"players", idx.Len(),
		"pairings", g.EdgeCount(),
		"games", st.games,
		"skipped", st.skipped,
		"duplicates", st.duplicates,
		"duration", elapsed)

	return nil
}

// AddGame records one game between white and black, growing the graph for
// players seen for the first time.
func (db *Database) AddGame(white, black string) error {
	if white == "" || black == "" {
		return fmt.Errorf("degrees: game needs two players (white=%q black=%q)", white, black)
	}
	db.mu.Lock()
	db.st.games++
	err := db.link(db.graph, db.index, &db.st, white, black)
	db.mu.Unlock()
	if err != nil {
		return fmt.Errorf("degrees: add game: %w", err)
	}
	db.publish()

	return nil
}

// link interns both players, grows g to cover their ids and adds the edge.
func (db *Database) link(g *core.Graph, idx *roster.Index, st *counts, white, black string) error {
	w, _ := idx.Intern(white)
	b, _ := idx.Intern(black)
	g.EnsureVertices(idx.Len())

	if w == b {
		st.selfPairs++
		db.log.Debug("skipping game against self", "player", white)
		return nil
	}
	if db.dedup {
		has, err := g.HasEdge(w, b)
		if err != nil {
			return err
		}
		if has {
			st.duplicates++
			return nil
		}
	}

	return g.AddEdge(w, b)
}

// publish copies the current sizes into the gauges.
func (db *Database) publish() {
	s := db.Stats()
	metrics.Players.Set(float64(s.Players))
	metrics.Pairings.Set(float64(s.Pairings))
	metrics.Games.Set(float64(s.Games))
}

// Stats returns a snapshot of the database contents.
func (db *Database) Stats() Stats {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return Stats{
		Players:    db.index.Len(),
		Pairings:   db.graph.EdgeCount(),
		Games:      db.st.games,
		Skipped:    db.st.skipped,
		SelfPairs:  db.st.selfPairs,
		Duplicates: db.st.duplicates,
		Reference:  db.reference,
	}
}

// Reference returns the reference player's name.
func (db *Database) Reference() string { return db.reference }

// Players returns every player name in ascending order.
func (db *Database) Players() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.index.Names()
}

// Search returns the players whose names start with prefix (case-insensitive).
func (db *Database) Search(prefix string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := db.index.Match(prefix)
	result := metrics.ResultFound
	if len(out) == 0 {
		result = metrics.ResultNone
	}
	metrics.Queries.WithLabelValues(metrics.KindMatch, result).Inc()

	return out
}

// Has reports whether player occurs in any game.
func (db *Database) Has(player string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	_, ok := db.index.ID(player)

	return ok
}
