package degrees

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/internal/metrics"
	"github.com/katalvlaran/degrees/internal/roster"
)

// ErrNoPath is returned by Degrees.Path when the target is unreachable.
var ErrNoPath = bfs.ErrNoPath

// Unreachable is the degree reported for two players with no chain of games
// between them.
const Unreachable = bfs.Unreached

// Degree returns the separation between player and the reference player.
func (db *Database) Degree(player string) (int, error) {
	return db.Between(player, db.reference)
}

// Between returns the number of games on the shortest chain from player to
// target, 0 when they are the same player and Unreachable when no chain
// exists. The search stops as soon as target is discovered.
func (db *Database) Between(player, target string) (int, error) {
	start := time.Now()
	defer func() { metrics.QueryDuration.WithLabelValues(metrics.KindPair).Observe(time.Since(start).Seconds()) }()

	db.mu.RLock()
	defer db.mu.RUnlock()

	src, err := db.lookup(player)
	if err != nil {
		metrics.Queries.WithLabelValues(metrics.KindPair, metrics.ResultUnknown).Inc()
		return Unreachable, err
	}
	dst, err := db.lookup(target)
	if err != nil {
		metrics.Queries.WithLabelValues(metrics.KindPair, metrics.ResultUnknown).Inc()
		return Unreachable, err
	}

	d, err := bfs.Distance(db.graph, src, dst)
	if err != nil {
		metrics.Queries.WithLabelValues(metrics.KindPair, metrics.ResultError).Inc()
		return Unreachable, fmt.Errorf("degrees: %q to %q: %w", player, target, err)
	}
	metrics.Queries.WithLabelValues(metrics.KindPair, outcome(d)).Inc()

	return d, nil
}

// From computes the separation of every player from source in one traversal.
func (db *Database) From(source string) (*Degrees, error) {
	start := time.Now()
	defer func() { metrics.QueryDuration.WithLabelValues(metrics.KindTree).Observe(time.Since(start).Seconds()) }()

	db.mu.RLock()
	defer db.mu.RUnlock()

	src, err := db.lookup(source)
	if err != nil {
		metrics.Queries.WithLabelValues(metrics.KindTree, metrics.ResultUnknown).Inc()
		return nil, err
	}
	res, err := bfs.BFS(db.graph, src)
	if err != nil {
		metrics.Queries.WithLabelValues(metrics.KindTree, metrics.ResultError).Inc()
		return nil, fmt.Errorf("degrees: from %q: %w", source, err)
	}
	metrics.Queries.WithLabelValues(metrics.KindTree, metrics.ResultFound).Inc()

	return &Degrees{db: db, index: db.index, source: source, res: res}, nil
}

// lookup resolves a name; callers hold db.mu.
func (db *Database) lookup(name string) (int, error) {
	id, ok := db.index.ID(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}

	return id, nil
}

func outcome(d int) string {
	if d == Unreachable {
		return metrics.ResultUnreachable
	}

	return metrics.ResultFound
}

// Degrees is the all-destinations table rooted at one player. It answers
// from the graph as it was when From ran: players added later are unknown
// to it, and a Reload does not affect it.
type Degrees struct {
	db     *Database
	index  *roster.Index
	source string
	res    *bfs.Result
}

// Source returns the player the table is rooted at.
func (d *Degrees) Source() string { return d.source }

// Degree returns the separation of player from the source, or Unreachable.
func (d *Degrees) Degree(player string) (int, error) {
	id, err := d.resolve(player)
	if err != nil {
		return Unreachable, err
	}

	return d.res.DistanceTo(id)
}

// Path returns the names on a shortest chain of games from the source to
// player, both ends included. It fails with ErrNoPath when player is
// unreachable.
func (d *Degrees) Path(player string) ([]string, error) {
	id, err := d.resolve(player)
	if err != nil {
		metrics.Queries.WithLabelValues(metrics.KindPath, metrics.ResultUnknown).Inc()
		return nil, err
	}
	ids, err := d.res.PathTo(id)
	if err != nil {
		if errors.Is(err, bfs.ErrNoPath) {
			metrics.Queries.WithLabelValues(metrics.KindPath, metrics.ResultUnreachable).Inc()
			return nil, fmt.Errorf("degrees: %q to %q: %w", d.source, player, err)
		}
		metrics.Queries.WithLabelValues(metrics.KindPath, metrics.ResultError).Inc()
		return nil, err
	}

	d.db.mu.RLock()
	names, ok := d.index.Translate(ids)
	d.db.mu.RUnlock()
	if !ok {
		metrics.Queries.WithLabelValues(metrics.KindPath, metrics.ResultError).Inc()
		return nil, fmt.Errorf("degrees: path %v has unnamed vertices", ids)
	}
	metrics.Queries.WithLabelValues(metrics.KindPath, metrics.ResultFound).Inc()

	return names, nil
}

// Reachable returns how many players, the source included, have a finite
// degree.
func (d *Degrees) Reachable() int { return len(d.res.Order) }

// resolve maps a name to an id covered by the table.
func (d *Degrees) resolve(player string) (int, error) {
	d.db.mu.RLock()
	id, ok := d.index.ID(player)
	d.db.mu.RUnlock()
	if !ok || id >= len(d.res.Dist) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}

	return id, nil
}
