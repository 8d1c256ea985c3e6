package degrees

import "log/slog"

// DefaultReference is the player the one-argument degree query measures
// against.
const DefaultReference = "Morphy, Paul"

// Option configures a Database.
type Option func(*Database)

// WithReference sets the reference player. An empty name keeps the default.
func WithReference(name string) Option {
	return func(db *Database) {
		if name != "" {
			db.reference = name
		}
	}
}

// WithDedup controls whether a repeated pairing adds a parallel edge.
// The default (true) checks HasEdge first, so every pair of players is
// connected at most once no matter how many games they played.
func WithDedup(on bool) Option {
	return func(db *Database) { db.dedup = on }
}

// WithLogger sets the logger used for load summaries and rejected records.
func WithLogger(l *slog.Logger) Option {
	return func(db *Database) {
		if l != nil {
			db.log = l
		}
	}
}
