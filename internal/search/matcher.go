// Package search implements free-text name matching over a GORM query.
//
// Single-term searches are ranked by trigram similarity when the store
// provides a similarity() function (pg_trgm); availability is detected by a
// failed query, not a capability probe, and failures degrade silently to
// case-insensitive substring containment. Multi-term searches always use a
// conjunction of per-term containment clauses.
package search

import (
	"log/slog"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Strategy applies a search predicate and its ordering to a query.
type Strategy interface {
	Apply(q *gorm.DB, column string) *gorm.DB
}

// Trigram ranks rows by similarity score above Threshold, descending by
// score then ascending by name.
type Trigram struct {
	Term      string
	Threshold float64
}

func (t Trigram) Apply(q *gorm.DB, column string) *gorm.DB {
	return q.
		Where("similarity("+column+", ?) >= ?", t.Term, t.Threshold).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "similarity(" + column + ", ?) DESC, " + column + " ASC",
			Vars:               []interface{}{t.Term},
			WithoutParentheses: true,
		}})
}

// Substring matches case-insensitive containment of a single term.
type Substring struct {
	Term string
}

func (s Substring) Apply(q *gorm.DB, column string) *gorm.DB {
	return q.
		Where("LOWER("+column+") LIKE ?", Pattern(s.Term)).
		Order(column + " ASC")
}

// MultiTerm requires every term to independently match somewhere in the
// column (AND semantics across terms).
type MultiTerm struct {
	Terms []string
}

func (m MultiTerm) Apply(q *gorm.DB, column string) *gorm.DB {
	for _, term := range m.Terms {
		q = q.Where("LOWER("+column+") LIKE ?", Pattern(term))
	}
	return q.Order(column + " ASC")
}

// Pattern wraps a filter value in wildcards for case-insensitive containment.
func Pattern(v string) string {
	return "%" + strings.ToLower(v) + "%"
}

// NameSearch selects and executes a strategy for a free-text search.
type NameSearch struct {
	Threshold  float64
	UseTrigram bool
}

func (s NameSearch) strategies(term string) []Strategy {
	terms := strings.Fields(term)
	if len(terms) > 1 {
		return []Strategy{MultiTerm{Terms: terms}}
	}
	if s.UseTrigram {
		return []Strategy{
			Trigram{Term: term, Threshold: s.Threshold},
			Substring{Term: term},
		}
	}
	return []Strategy{Substring{Term: term}}
}

// Run counts and fetches one page of matches for term into dest. base must
// carry any other filter clauses already; each strategy attempt runs on a
// fresh session so a failed similarity query leaves no state behind.
func (s NameSearch) Run(base *gorm.DB, column, term string, limit, offset int, dest interface{}) (int64, error) {
	strategies := s.strategies(term)
	var lastErr error
	for i, strat := range strategies {
		total, err := runStrategy(base.Session(&gorm.Session{}), strat, column, limit, offset, dest)
		if err == nil {
			return total, nil
		}
		lastErr = err
		if i < len(strategies)-1 {
			slog.Warn("similarity search unavailable, falling back to substring match", "error", err)
		}
	}
	return 0, lastErr
}

func runStrategy(q *gorm.DB, strat Strategy, column string, limit, offset int, dest interface{}) (int64, error) {
	q = strat.Apply(q, column)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if err := q.Limit(limit).Offset(offset).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
