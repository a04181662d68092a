// Package status maps free-text order statuses onto the canonical status taxonomy.
//
// Matching is driven entirely by data: an exact-match table of canonical keys and an
// ordered keyword rule list. Rule order is significant; the first rule whose keyword is
// contained in the compacted input wins.
package status

import (
	"fmt"
	"regexp"
	"strings"

	"production_scheduler/internal/domain/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule maps any of its keywords to Key.
type Rule struct {
	Key      entities.StatusKey
	Keywords []string
}

// Table is the full configuration of a Normalizer.
type Table struct {
	Keys     []entities.StatusKey
	Rules    []Rule
	Colors   map[entities.StatusKey]entities.Palette
	Fallback entities.StatusKey
}

// Canonical is the normalized (key, color) pair of a raw status.
type Canonical struct {
	Key   entities.StatusKey
	Color entities.Palette
}

// Known reports whether the raw status matched a canonical key.
func (c Canonical) Known() bool {
	return c.Key != entities.StatusUnknown
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// SoldPalette is the fixed neutral color of SOLD placeholders.
var SoldPalette = entities.Palette{Background: "#cbd5e1", Border: "#94a3b8", Text: "#475569"}

// DefaultTable is the production taxonomy.
var DefaultTable = Table{
	Keys: []entities.StatusKey{
		entities.StatusOpen,
		entities.StatusInProgress,
		entities.StatusCompleted,
		entities.StatusOnHold,
		entities.StatusCancelled,
	},
	Rules: []Rule{
		{Key: entities.StatusOpen, Keywords: []string{"open", "new", "pending"}},
		{Key: entities.StatusInProgress, Keywords: []string{"in progress", "inprogress", "wip", "started", "working"}},
		{Key: entities.StatusCompleted, Keywords: []string{"completed", "complete", "done", "closed", "shipped", "delivered"}},
		{Key: entities.StatusOnHold, Keywords: []string{"on hold", "hold", "paused", "waiting"}},
		{Key: entities.StatusCancelled, Keywords: []string{"cancelled", "canceled", "void"}},
	},
	Colors: map[entities.StatusKey]entities.Palette{
		entities.StatusOpen:       {Background: "#2563eb", Border: "#1d4ed8", Text: "#ffffff"},
		entities.StatusInProgress: {Background: "#d97706", Border: "#b45309", Text: "#ffffff"},
		entities.StatusCompleted:  {Background: "#16a34a", Border: "#15803d", Text: "#ffffff"},
		entities.StatusOnHold:     {Background: "#6b7280", Border: "#4b5563", Text: "#ffffff"},
		entities.StatusCancelled:  {Background: "#dc2626", Border: "#b91c1c", Text: "#ffffff"},
		entities.StatusUnknown:    {Background: "#0f766e", Border: "#115e59", Text: "#ffffff"},
	},
	Fallback: entities.StatusUnknown,
}

// Normalizer is immutable after construction and safe for concurrent use.
type Normalizer struct {
	exact    map[string]entities.StatusKey
	rules    []Rule
	colors   map[entities.StatusKey]entities.Palette
	fallback entities.StatusKey
}

// NewNormalizer validates the table: every key reachable from an exact match, a rule or
// the fallback must have a color entry.
func NewNormalizer(t Table) (*Normalizer, error) {
	if t.Fallback == "" {
		return nil, fmt.Errorf("status table: empty fallback key")
	}
	n := &Normalizer{
		exact:    make(map[string]entities.StatusKey, 2*len(t.Keys)),
		colors:   make(map[entities.StatusKey]entities.Palette, len(t.Colors)),
		fallback: t.Fallback,
	}
	for k, p := range t.Colors {
		n.colors[k] = p
	}

	check := func(k entities.StatusKey) error {
		if _, ok := n.colors[k]; !ok {
			return fmt.Errorf("status table: no color for key %q", k)
		}
		return nil
	}
	if err := check(t.Fallback); err != nil {
		return nil, err
	}
	n.exact[compact(string(t.Fallback))] = t.Fallback
	for _, k := range t.Keys {
		if err := check(k); err != nil {
			return nil, err
		}
		n.exact[compact(string(k))] = k
	}
	for _, r := range t.Rules {
		if err := check(r.Key); err != nil {
			return nil, err
		}
		kw := make([]string, 0, len(r.Keywords))
		for _, w := range r.Keywords {
			if c := compact(w); c != "" {
				kw = append(kw, c)
			}
		}
		n.rules = append(n.rules, Rule{Key: r.Key, Keywords: kw})
	}
	return n, nil
}

// MustNewNormalizer panics on an invalid table.
func MustNewNormalizer(t Table) *Normalizer {
	n, err := NewNormalizer(t)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize never fails: unmatched input maps onto the fallback key.
func (n *Normalizer) Normalize(raw string) Canonical {
	c := compact(raw)
	if c == "" {
		return n.canonical(n.fallback)
	}
	if k, ok := n.exact[c]; ok {
		return n.canonical(k)
	}
	for _, r := range n.rules {
		for _, w := range r.Keywords {
			if strings.Contains(c, w) {
				return n.canonical(r.Key)
			}
		}
	}
	return n.canonical(n.fallback)
}

// Color returns the palette of a canonical key, falling back to the fallback color.
func (n *Normalizer) Color(k entities.StatusKey) entities.Palette {
	if p, ok := n.colors[k]; ok {
		return p
	}
	return n.colors[n.fallback]
}

func (n *Normalizer) canonical(k entities.StatusKey) Canonical {
	return Canonical{Key: k, Color: n.colors[k]}
}

// compact lower-cases s and collapses every run of non-alphanumerics into one space,
// so "In_Progress", "in-progress" and " IN PROGRESS " are the same input.
func compact(s string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(s), " "))
}

var defaultNormalizer = MustNewNormalizer(DefaultTable)

// Default returns the normalizer built from DefaultTable.
func Default() *Normalizer {
	return defaultNormalizer
}

// Validate re-checks DefaultTable; cmd/api calls it at startup.
func Validate() error {
	_, err := NewNormalizer(DefaultTable)
	return err
}

// Normalize uses the default normalizer.
func Normalize(raw string) Canonical {
	return defaultNormalizer.Normalize(raw)
}

// Label is the display text of a key ("in_progress" -> "In Progress").
func Label(k entities.StatusKey) string {
	// cases.Caser is stateful; one per call.
	return cases.Title(language.English).String(strings.ReplaceAll(string(k), "_", " "))
}

// CSSClass is the print stylesheet class suffix of a key ("in_progress" -> "inprogress").
func CSSClass(k entities.StatusKey) string {
	return strings.ReplaceAll(string(k), "_", "")
}
