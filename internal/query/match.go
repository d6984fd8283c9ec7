package query

import (
	"strings"

	"monitoring-srv/internal/model"
)

// document is the pre-lowered view of a content item's searchable fields.
type document struct {
	text   string
	domain string
	author string
}

// Matches evaluates the compiled query against the item's searchable
// text (title + snippet). Token and phrase terms use case-insensitive
// substring semantics; site: and author: require equality. AND/OR
// short-circuit, NOT inverts. Matching is total: a well-formed query
// always yields a boolean.
func (q *Query) Matches(item model.ContentItem) bool {
	doc := document{
		text:   strings.ToLower(item.Title + " " + item.Snippet),
		domain: item.Domain,
		author: item.Author,
	}
	return matches(q.root, doc)
}

func matches(e Expr, doc document) bool {
	switch n := e.(type) {
	case *Term:
		return matchTerm(n, doc)
	case *Not:
		return !matches(n.X, doc)
	case *And:
		return matches(n.L, doc) && matches(n.R, doc)
	case *Or:
		return matches(n.L, doc) || matches(n.R, doc)
	}
	// Unreachable for trees built by Compile or Parse.
	return false
}

func matchTerm(t *Term, doc document) bool {
	switch t.Kind {
	case TermSite:
		return strings.EqualFold(doc.domain, t.Value)
	case TermAuthor:
		return doc.author == t.Value
	default:
		return strings.Contains(doc.text, strings.ToLower(t.Value))
	}
}

// MatchesFilters checks the tracker's auxiliary filters. Empty sets are
// wildcards, as is SentimentAll.
func MatchesFilters(item model.ContentItem, f model.TrackerFilters) bool {
	if len(f.SourceTypes) > 0 && !containsFold(f.SourceTypes, item.SourceType) {
		return false
	}
	if len(f.Countries) > 0 && !containsFold(f.Countries, item.Country) {
		return false
	}
	if f.Sentiment != "" && f.Sentiment != model.SentimentAll && f.Sentiment != item.Sentiment {
		return false
	}
	return true
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
