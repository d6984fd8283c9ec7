// Package query compiles ordered condition lists into canonical boolean
// queries and evaluates them against content items. Compilation and
// matching are pure; values of *Query are immutable and safe to share
// across goroutines.
package query

import "strings"

// Operator precedence, tightest last. NOT binds tightest, AND binds
// tighter than OR. Serialization parenthesizes exactly where a child's
// precedence is lower than its parent's, which keeps the canonical text
// unambiguous and byte-deterministic.
const (
	precOr = iota + 1
	precAnd
	precNot
	precTerm
)

// Expr is a node of the compiled boolean expression tree.
type Expr interface {
	write(sb *strings.Builder)
	precedence() int
}

// TermKind distinguishes the leaf term flavors.
type TermKind int

const (
	TermToken  TermKind = iota // bare keyword
	TermPhrase                 // quoted literal
	TermSite                   // site:domain
	TermAuthor                 // author:"name"
)

// Term is a leaf: one searchable token, phrase, or field restriction.
type Term struct {
	Kind  TermKind
	Value string
}

func (t *Term) precedence() int { return precTerm }

func (t *Term) write(sb *strings.Builder) {
	switch t.Kind {
	case TermPhrase:
		writeQuoted(sb, t.Value)
	case TermSite:
		sb.WriteString("site:")
		sb.WriteString(t.Value)
	case TermAuthor:
		sb.WriteString("author:")
		writeQuoted(sb, t.Value)
	default:
		sb.WriteString(t.Value)
	}
}

// writeQuoted emits a quoted literal, backslash-escaping embedded quotes
// and backslashes so the lexer reads the value back unchanged.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
}

// Not negates its child.
type Not struct {
	X Expr
}

func (n *Not) precedence() int { return precNot }

func (n *Not) write(sb *strings.Builder) {
	sb.WriteString("NOT (")
	n.X.write(sb)
	sb.WriteByte(')')
}

// And is a binary conjunction.
type And struct {
	L, R Expr
}

func (a *And) precedence() int { return precAnd }

func (a *And) write(sb *strings.Builder) {
	writeChild(sb, a.L, precAnd)
	sb.WriteString(" AND ")
	writeChild(sb, a.R, precAnd)
}

// Or is a binary disjunction.
type Or struct {
	L, R Expr
}

func (o *Or) precedence() int { return precOr }

func (o *Or) write(sb *strings.Builder) {
	writeChild(sb, o.L, precOr)
	sb.WriteString(" OR ")
	writeChild(sb, o.R, precOr)
}

func writeChild(sb *strings.Builder, child Expr, parent int) {
	if child.precedence() < parent {
		sb.WriteByte('(')
		child.write(sb)
		sb.WriteByte(')')
		return
	}
	child.write(sb)
}

// Query is an immutable compiled boolean query.
type Query struct {
	root Expr
}

// Root exposes the expression tree for structural inspection.
func (q *Query) Root() Expr { return q.root }

// String renders the canonical serialized form. Identical trees always
// serialize to byte-identical text.
func (q *Query) String() string {
	var sb strings.Builder
	q.root.write(&sb)
	return sb.String()
}
