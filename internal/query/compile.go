package query

import (
	"strings"

	"monitoring-srv/internal/model"
)

// Compile folds an ordered condition list into a boolean expression tree.
// Each condition after the first is combined with the accumulated
// expression using that condition's own joiner; NOT joins as AND NOT.
// The first condition's joiner is ignored since no left operand exists.
func Compile(conditions []model.Condition) (*Query, error) {
	if len(conditions) == 0 {
		return nil, &CompileError{Index: 0, Err: ErrEmptyConditions}
	}

	var root Expr
	for i, c := range conditions {
		value := strings.TrimSpace(c.Value)
		if value == "" {
			return nil, &CompileError{Index: i, Err: ErrBlankValue}
		}
		if !c.Kind.Valid() {
			return nil, &CompileError{Index: i, Err: ErrInvalidKind}
		}

		term, err := renderTerm(c.Kind, value)
		if err != nil {
			return nil, &CompileError{Index: i, Err: err}
		}
		if i == 0 {
			root = term
			continue
		}

		switch c.Joiner {
		case model.JoinerAnd:
			root = &And{L: root, R: term}
		case model.JoinerOr:
			root = &Or{L: root, R: term}
		case model.JoinerNot:
			root = &And{L: root, R: &Not{X: term}}
		default:
			return nil, &CompileError{Index: i, Err: ErrInvalidJoiner}
		}
	}

	return &Query{root: root}, nil
}

func renderTerm(kind model.ConditionKind, value string) (Expr, error) {
	switch kind {
	case model.KindPhrase:
		return &Term{Kind: TermPhrase, Value: value}, nil
	case model.KindExclude:
		return &Not{X: keywordTerm(value)}, nil
	case model.KindDomain:
		// Domains render bare after "site:", so the value must lex back
		// as a single word.
		if !lexesAsWord(value) {
			return nil, ErrInvalidValue
		}
		return &Term{Kind: TermSite, Value: value}, nil
	case model.KindAuthor:
		return &Term{Kind: TermAuthor, Value: value}, nil
	default:
		return keywordTerm(value), nil
	}
}

// keywordTerm renders a keyword as a bare token when the lexer reads it
// back as one. Anything the lexer would split or misread (whitespace,
// grouping characters, reserved words, field prefixes) is carried as a
// quoted phrase instead, which has identical substring matching
// semantics and keeps the serialized form round-trippable.
func keywordTerm(value string) Expr {
	if bareToken(value) {
		return &Term{Kind: TermToken, Value: value}
	}
	return &Term{Kind: TermPhrase, Value: value}
}

func bareToken(value string) bool {
	if !lexesAsWord(value) {
		return false
	}
	switch value {
	case "AND", "OR", "NOT":
		return false
	}
	if strings.HasPrefix(value, "site:") || strings.HasPrefix(value, "author:") {
		return false
	}
	return true
}

// lexesAsWord reports whether the value survives word lexing intact.
func lexesAsWord(value string) bool {
	return !strings.ContainsAny(value, ` ()"`)
}
