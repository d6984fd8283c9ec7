package query

import (
	"reflect"
	"testing"

	"monitoring-srv/internal/model"
)

func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		conds []model.Condition
	}{
		{
			name:  "single keyword",
			conds: []model.Condition{cond(model.KindKeyword, model.JoinerAnd, "Contoso")},
		},
		{
			name: "mixed joiners and kinds",
			conds: []model.Condition{
				cond(model.KindPhrase, model.JoinerAnd, "Contoso Brand"),
				cond(model.KindKeyword, model.JoinerOr, "Contoso"),
				cond(model.KindDomain, model.JoinerAnd, "kompas.com"),
				cond(model.KindAuthor, model.JoinerOr, "Redaksi Kompas"),
				cond(model.KindExclude, model.JoinerNot, "lowongan"),
			},
		},
		{
			name: "nested negation",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerAnd, "Contoso"),
				cond(model.KindExclude, model.JoinerNot, "lowongan"),
				cond(model.KindKeyword, model.JoinerOr, "Fabrikam"),
			},
		},
		{
			name: "or then and forces parentheses",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerAnd, "macet"),
				cond(model.KindKeyword, model.JoinerOr, "keterlambatan"),
				cond(model.KindKeyword, model.JoinerOr, "stok"),
				cond(model.KindKeyword, model.JoinerAnd, "Contoso"),
			},
		},
		{
			name: "values the lexer cannot read bare",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerAnd, "media monitoring"),
				cond(model.KindKeyword, model.JoinerOr, "AND"),
				cond(model.KindKeyword, model.JoinerOr, "site:detik.com"),
				cond(model.KindExclude, model.JoinerNot, "press (release)"),
			},
		},
		{
			name: "quotes and backslashes inside quoted values",
			conds: []model.Condition{
				cond(model.KindPhrase, model.JoinerAnd, `fes"tival`),
				cond(model.KindAuthor, model.JoinerOr, `Redaksi "Kompas"`),
				cond(model.KindPhrase, model.JoinerOr, `back\slash`),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := Compile(tt.conds)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}

			text := compiled.String()
			parsed, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", text, err)
			}

			if !reflect.DeepEqual(parsed.Root(), compiled.Root()) {
				t.Errorf("round-trip tree mismatch for %q:\ncompiled: %#v\nparsed:   %#v",
					text, compiled.Root(), parsed.Root())
			}
			if parsed.String() != text {
				t.Errorf("re-serialization differs: %q vs %q", parsed.String(), text)
			}
		})
	}
}

func TestParse_HandEditedQueries(t *testing.T) {
	// Queries as the product renders them, including redundant grouping.
	tests := []struct {
		in   string
		want string
	}{
		{`("Contoso" OR "Contoso Brand") AND NOT (lowongan)`, `("Contoso" OR "Contoso Brand") AND NOT (lowongan)`},
		{`(Contoso)`, `Contoso`},
		{`Contoso AND (macet OR keterlambatan OR stok)`, `Contoso AND (macet OR keterlambatan OR stok)`},
		{`NOT lowongan`, `NOT (lowongan)`},
		{`site:detik.com AND author:"Redaksi Detik"`, `site:detik.com AND author:"Redaksi Detik"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := q.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"unterminated quote", `"Contoso`},
		{"missing right operand", "Contoso AND"},
		{"missing closing paren", "(Contoso OR Fabrikam"},
		{"trailing garbage", "Contoso ) Fabrikam"},
		{"bare operator", "AND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.in)
			}
		})
	}
}
