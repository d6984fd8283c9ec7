package query

import (
	"errors"
	"testing"

	"monitoring-srv/internal/model"
)

func cond(kind model.ConditionKind, joiner model.Joiner, value string) model.Condition {
	return model.Condition{Kind: kind, Joiner: joiner, Value: value}
}

func TestCompile_TermRendering(t *testing.T) {
	tests := []struct {
		name string
		in   model.Condition
		want string
	}{
		{
			name: "keyword renders as bare token",
			in:   cond(model.KindKeyword, model.JoinerAnd, "Contoso"),
			want: "Contoso",
		},
		{
			name: "phrase renders quoted",
			in:   cond(model.KindPhrase, model.JoinerAnd, "festival"),
			want: `"festival"`,
		},
		{
			name: "exclude renders negated",
			in:   cond(model.KindExclude, model.JoinerAnd, "lowongan"),
			want: "NOT (lowongan)",
		},
		{
			name: "domain renders as site restriction",
			in:   cond(model.KindDomain, model.JoinerAnd, "kompas.com"),
			want: "site:kompas.com",
		},
		{
			name: "author renders quoted with prefix",
			in:   cond(model.KindAuthor, model.JoinerAnd, "Redaksi Kompas"),
			want: `author:"Redaksi Kompas"`,
		},
		{
			name: "multi-word keyword renders quoted",
			in:   cond(model.KindKeyword, model.JoinerAnd, "media monitoring"),
			want: `"media monitoring"`,
		},
		{
			name: "reserved word keyword renders quoted",
			in:   cond(model.KindKeyword, model.JoinerAnd, "AND"),
			want: `"AND"`,
		},
		{
			name: "keyword with field prefix renders quoted",
			in:   cond(model.KindKeyword, model.JoinerAnd, "site:kompas.com"),
			want: `"site:kompas.com"`,
		},
		{
			name: "phrase with embedded quote is escaped",
			in:   cond(model.KindPhrase, model.JoinerAnd, `fes"tival`),
			want: `"fes\"tival"`,
		},
		{
			name: "multi-word exclude renders quoted inside the negation",
			in:   cond(model.KindExclude, model.JoinerAnd, "class action"),
			want: `NOT ("class action")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile([]model.Condition{tt.in})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := q.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompile_PerBoundaryJoiners(t *testing.T) {
	tests := []struct {
		name  string
		conds []model.Condition
		want  string
	}{
		{
			name: "each boundary uses its own joiner",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerAnd, "Contoso"),
				cond(model.KindKeyword, model.JoinerOr, "Fabrikam"),
				cond(model.KindKeyword, model.JoinerAnd, "review"),
			},
			want: "(Contoso OR Fabrikam) AND review",
		},
		{
			name: "NOT joiner means AND NOT",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerAnd, "Contoso"),
				cond(model.KindKeyword, model.JoinerNot, "lowongan"),
			},
			want: "Contoso AND NOT (lowongan)",
		},
		{
			name: "first joiner is ignored",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerNot, "Contoso"),
				cond(model.KindPhrase, model.JoinerOr, "Contoso Brand"),
			},
			want: `Contoso OR "Contoso Brand"`,
		},
		{
			name: "exclude combined with OR keeps negation on the term",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerAnd, "Contoso"),
				cond(model.KindExclude, model.JoinerOr, "lowongan"),
			},
			want: "Contoso OR NOT (lowongan)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile(tt.conds)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := q.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompile_Deterministic(t *testing.T) {
	conds := []model.Condition{
		cond(model.KindPhrase, model.JoinerAnd, "Contoso Brand"),
		cond(model.KindKeyword, model.JoinerOr, "Contoso"),
		cond(model.KindDomain, model.JoinerAnd, "kompas.com"),
		cond(model.KindExclude, model.JoinerNot, "lowongan"),
	}

	first, err := Compile(conds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 50; i++ {
		q, err := Compile(conds)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.String() != first.String() {
			t.Fatalf("compilation not deterministic: %q vs %q", q.String(), first.String())
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		conds   []model.Condition
		wantErr error
	}{
		{
			name:    "empty list",
			conds:   nil,
			wantErr: ErrEmptyConditions,
		},
		{
			name:    "blank value after trimming",
			conds:   []model.Condition{cond(model.KindKeyword, model.JoinerAnd, "   ")},
			wantErr: ErrBlankValue,
		},
		{
			name: "unknown kind",
			conds: []model.Condition{
				{Kind: "regex", Joiner: model.JoinerAnd, Value: "x"},
			},
			wantErr: ErrInvalidKind,
		},
		{
			name: "unknown joiner on a non-first condition",
			conds: []model.Condition{
				cond(model.KindKeyword, model.JoinerAnd, "a"),
				{Kind: model.KindKeyword, Joiner: "XOR", Value: "b"},
			},
			wantErr: ErrInvalidJoiner,
		},
		{
			name:    "domain with whitespace",
			conds:   []model.Condition{cond(model.KindDomain, model.JoinerAnd, "kompas .com")},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "domain with embedded quote",
			conds:   []model.Condition{cond(model.KindDomain, model.JoinerAnd, `kom"pas.com`)},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.conds)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Errorf("error %T is not a *CompileError", err)
			}
		})
	}
}

func TestCompile_ValueTrimmed(t *testing.T) {
	q, err := Compile([]model.Condition{cond(model.KindKeyword, model.JoinerAnd, "  Contoso  ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := q.String(); got != "Contoso" {
		t.Errorf("String() = %q, want %q", got, "Contoso")
	}
}
