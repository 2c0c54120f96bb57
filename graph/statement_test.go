package graph

import "testing"

func TestObjectString(t *testing.T) {
	tests := []struct {
		name   string
		object Object
		want   string
	}{
		{
			name:   "iri object",
			object: IRIObject("http://example.org/football/country/7"),
			want:   "<http://example.org/football/country/7>",
		},
		{
			name:   "typed literal",
			object: Literal("Arsenal FC", "http://www.w3.org/2001/XMLSchema#string"),
			want:   `"Arsenal FC"^^<http://www.w3.org/2001/XMLSchema#string>`,
		},
		{
			name:   "plain literal",
			object: Object{Value: "plain"},
			want:   `"plain"`,
		},
		{
			name:   "escaped quotes and backslash",
			object: Object{Value: `say "hi" \ bye`},
			want:   `"say \"hi\" \\ bye"`,
		},
		{
			name:   "escaped newline",
			object: Object{Value: "line1\nline2"},
			want:   `"line1\nline2"`,
		},
		{
			name:   "typed literal escapes once",
			object: Literal(`St. James' "Park"`, "http://www.w3.org/2001/XMLSchema#string"),
			want:   `"St. James' \"Park\""^^<http://www.w3.org/2001/XMLSchema#string>`,
		},
		{
			name:   "typed literal with backslash and newline",
			object: Literal("a\\b\nc", "http://www.w3.org/2001/XMLSchema#string"),
			want:   `"a\\b\nc"^^<http://www.w3.org/2001/XMLSchema#string>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.object.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatementKey(t *testing.T) {
	s := Statement{
		Subject:   "http://example.org/football/team/42",
		Predicate: "http://example.org/football/country",
		Object:    IRIObject("http://example.org/football/country/7"),
	}

	wantKey := "<http://example.org/football/team/42> <http://example.org/football/country> <http://example.org/football/country/7>"
	if got := s.Key(); got != wantKey {
		t.Errorf("Key() = %s, want %s", got, wantKey)
	}
	if got := s.String(); got != wantKey+" ." {
		t.Errorf("String() = %s, want %s .", got, wantKey)
	}
}

func TestStatementKeyDistinguishesDatatype(t *testing.T) {
	a := Statement{Subject: "s", Predicate: "p", Object: Literal("1", "http://www.w3.org/2001/XMLSchema#integer")}
	b := Statement{Subject: "s", Predicate: "p", Object: Literal("1", "http://www.w3.org/2001/XMLSchema#string")}

	if a.Key() == b.Key() {
		t.Error("statements with different datatypes must have distinct keys")
	}
}
