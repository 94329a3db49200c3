package usecase

import (
	"testing"
)

func TestInterpret_PriceExtraction(t *testing.T) {
	interp := NewInterpreter(false)

	tests := []struct {
		name      string
		query     string
		wantPrice float64
		wantSet   bool
	}{
		{"under with dollar sign", "Show me products under $300", 300, true},
		{"under without dollar sign", "Find chairs under 200", 200, true},
		{"below", "lamps below 75", 75, true},
		{"less than with decimals", "desks less than 99.50", 99.50, true},
		{"comparison operator", "sofas <= 450", 450, true},
		{"bare dollar amount fallback", "a $150 lamp", 150, true},
		{"first price wins", "chairs under $50 or under $100", 50, true},
		{"no price pattern", "Find me a chair", 0, false},
		{"bare number is not a price", "Find chairs 200", 0, false},
		{"empty query", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := interp.Interpret(tt.query)

			if filter.HasMaxPrice() != tt.wantSet {
				t.Fatalf("HasMaxPrice() = %v, want %v", filter.HasMaxPrice(), tt.wantSet)
			}
			if tt.wantSet && *filter.MaxPrice != tt.wantPrice {
				t.Errorf("MaxPrice = %v, want %v", *filter.MaxPrice, tt.wantPrice)
			}
		})
	}
}

func TestInterpret_KeywordExtraction(t *testing.T) {
	interp := NewInterpreter(false)

	tests := []struct {
		name        string
		query       string
		wantKeyword string
	}{
		{"strips filler and singularizes", "Show me chairs under $200", "chair"},
		{"keeps multi-word phrase", "Find me a blue lamp", "blue lamp"},
		{"plain keyword", "chairs", "chair"},
		{"price words removed", "under $300", ""},
		{"generic terms removed", "Show me products under $300", ""},
		{"leftover number removed", "Find chairs under 200", "chair"},
		{"all numeric remainder rejected", "12345", ""},
		{"punctuation stripped", "lamps!!!", "lamp"},
		{"double s not singularized", "glass", "glass"},
		{"uppercase input", "UNDER $40 LAMPS", "lamp"},
		{"unparseable degrades to empty", "??? !!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := interp.Interpret(tt.query)

			if filter.Keyword != tt.wantKeyword {
				t.Errorf("Keyword = %q, want %q", filter.Keyword, tt.wantKeyword)
			}
		})
	}
}

func TestInterpret_NeverFails(t *testing.T) {
	interp := NewInterpreter(false)

	// Garbage input degrades to the all-absent filter, never an error
	for _, query := range []string{"", "    ", "$$$", "...", "0 0 0"} {
		filter := interp.Interpret(query)
		if !filter.IsEmpty() {
			t.Errorf("Interpret(%q) = %+v, want empty filter", query, filter)
		}
	}
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chairs", "chair"},
		{"lamps", "lamp"},
		{"glass", "glass"},
		{"gas", "gas"},
		{"a", "a"},
		{"desk", "desk"},
	}

	for _, tt := range tests {
		if got := singularize(tt.in); got != tt.want {
			t.Errorf("singularize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
