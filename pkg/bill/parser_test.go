package bill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess(t *testing.T) {
	t.Run("strips stray glyphs", func(t *testing.T) {
		assert.Equal(t, "tem 2.500", Preprocess("|Item| 2,500"))
	})

	t.Run("rewrites comma before three digits", func(t *testing.T) {
		assert.Equal(t, "12.500", Preprocess("12,500"))
	})

	t.Run("keeps comma before fewer digits", func(t *testing.T) {
		assert.Equal(t, "12,50", Preprocess("12,50"))
	})
}

func TestParse(t *testing.T) {
	t.Run("parses a well formed line", func(t *testing.T) {
		items := Parse("1. FRUIT Apple Fuji 0% 5.000 2 2.500")

		require.Len(t, items, 1)
		assert.InDelta(t, 2, items[0].Quantity, 1e-9)
		assert.InDelta(t, 2.500, items[0].UnitPrice, 1e-9)
		assert.Equal(t, "1. FRUIT Apple Fuji 0% 5.000 2 2.500", items[0].SourceText)
	})

	t.Run("folds wrapped continuation lines into the previous item", func(t *testing.T) {
		text := "1. FRUIT Apple\nFuji 0% 5.000 2 2.500\n2. VEG Carrot Local 0% 3.000 1 3.000"

		items := Parse(text)

		require.Len(t, items, 2)
		assert.Equal(t, "1. FRUIT Apple Fuji 0% 5.000 2 2.500", items[0].SourceText)
		assert.Equal(t, "2. VEG Carrot Local 0% 3.000 1 3.000", items[1].SourceText)
	})

	t.Run("drops lines with too few tokens", func(t *testing.T) {
		items := Parse("1. Apple 2 2.500")

		assert.Empty(t, items)
	})

	t.Run("drops lines with non positive quantity", func(t *testing.T) {
		items := Parse("1. FRUIT Apple Fuji 0% 5.000 0 2.500")

		assert.Empty(t, items)
	})

	t.Run("drops lines with unparseable price", func(t *testing.T) {
		items := Parse("1. FRUIT Apple Fuji 0% 5.000 2 abc")

		assert.Empty(t, items)
	})

	t.Run("ignores header lines before the first item", func(t *testing.T) {
		text := "SUPERMART\nDate: 07/03/25\n1. FRUIT Apple Fuji 0% 5.000 2 2.500"

		items := Parse(text)

		assert.Len(t, items, 1)
	})
}

func TestTokensToItemNameSpan(t *testing.T) {
	t.Run("discount column folds into the name", func(t *testing.T) {
		item, ok := tokensToItem([]string{"1.", "FRUIT", "Apple", "Fuji", "0%", "5.000", "2", "2.500"})

		require.True(t, ok)
		assert.Equal(t, "FRUIT Apple 0%", item.RawName)
	})

	t.Run("without discount marker the amount column folds instead", func(t *testing.T) {
		item, ok := tokensToItem([]string{"1.", "FRUIT", "Apple", "Fuji", "Red", "5.000", "2", "2.500"})

		require.True(t, ok)
		// the 4th-from-last token is skipped in this layout
		assert.Equal(t, "FRUIT Apple Fuji 5.000", item.RawName)
	})

	t.Run("rejects tokens without a sequence marker", func(t *testing.T) {
		_, ok := tokensToItem([]string{"FRUIT", "Apple", "Fuji", "0%", "5.000", "2", "2.500"})

		assert.False(t, ok)
	})
}

func TestExtractBillDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"standard date line", "Date: 07/03/25", "2025-03-07", true},
		{"lowercase label", "date 7/3/25", "2025-03-07", true},
		{"year pivots to previous century", "Date: 01/01/99", "1999-01-01", true},
		{"year below pivot lands in the 2000s", "Date: 01/01/49", "2049-01-01", true},
		{"no date present", "SUPERMART receipt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBillDate(tt.text)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
