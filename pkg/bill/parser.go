package bill

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

var (
	strayGlyphs   = regexp.MustCompile(`[|’I]`)
	thousandsFix  = regexp.MustCompile(`,(\d{3})`)
	lineStartMark = regexp.MustCompile(`^\d+\.\s+`)
	seqMarker     = regexp.MustCompile(`^\d+\.`)
	billDateRegex = regexp.MustCompile(`(?i)Date[:\s]*([0-3]?\d/[01]?\d/\d{2})`)
)

// A logical receipt line carries at least a sequence marker, one name token
// and four trailing columns (discount, amount, quantity, unit price).
const minItemTokens = 6

// ParsedItem is one structured candidate line extracted from OCR text. The
// raw name still needs synonym resolution before it can enter the inventory.
type ParsedItem struct {
	RawName    string
	Quantity   float64
	UnitPrice  float64
	SourceText string
}

// Preprocess strips glyphs the OCR engine commonly misreads on receipt edges
// and rewrites "1,234" to "1.234". The comma rewrite conflates a thousands
// separator with a decimal one; kept as-is because the receipts this was
// tuned against print decimals that way.
func Preprocess(text string) string {
	text = strayGlyphs.ReplaceAllString(text, "")
	return thousandsFix.ReplaceAllString(text, ".$1")
}

// Parse converts raw OCR text into parsed items. A line starting with a
// sequence marker ("1.", "2.", ...) begins a new logical item; any other line
// is treated as a wrapped continuation of the current one. Lines that fail
// the structural checks are logged and dropped, never an error.
func Parse(rawText string) []ParsedItem {
	text := Preprocess(rawText)

	var items []ParsedItem
	var current string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if lineStartMark.MatchString(line) {
			if current != "" {
				if item, ok := tokensToItem(strings.Fields(current)); ok {
					item.SourceText = current
					items = append(items, item)
				}
			}
			current = line
		} else if line != "" {
			current += " " + line
		}
	}

	if current != "" {
		if item, ok := tokensToItem(strings.Fields(current)); ok {
			item.SourceText = current
			items = append(items, item)
		}
	}

	return items
}

// tokensToItem applies the positional column layout to one logical line. The
// name span runs from the second token up to the trailing numeric columns,
// with the adjacent column token folded onto the end of the name; when the
// 4th-from-last token carries a "%" discount marker the span shortens by one.
// The last two tokens are read as quantity and unit price.
func tokensToItem(tokens []string) (ParsedItem, bool) {
	if len(tokens) == 0 || !seqMarker.MatchString(tokens[0]) {
		log.Printf("No match: %s", strings.Join(tokens, " "))
		return ParsedItem{}, false
	}

	if len(tokens) < minItemTokens {
		log.Printf("Dropping short receipt line: %s", strings.Join(tokens, " "))
		return ParsedItem{}, false
	}

	n := len(tokens)
	nameEnd := 4
	trailing := tokens[n-4]
	if strings.HasSuffix(trailing, "%") {
		nameEnd = 5
	} else {
		trailing = tokens[n-3]
	}

	var name strings.Builder
	name.WriteString(tokens[1])
	for i := 2; i < n-nameEnd; i++ {
		name.WriteString(" ")
		name.WriteString(tokens[i])
	}
	name.WriteString(" ")
	name.WriteString(trailing)

	quantity, err := strconv.ParseFloat(tokens[n-2], 64)
	if err != nil || quantity <= 0 {
		log.Printf("Dropping receipt line with bad quantity %q: %s", tokens[n-2], strings.Join(tokens, " "))
		return ParsedItem{}, false
	}

	unitPrice, err := strconv.ParseFloat(tokens[n-1], 64)
	if err != nil || unitPrice < 0 {
		log.Printf("Dropping receipt line with bad price %q: %s", tokens[n-1], strings.Join(tokens, " "))
		return ParsedItem{}, false
	}

	return ParsedItem{
		RawName:   name.String(),
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, true
}

// ExtractBillDate finds the receipt's own printed date ("Date: 07/03/25") and
// returns it as an ISO date. Two-digit years below 50 land in the 2000s.
func ExtractBillDate(text string) (string, bool) {
	match := billDateRegex.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}

	parts := strings.Split(match[1], "/")
	if len(parts) != 3 {
		return "", false
	}

	day, month, yearShort := parts[0], parts[1], parts[2]
	year, err := strconv.Atoi(yearShort)
	if err != nil {
		return "", false
	}

	century := "19"
	if year < 50 {
		century = "20"
	}

	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}

	return fmt.Sprintf("%s%s-%s-%s", century, yearShort, month, day), true
}
