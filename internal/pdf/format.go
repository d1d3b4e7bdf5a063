package pdf

import (
	"fmt"
	"strings"
)

// formatMoney renders an amount as $1,234.56 with thousands grouping and
// exactly two decimals.
func formatMoney(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}
	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := groupThousands(parts[0])
	result := "$" + intPart + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// formatMoneyWhole renders an amount as $1,234 without decimals, used in the
// compact extras column.
func formatMoneyWhole(amount float64) string {
	raw := fmt.Sprintf("%.0f", amount)
	return "$" + groupThousands(raw)
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// truncate cuts a string to at most n runes. Product names and colors can be
// accented Spanish, so byte slicing would split characters.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// abbreviateChain shortens the chain orientation for the narrow table column:
// "Derecha" -> "Der.", "Izquierda" -> "Izq.".
func abbreviateChain(chain string) string {
	if chain == "" {
		return "-"
	}
	return truncate(chain, 3) + "."
}

// abbreviateFascia maps the fascia types to the short labels that fit the
// table cell.
func abbreviateFascia(fascia string) string {
	switch fascia {
	case "Redonda":
		return "Red."
	case "Cuadrada sin forrar":
		return "C. s/f"
	case "Cuadrada forrada":
		return "C. forr."
	}
	return truncate(fascia, 8)
}

// fasciaLabel combines the abbreviated fascia type with the first letters of
// its color, e.g. "Red. (Blan)".
func fasciaLabel(fasciaType, fasciaColor string) string {
	short := abbreviateFascia(fasciaType)
	if fasciaColor == "" {
		return short
	}
	return short + " (" + truncate(fasciaColor, 4) + ")"
}

// extrasLabel compacts the flat add-ons into "F:$150 I:$200", or "-" when
// there are none.
func extrasLabel(fasciaPrice, installationPrice float64) string {
	var parts []string
	if fasciaPrice > 0 {
		parts = append(parts, "F:"+formatMoneyWhole(fasciaPrice))
	}
	if installationPrice > 0 {
		parts = append(parts, "I:"+formatMoneyWhole(installationPrice))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
