package helpers

import "fmt"

// FormatUSD formats a dollar amount with thousand separators, e.g. $1,250,000.
func FormatUSD(amount float64) string {
	// Pain figures are coarse estimates; cents are noise
	value := int64(amount)

	negative := value < 0
	if negative {
		value = -value
	}

	str := fmt.Sprintf("%d", value)
	length := len(str)

	if length <= 3 {
		if negative {
			return fmt.Sprintf("-$%s", str)
		}
		return fmt.Sprintf("$%s", str)
	}

	// Build the formatted string with commas as thousand separators
	var result string
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result += ","
		}
		result += string(digit)
	}

	if negative {
		return fmt.Sprintf("-$%s", result)
	}
	return fmt.Sprintf("$%s", result)
}
