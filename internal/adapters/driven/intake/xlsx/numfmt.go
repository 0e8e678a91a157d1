package xlsx

import "strings"

// isDateFormat reports whether a number format displays a date. Built-in
// IDs follow ECMA-376 18.8.30 plus the common East Asian date IDs; custom
// formats count when they carry a day, month or year token outside quoted
// literals and bracketed sections.
func isDateFormat(id int, custom *string) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	if custom == nil {
		return false
	}
	return customIsDate(*custom)
}

func customIsDate(format string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(format); i++ {
		ch := format[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '\\':
			i++
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		default:
			switch strings.ToLower(string(ch)) {
			case "y", "d", "m":
				return true
			}
		}
	}
	return false
}
