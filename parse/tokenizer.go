package parse

import (
	"strconv"
	"strings"
)

// SplitColumns splits a trimmed line on runs of two or more whitespace
// characters. Single spaces stay inside a column.
func SplitColumns(line string) []string {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil
	}
	var parts []string
	start := 0
	i := 0
	for i < len(s) {
		if !isSpace(s[i]) {
			i++
			continue
		}
		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j-i >= 2 {
			parts = append(parts, s[start:i])
			start = j
		}
		i = j
	}
	parts = append(parts, s[start:])
	return parts
}

// ExtractInstruction picks the first column containing a run of at least
// two letters. Lines with no such column are used whole.
func ExtractInstruction(line string) string {
	for _, p := range SplitColumns(line) {
		if hasAlphaRun(p, 2) {
			return strings.TrimSpace(p)
		}
	}
	return strings.TrimSpace(line)
}

// MakeTemplate replaces every numeric token in the instruction text with
// an ordinal {Nk} placeholder and returns the parsed values in order.
// A token is an optional '#', optional '$', then one or more hex digits.
// A bare digit run only starts a token after a non-alphanumeric
// character, so mnemonics like LDA survive and templating a template is
// a no-op.
func MakeTemplate(instr string) (string, []int64) {
	var b strings.Builder
	var nums []int64
	i := 0
	for i < len(instr) {
		c := instr[i]
		boundary := i == 0 || !isAlnum(instr[i-1])
		if c == '#' || c == '$' || (boundary && isHexDigit(c)) {
			j := i
			if j < len(instr) && instr[j] == '#' {
				j++
			}
			if j < len(instr) && instr[j] == '$' {
				j++
			}
			k := j
			for k < len(instr) && isHexDigit(instr[k]) {
				k++
			}
			if k > j {
				if v, ok := parseValue(instr[j:k]); ok {
					b.WriteString("{N")
					b.WriteString(strconv.Itoa(len(nums)))
					b.WriteByte('}')
					nums = append(nums, v)
				} else {
					b.WriteString(instr[i:k])
				}
				i = k
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nums
}

func parseValue(digits string) (int64, bool) {
	if v, err := strconv.ParseInt(digits, 16, 64); err == nil {
		return v, true
	}
	// Decimal fallback: a pure hex run only gets here on overflow, but
	// the branch stays in case the token scan ever admits wider shapes.
	if v, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return v, true
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r' || c == '\n'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9'
}

func hasAlphaRun(s string, min int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if isAlpha(s[i]) {
			run++
			if run >= min {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
