package parse

import (
	"bufio"
	"io"
	"strings"
)

// Entry is one trace line after templating. Built once at ingestion,
// never mutated; blocks and singletons reference entries by index.
type Entry struct {
	Orig     string  // verbatim source line
	Instr    string  // column judged to contain the instruction
	Template string  // Instr with numeric tokens replaced by {N0}, {N1}, ...
	Nums     []int64 // parsed values, aligned to the placeholders
	Idx      int     // zero-based position in the line stream
}

func Template(line string, idx int) Entry {
	instr := ExtractInstruction(line)
	templ, nums := MakeTemplate(instr)
	return Entry{
		Orig:     line,
		Instr:    instr,
		Template: templ,
		Nums:     nums,
		Idx:      idx,
	}
}

func ParseLines(lines []string) []Entry {
	entries := make([]Entry, len(lines))
	for i, line := range lines {
		entries[i] = Template(line, i)
	}
	return entries
}

// ReadLines collects the non-empty lines of a trace log in file order.
// Invalid UTF-8 bytes are dropped rather than treated as fatal.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for sc.Scan() {
		line := strings.ToValidUTF8(sc.Text(), "")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
