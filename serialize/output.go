package serialize

import (
	"bytes"
	"fmt"
	"strings"

	"condense/analysis"
	"condense/encode"
)

// CondensedLog renders the condensed trace. Singletons pass through
// verbatim; tagged blocks collapse to their tag plus commented sample
// lines; untagged blocks keep an inline marker with any progression
// summary, followed by the raw sample lines.
func CondensedLog(units []analysis.Unit, table encode.TagTable) []byte {
	var buf bytes.Buffer
	for _, u := range units {
		if u.Entry != nil {
			buf.WriteString(u.Entry.Orig)
			buf.WriteByte('\n')
			continue
		}
		blk := u.Block
		key := encode.SignatureKey(blk.Templates)
		if tag, ok := table.Tags[key]; ok {
			fmt.Fprintf(&buf, "%s ×%d\n", tag, blk.Count)
			buf.WriteString("# sample:\n")
			for _, e := range blk.Samples {
				buf.WriteString("# ")
				buf.WriteString(e.Orig)
				buf.WriteByte('\n')
			}
			continue
		}
		fmt.Fprintf(&buf, "[Block@%d x%d size=%d]", blk.Start, blk.Count, blk.Width)
		if summ := progressionSummary(blk); summ != "" {
			buf.WriteString(" prog=")
			buf.WriteString(summ)
		}
		buf.WriteByte('\n')
		for _, e := range blk.Samples {
			buf.WriteString(e.Orig)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// progressionSummary serializes per-position placeholder progressions
// as hex first->last,step entries, "-" where no classification exists.
// Empty result means the block carries no progression data anywhere.
func progressionSummary(blk *analysis.Block) string {
	any := false
	parts := make([]string, len(blk.Progs))
	for pos, per := range blk.Progs {
		if per == nil {
			parts[pos] = "-"
			continue
		}
		any = true
		ph := make([]string, len(per))
		for k, pr := range per {
			if pr == nil {
				ph[k] = "-"
				continue
			}
			ph[k] = fmt.Sprintf("%#x->%#x,step=%#x", pr.First, pr.Last, pr.Step)
		}
		parts[pos] = "[" + strings.Join(ph, " ") + "]"
	}
	if !any {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Legend renders the tag legend: one entry per assigned tag in rank
// order, sampled from the first block seen with that signature, then
// the template listing for every tag.
func Legend(units []analysis.Unit, table encode.TagTable) []byte {
	first := make(map[string]*analysis.Block)
	for _, u := range units {
		if u.Block == nil {
			continue
		}
		key := encode.SignatureKey(u.Block.Templates)
		if _, ok := first[key]; !ok {
			first[key] = u.Block
		}
	}

	var buf bytes.Buffer
	buf.WriteString("Legend of loop templates (automatically generated)\n\n")
	for _, key := range table.Ranked {
		tag, ok := table.Tags[key]
		if !ok {
			break
		}
		blk := first[key]
		fmt.Fprintf(&buf, "%s  occurrences: %d  block_size:%d  repeated_instances:%d\n",
			tag, table.Counts[key], blk.Width, blk.Count)
		buf.WriteString("sample block:\n")
		for _, e := range blk.Samples {
			buf.WriteString(e.Orig)
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("\nTop Template Tags:\n")
	for _, key := range table.Ranked {
		tag, ok := table.Tags[key]
		if !ok {
			break
		}
		fmt.Fprintf(&buf, "%s occurrences: %d template:\n", tag, table.Counts[key])
		for _, part := range strings.Split(key, "||") {
			buf.WriteString(part)
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
