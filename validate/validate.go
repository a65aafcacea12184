package validate

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"condense/analysis"
)

// Coverage checks that the unit sequence covers positions 0..total-1
// exactly once, in order.
func Coverage(units []analysis.Unit, total int) error {
	next := 0
	for _, u := range units {
		switch {
		case u.Entry != nil:
			if u.Entry.Idx != next {
				return fmt.Errorf("singleton at position %d, expected %d", u.Entry.Idx, next)
			}
			next++
		case u.Block != nil:
			if u.Block.Start != next {
				return fmt.Errorf("block at position %d, expected %d", u.Block.Start, next)
			}
			next += u.Block.Width * u.Block.Count
		default:
			return fmt.Errorf("empty unit at position %d", next)
		}
	}
	if next != total {
		return fmt.Errorf("covered %d entries, expected %d", next, total)
	}
	return nil
}

type ReplayResult struct {
	Sequences  int // classified placeholder sequences replayed
	Mismatches int
	Report     string
}

// ReplayProgressions regenerates every classified progression from its
// (first, step) pair and compares it against the recorded value
// streams. Mismatches produce a line diff of expected vs recorded.
func ReplayProgressions(units []analysis.Unit) ReplayResult {
	var res ReplayResult
	var want, got []string
	for _, u := range units {
		if u.Block == nil {
			continue
		}
		blk := u.Block
		for pos, per := range blk.Progs {
			for k, pr := range per {
				if pr == nil {
					continue
				}
				res.Sequences++
				for inst := 0; inst < blk.Count; inst++ {
					expected := pr.First + pr.Step*int64(inst)
					actual := blk.Streams[pos][inst][k]
					want = append(want, fmt.Sprintf("block@%d pos=%d N%d i%d %#x",
						blk.Start, pos, k, inst, expected))
					got = append(got, fmt.Sprintf("block@%d pos=%d N%d i%d %#x",
						blk.Start, pos, k, inst, actual))
					if expected != actual {
						res.Mismatches++
					}
				}
			}
		}
	}
	if res.Mismatches > 0 {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(strings.Join(want, "\n"), strings.Join(got, "\n"), true)
		res.Report = dmp.DiffPrettyText(diffs)
	}
	return res
}
