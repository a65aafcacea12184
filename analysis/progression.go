package analysis

// Progression is a constant-step arithmetic sequence of the values one
// placeholder takes across a block's repeat instances. Step 0 counts.
type Progression struct {
	First int64
	Last  int64
	Step  int64
}

// analyzeProgressions classifies each placeholder of each position in
// the repeating unit. A nil position carries no numeric data at all; a
// nil placeholder entry is irregular or has too few values.
func analyzeProgressions(streams [][][]int64) [][]*Progression {
	progs := make([][]*Progression, len(streams))
	for pos, seqs := range streams {
		if len(seqs) == 0 || len(seqs[0]) == 0 {
			continue
		}
		per := make([]*Progression, len(seqs[0]))
		for p := range per {
			per[p] = classify(seqs, p)
		}
		progs[pos] = per
	}
	return progs
}

func classify(seqs [][]int64, p int) *Progression {
	vals := make([]int64, 0, len(seqs))
	for _, ns := range seqs {
		if p >= len(ns) {
			return nil
		}
		vals = append(vals, ns[p])
	}
	if len(vals) < 2 {
		return nil
	}
	step := vals[1] - vals[0]
	for t := 2; t < len(vals); t++ {
		if vals[t]-vals[t-1] != step {
			return nil
		}
	}
	return &Progression{First: vals[0], Last: vals[len(vals)-1], Step: step}
}
