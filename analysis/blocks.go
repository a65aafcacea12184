package analysis

import (
	"condense/parse"
)

// MaxBlockWidth bounds the repeat-unit width probed at each position.
const MaxBlockWidth = 12

// Block is a maximal run of Count >= 2 consecutive repeats of a
// fixed-width window of templates.
type Block struct {
	Start     int           // position of the first entry
	Width     int           // entries per repeat instance
	Count     int           // repeat instances, including the first
	Templates []string      // the repeating unit, order-exact
	Samples   []parse.Entry // first repeat instance
	Streams   [][][]int64   // per position, per instance, the nums tuple
	Progs     [][]*Progression
}

// Unit is one element of the condensed stream: either a repeat block or
// a single line that no block absorbed. Exactly one field is set.
type Unit struct {
	Block *Block
	Entry *parse.Entry
}

// Detect partitions the entry sequence into repeat blocks and
// singletons, covering every entry exactly once in original order.
func Detect(entries []parse.Entry) []Unit {
	var units []Unit
	i := 0
	for i < len(entries) {
		blk := tryBlock(entries, i)
		if blk == nil {
			units = append(units, Unit{Entry: &entries[i]})
			i++
			continue
		}
		units = append(units, Unit{Block: blk})
		i = blk.Start + blk.Width*blk.Count
	}
	return units
}

// tryBlock probes widths from MaxBlockWidth down to 1 and commits the
// first width that repeats at least once. The widest qualifying width
// wins even when a narrower one would repeat more often; output
// reproducibility depends on this ordering.
func tryBlock(entries []parse.Entry, i int) *Block {
	for width := MaxBlockWidth; width >= 1; width-- {
		if i+width*2 > len(entries) {
			continue
		}
		sig := make([]string, width)
		streams := make([][][]int64, width)
		for k := 0; k < width; k++ {
			sig[k] = entries[i+k].Template
			streams[k] = append(streams[k], entries[i+k].Nums)
		}
		count := 1
		j := i + width
		for j+width <= len(entries) && windowMatches(entries, j, sig) {
			for k := 0; k < width; k++ {
				streams[k] = append(streams[k], entries[j+k].Nums)
			}
			count++
			j += width
		}
		if count > 1 {
			return &Block{
				Start:     i,
				Width:     width,
				Count:     count,
				Templates: sig,
				Samples:   entries[i : i+width],
				Streams:   streams,
				Progs:     analyzeProgressions(streams),
			}
		}
	}
	return nil
}

func windowMatches(entries []parse.Entry, j int, sig []string) bool {
	for k, t := range sig {
		if entries[j+k].Template != t {
			return false
		}
	}
	return true
}
