package encode

import (
	"fmt"
	"testing"

	"condense/analysis"
)

func blockUnit(start, count int, templates ...string) analysis.Unit {
	return analysis.Unit{Block: &analysis.Block{
		Start:     start,
		Width:     len(templates),
		Count:     count,
		Templates: templates,
	}}
}

func TestBuildTagTableRanking(t *testing.T) {
	units := []analysis.Unit{
		blockUnit(0, 3, "LDA {N0}", "STA {N1}"),
		blockUnit(6, 5, "INX"),
		blockUnit(11, 4, "LDA {N0}", "STA {N1}"), // same signature, total 7
	}
	table := BuildTagTable(units, TopTemplates)

	key := SignatureKey([]string{"LDA {N0}", "STA {N1}"})
	if table.Counts[key] != 7 {
		t.Errorf("count = %d, want 7", table.Counts[key])
	}
	if table.Tags[key] != "<L001>" {
		t.Errorf("tag = %q, want <L001>", table.Tags[key])
	}
	if table.Tags[SignatureKey([]string{"INX"})] != "<L002>" {
		t.Errorf("second tag = %q, want <L002>", table.Tags["INX"])
	}
}

func TestBuildTagTableTieOrder(t *testing.T) {
	// Equal totals: first-encounter order decides, every run.
	units := []analysis.Unit{
		blockUnit(0, 4, "DEX"),
		blockUnit(4, 4, "INY"),
	}
	table := BuildTagTable(units, TopTemplates)
	if table.Tags["DEX"] != "<L001>" || table.Tags["INY"] != "<L002>" {
		t.Errorf("tags %q/%q, want <L001>/<L002>", table.Tags["DEX"], table.Tags["INY"])
	}
}

func TestBuildTagTableExhaustion(t *testing.T) {
	var units []analysis.Unit
	for i := 0; i < TopTemplates+10; i++ {
		// Distinct signatures with strictly descending totals.
		units = append(units, blockUnit(i*4, TopTemplates+20-i,
			fmt.Sprintf("LDA {N0},%d", i)))
	}
	table := BuildTagTable(units, TopTemplates)
	if len(table.Tags) != TopTemplates {
		t.Fatalf("tagged %d signatures, want %d", len(table.Tags), TopTemplates)
	}
	last := table.Ranked[TopTemplates-1]
	if table.Tags[last] != fmt.Sprintf("<L%03d>", TopTemplates) {
		t.Errorf("last tag = %q", table.Tags[last])
	}
	beyond := table.Ranked[TopTemplates]
	if _, ok := table.Tags[beyond]; ok {
		t.Errorf("signature past the limit got tag %q", table.Tags[beyond])
	}
}

func TestBuildTagTableNoBlocks(t *testing.T) {
	e := analysis.Unit{}
	table := BuildTagTable([]analysis.Unit{e}, TopTemplates)
	if len(table.Order) != 0 || len(table.Tags) != 0 {
		t.Errorf("got %d signatures, %d tags, want none", len(table.Order), len(table.Tags))
	}
}
