package main

import (
	"fmt"
	"os"

	"condense/analysis"
	"condense/encode"
	"condense/parse"
	"condense/serialize"
	"condense/validate"
)

const (
	defaultInput  = "result.log"
	defaultOutput = "result_condensed_more.log"
	defaultLegend = "loop_templates.txt"
)

func main() {
	input, output, legend := defaultInput, defaultOutput, defaultLegend
	args := os.Args[1:]
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}
	if len(args) > 2 {
		legend = args[2]
	}

	f, err := os.Open(input)
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}
	lines, err := parse.ReadLines(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Condensing: %s (%d lines)\n", input, len(lines))

	entries := parse.ParseLines(lines)
	fmt.Printf("  Parsed %d instruction lines.\n", len(entries))

	units := analysis.Detect(entries)
	stats := analysis.Stats(units)
	fmt.Printf("  Blocks: %d, Singletons: %d\n", stats.Blocks, stats.Singletons)
	fmt.Printf("  Entries inside blocks: %d, max repeat: %d\n", stats.InBlocks, stats.MaxRepeat)

	if err := validate.Coverage(units, len(entries)); err != nil {
		fmt.Printf("Coverage check failed: %v\n", err)
		os.Exit(1)
	}
	if rep := validate.ReplayProgressions(units); rep.Mismatches > 0 {
		fmt.Printf("Progression replay failed (%d mismatches):\n%s\n", rep.Mismatches, rep.Report)
		os.Exit(1)
	}

	table := encode.BuildTagTable(units, encode.TopTemplates)
	fmt.Printf("  Tagged %d of %d block templates\n", len(table.Tags), len(table.Order))

	out := serialize.CondensedLog(units, table)
	leg := serialize.Legend(units, table)
	fmt.Printf("  Output: %d bytes, legend: %d bytes\n", len(out), len(leg))

	if err := os.WriteFile(output, out, 0644); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(legend, leg, 0644); err != nil {
		fmt.Printf("Error writing legend: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote: %s, %s\n", output, legend)
}
