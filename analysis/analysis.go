package analysis

type CondenseStats struct {
	Entries    int
	Blocks     int
	Singletons int
	InBlocks   int // entries absorbed into blocks
	MaxRepeat  int
}

func Stats(units []Unit) CondenseStats {
	var stats CondenseStats
	for _, u := range units {
		if u.Block == nil {
			stats.Singletons++
			stats.Entries++
			continue
		}
		stats.Blocks++
		span := u.Block.Width * u.Block.Count
		stats.Entries += span
		stats.InBlocks += span
		if u.Block.Count > stats.MaxRepeat {
			stats.MaxRepeat = u.Block.Count
		}
	}
	return stats
}
