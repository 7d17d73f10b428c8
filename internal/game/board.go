package game

// Board is the set of notes on the playfield and the stats they feed.
// Notes are kept in spawn order.
type Board struct {
	Notes []*Note
	Stats Stats
}

func (b *Board) Add(n *Note) {
	b.Notes = append(b.Notes, n)
	b.Stats.TotalSpawned++
}

// Sweep drops every note further down than bound, returning how many
// were removed.
func (b *Board) Sweep(bound float64) int {
	kept := b.Notes[:0]
	for _, n := range b.Notes {
		if n.Position > bound {
			continue
		}
		kept = append(kept, n)
	}
	removed := len(b.Notes) - len(kept)
	for i := len(kept); i < len(b.Notes); i++ {
		b.Notes[i] = nil
	}
	b.Notes = kept
	return removed
}

func (b *Board) Reset() {
	b.Notes = nil
	b.Stats = Stats{}
}
