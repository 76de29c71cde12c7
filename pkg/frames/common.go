package frames

import (
	"iter"

	"github.com/go-gota/gota/dataframe"
)

// Overlap pairs two frame indices with the column names present in both.
type Overlap struct {
	I, J    int
	Columns []string
}

// CommonColumns yields one Overlap per unordered pair of frames, in
// combination order over the input order. The Columns slice carries no
// ordering guarantee.
func CommonColumns(dfs []dataframe.DataFrame) iter.Seq[Overlap] {
	return func(yield func(Overlap) bool) {
		for i := 0; i < len(dfs); i++ {
			names := make(map[string]struct{}, dfs[i].Ncol())
			for _, n := range dfs[i].Names() {
				names[n] = struct{}{}
			}
			for j := i + 1; j < len(dfs); j++ {
				var shared []string
				for _, n := range dfs[j].Names() {
					if _, ok := names[n]; ok {
						shared = append(shared, n)
					}
				}
				if !yield(Overlap{I: i, J: j, Columns: shared}) {
					return
				}
			}
		}
	}
}
