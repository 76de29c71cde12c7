package frames

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// NegativeDownSample keeps every row of df whose target column equals pos
// and a without-replacement sample of the neg rows at fraction p/(1-p),
// where p is the positive class's share of all rows. This reproduces the
// class skew at a reduced scale rather than balancing to 50/50. Rows come
// back in their original order. The result is an error when the computed
// fraction exceeds 1, i.e. when more negative rows would be needed than
// exist. Sampling draws from rnd, or from the shared source when rnd is
// nil; only a seeded rnd makes the result reproducible.
func NegativeDownSample(df dataframe.DataFrame, target, pos, neg string, rnd *rand.Rand) (dataframe.DataFrame, error) {
	col := df.Col(target)
	if col.Err != nil {
		return dataframe.DataFrame{}, col.Err
	}
	nrow := df.Nrow()
	if nrow == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("frames: cannot down-sample an empty frame")
	}

	var posIdx, negIdx []int
	for i, r := range col.Records() {
		switch r {
		case pos:
			posIdx = append(posIdx, i)
		case neg:
			negIdx = append(negIdx, i)
		}
	}

	posRatio := float64(len(posIdx)) / float64(nrow)
	frac := posRatio / (1 - posRatio)
	if frac > 1 {
		return dataframe.DataFrame{}, fmt.Errorf(
			"frames: sample fraction %v exceeds 1: %d negative rows cannot cover it without replacement",
			frac, len(negIdx))
	}

	n := int(math.Round(frac * float64(len(negIdx))))
	perm := permutation(rnd, len(negIdx))
	keep := append([]int(nil), posIdx...)
	for _, k := range perm[:n] {
		keep = append(keep, negIdx[k])
	}
	sort.Ints(keep)
	keep = slices.Compact(keep)

	res := df.Subset(keep)
	return res, res.Error()
}

func permutation(rnd *rand.Rand, n int) []int {
	if rnd == nil {
		return rand.Perm(n)
	}
	return rnd.Perm(n)
}
