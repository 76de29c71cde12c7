package frames

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Categorize replaces each named column of df with integer codes assigned in
// first-appearance order, so that code i in a column always decodes to the
// i-th entry of that column's returned value list. Null entries become code
// -1 and never enter the list. A non-empty `as` stores the codes with that
// series type instead of Int. The frame is rewritten through df; the decode
// tables are returned keyed by column name.
func Categorize(df *dataframe.DataFrame, columns []string, as series.Type) (map[string][]string, error) {
	codeType := series.Int
	if as != "" {
		codeType = as
	}
	decode := make(map[string][]string, len(columns))
	for _, name := range columns {
		col := df.Col(name)
		if col.Err != nil {
			return nil, col.Err
		}
		isNaN := col.IsNaN()
		codes := make([]int, col.Len())
		index := make(map[string]int)
		var uniques []string
		for i, r := range col.Records() {
			if isNaN[i] {
				codes[i] = -1
				continue
			}
			c, ok := index[r]
			if !ok {
				c = len(uniques)
				index[r] = c
				uniques = append(uniques, r)
			}
			codes[i] = c
		}
		res := df.Mutate(series.New(codes, codeType, name))
		if err := res.Error(); err != nil {
			return nil, err
		}
		*df = res
		decode[name] = uniques
	}
	return decode, nil
}
