package frames

import (
	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// DropColumns removes the named columns from df. A frame with no columns is
// returned untouched whatever the drop list; otherwise an unknown name is an
// error, surfaced from the underlying removal. The resulting and requested
// column counts are logged either way. With inplace the result is also
// written back through df.
func DropColumns(df *dataframe.DataFrame, columns []string, inplace bool) (dataframe.DataFrame, error) {
	if df.Ncol() == 0 {
		return *df, nil
	}
	res := df.Drop(columns)
	if err := res.Error(); err != nil {
		return dataframe.DataFrame{}, err
	}
	logger.Info("dropped columns",
		zap.Int("ncol", res.Ncol()),
		zap.Int("requested", len(columns)),
	)
	if inplace {
		*df = res
	}
	return res, nil
}

// ColumnCut splits df into the requested columns, in the order requested,
// and everything else. Together the two frames are a lossless partition of
// the input's columns; rows are untouched in both.
func ColumnCut(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, dataframe.DataFrame, error) {
	sel := df.Select(columns)
	if err := sel.Error(); err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, err
	}
	rest := df.Drop(columns)
	if err := rest.Error(); err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, err
	}
	return sel, rest, nil
}
