// Command eda walks a CSV file through the library: column summary,
// optional column drops, categorical encoding, class-balanced
// down-sampling and a grid of quantile-quantile plots.
//
// Example:
//
//	eda --input train.csv --drop id --categorize city,channel \
//	    --target label --pos 1 --neg 0 --seed 7 --qq qq.png
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcwl/eda/pkg/frames"
	"github.com/gcwl/eda/pkg/inspect"
	"github.com/gcwl/eda/pkg/qq"
)

var (
	input    string
	nSamples int
	styled   bool
	dropCols []string
	catCols  []string
	target   string
	pos, neg string
	seed     int64
	qqOut    string
)

func main() {
	root := &cobra.Command{
		Use:          "eda",
		Short:        "Explore a CSV: column summary, categorical codes, down-sampling, QQ plots",
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().StringVar(&input, "input", "data.csv", "path to the input CSV")
	root.Flags().IntVar(&nSamples, "samples", 33, "distinct-value preview size per column")
	root.Flags().BoolVar(&styled, "styled", true, "decorate the column summary for the terminal")
	root.Flags().StringSliceVar(&dropCols, "drop", nil, "columns to drop before anything else")
	root.Flags().StringSliceVar(&catCols, "categorize", nil, "columns to encode as integer codes")
	root.Flags().StringVar(&target, "target", "", "binary outcome column for down-sampling")
	root.Flags().StringVar(&pos, "pos", "1", "positive outcome value")
	root.Flags().StringVar(&neg, "neg", "0", "negative outcome value")
	root.Flags().Int64Var(&seed, "seed", 0, "random seed for down-sampling (0 = unseeded)")
	root.Flags().StringVar(&qqOut, "qq", "", "write the QQ plot grid to this PNG path")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()
	frames.SetLogger(logger)

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if err := df.Error(); err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	if len(dropCols) > 0 {
		if _, err := frames.DropColumns(&df, dropCols, true); err != nil {
			return err
		}
	}

	if styled {
		fmt.Print(inspect.Styled(df, nSamples, nil))
	} else {
		fmt.Println(inspect.Info(df, nSamples))
	}

	if len(catCols) > 0 {
		decode, err := frames.Categorize(&df, catCols, series.Int)
		if err != nil {
			return err
		}
		for _, c := range catCols {
			fmt.Printf("%s: %d categories %v\n", c, len(decode[c]), decode[c])
		}
	}

	if target != "" {
		var rnd *rand.Rand
		if seed != 0 {
			rnd = rand.New(rand.NewSource(seed))
		}
		sampled, err := frames.NegativeDownSample(df, target, pos, neg, rnd)
		if err != nil {
			return err
		}
		logger.Info("down-sampled",
			zap.Int("rows_in", df.Nrow()),
			zap.Int("rows_out", sampled.Nrow()),
		)
		df = sampled
	}

	if qqOut != "" {
		fig, err := qq.Plot(df)
		if err != nil {
			return err
		}
		out, err := os.Create(qqOut)
		if err != nil {
			return err
		}
		defer out.Close()
		if _, err := fig.WriteTo(out); err != nil {
			return err
		}
		logger.Info("wrote QQ grid", zap.String("path", qqOut))
	}
	return nil
}
