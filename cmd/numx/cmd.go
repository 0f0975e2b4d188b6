package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apache/arrow/go/v13/arrow/memory"
	logger "github.com/moontrade/log"
	"github.com/spf13/cobra"

	"github.com/moontrade/numx/config"
	"github.com/moontrade/numx/internal/fixture"
	"github.com/moontrade/numx/pkg/seedrand"
	"github.com/moontrade/numx/pkg/xmur3"
)

var errCount = errors.New("count must be positive")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numx",
		Short:         "Inspect seeded pseudo-random streams",
		SilenceUsage:  true,
	}
	root.AddCommand(newSeqCmd(), newHashCmd(), newPseudoCmd(), newFixturesCmd())
	return root
}

func newSeqCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "seq <seed>",
		Short: "Print the first n values of the stream for seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return errCount
			}
			r := seedrand.NewString(args[0])
			return printN(cmd.OutOrStdout(), n, func() string {
				return strconv.FormatFloat(r.Float64(), 'g', -1, 64)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", config.SequenceLength, "number of values")
	return cmd
}

func newHashCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "hash <seed>",
		Short: "Print the first n raw 32-bit hash outputs for seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return errCount
			}
			h := xmur3.New(args[0])
			return printN(cmd.OutOrStdout(), n, func() string {
				return strconv.FormatUint(uint64(h.Next()), 10)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", config.SequenceLength, "number of values")
	return cmd
}

func newPseudoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pseudo <seed>...",
		Short: "Print the salted single-shot value for each seed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, seed := range args {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", seed,
					strconv.FormatFloat(seedrand.PseudoRandom(seed), 'g', -1, 64)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFixturesCmd() *cobra.Command {
	var (
		out    string
		verify string
	)
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Write or verify an Arrow IPC regression table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verify != "" {
				return verifyFixtures(verify)
			}
			return writeFixtures(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", config.FixturePath, "output file")
	cmd.Flags().StringVar(&verify, "verify", "", "verify an existing fixture file instead of writing one")
	return cmd
}

func writeFixtures(path string) (err error) {
	rows := fixture.Streams(config.FixtureSeeds, config.FixtureSteps)
	pseudo, err := fixture.Pseudo(config.PseudoSeeds)
	if err != nil {
		return err
	}
	rows = append(rows, pseudo...)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = fixture.Encode(f, memory.DefaultAllocator, rows); err != nil {
		return err
	}
	logger.Debug("fixtures written", path)
	return nil
}

func verifyFixtures(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := fixture.Decode(f, memory.DefaultAllocator)
	if err != nil {
		return err
	}
	if err = fixture.Verify(rows); err != nil {
		logger.WarnErr(err, "fixture verification failed")
		return err
	}
	logger.Debug("fixtures verified", len(rows))
	return nil
}

func printN(w io.Writer, n int, next func() string) error {
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintln(w, next()); err != nil {
			return err
		}
	}
	return nil
}
