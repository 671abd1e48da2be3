package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	coincore "github.com/qcoinlab/go-qcc/internal/coin"
	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
)

func newFindCmd() *cobra.Command {
	var (
		coins       int
		counterfeit int
		shots       int
		seed        int64
		maxRetries  int
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Run the counterfeit search and print the located index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			finder, err := coincore.NewFinder(quantum.NewSimulator(), coins)
			if err != nil {
				return err
			}
			finder.SetMaxPrepRetries(maxRetries)

			outcome, err := finder.Find(counterfeit, shots, seed)
			if err != nil {
				return err
			}

			fmt.Printf("coins:        %d\n", coins)
			fmt.Printf("counterfeit:  %d (hidden scenario input)\n", counterfeit)
			fmt.Printf("reported:     %d\n", outcome.Index)
			fmt.Printf("shots:        %d (%d preparation attempts)\n", outcome.Shots, outcome.TotalAttempts)
			fmt.Println("counts:")
			printCounts(outcome.Counts)

			if outcome.Index != counterfeit {
				return fmt.Errorf("reported index %d does not match scenario input %d", outcome.Index, counterfeit)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&coins, "coins", 8, "total number of coins")
	cmd.Flags().IntVar(&counterfeit, "counterfeit", 0, "hidden counterfeit coin index")
	cmd.Flags().IntVar(&shots, "shots", 32, "number of independent trials")
	cmd.Flags().Int64Var(&seed, "seed", 0, "simulator seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&maxRetries, "max-retries", coincore.DefaultMaxPrepRetries, "preparation retry bound per trial")

	return cmd
}

// printCounts renders a counts histogram with stable ordering
func printCounts(counts map[string]int) {
	patterns := make([]string, 0, len(counts))
	for p := range counts {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	for _, p := range patterns {
		fmt.Printf("  %s  %d\n", p, counts[p])
	}
}
