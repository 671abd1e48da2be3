package main

import (
	"fmt"

	"github.com/spf13/cobra"

	coincore "github.com/qcoinlab/go-qcc/internal/coin"
	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
)

func newQASMCmd() *cobra.Command {
	var (
		coins       int
		counterfeit int
	)

	cmd := &cobra.Command{
		Use:   "qasm",
		Short: "Print the search circuit as OpenQASM 2.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			finder, err := coincore.NewFinder(quantum.NewSimulator(), coins)
			if err != nil {
				return err
			}

			circuit, err := finder.Circuit(counterfeit)
			if err != nil {
				return err
			}

			fmt.Print(quantum.ExportQASM(circuit))
			return nil
		},
	}

	cmd.Flags().IntVar(&coins, "coins", 8, "total number of coins")
	cmd.Flags().IntVar(&counterfeit, "counterfeit", 0, "hidden counterfeit coin index")

	return cmd
}
