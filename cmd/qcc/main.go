// Command qcc runs the quantum counterfeit coin search from the terminal.
//
// Usage:
//
//	qcc find --coins 8 --counterfeit 6
//	qcc find --coins 16 --counterfeit 11 --shots 128 --seed 42
//	qcc qasm --coins 8 --counterfeit 6
//	qcc serve --port 8080
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "qcc",
		Short: "Locate a counterfeit coin with a single quantum balance query",
		Long: "qcc simulates the quantum counterfeit coin search: among N coins with\n" +
			"one underweight counterfeit, a single query to a quantum beam-balance\n" +
			"oracle reveals the counterfeit's position.",
		SilenceUsage: true,
	}

	root.AddCommand(newFindCmd())
	root.AddCommand(newQASMCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
