package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagBackend string
	flagVerbose bool
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printscout",
		Short: "3D printer finder",
		Long:  "printscout browses 3D printers, materials, and troubleshooting guides, and recommends printers matched to your answers in a short quiz.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Backend base URL (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Show detailed log output")

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newQuizCmd())
	cmd.AddCommand(newPrintersCmd())
	cmd.AddCommand(newMaterialsCmd())
	cmd.AddCommand(newGuidesCmd())

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print printscout version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("printscout", version)
		},
	}
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}
