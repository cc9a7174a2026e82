package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPrintersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "printers",
		Short: "List printers in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			printers, err := client.Printers(context.Background())
			if err != nil {
				return fmt.Errorf("fetching printers: %w", err)
			}

			if len(printers) == 0 {
				fmt.Println("No printers in the catalog.")
				return nil
			}
			for _, p := range printers {
				features := []string{}
				if p.HasEnclosure {
					features = append(features, "enclosure")
				}
				if p.HasAutoLeveling {
					features = append(features, "auto-leveling")
				}
				line := fmt.Sprintf("%s — %s, $%d, %s", p.Name, p.Brand, p.Price, p.BuildVolume)
				if len(features) > 0 {
					line += " (" + strings.Join(features, ", ") + ")"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List printing materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			materials, err := client.Materials(context.Background())
			if err != nil {
				return fmt.Errorf("fetching materials: %w", err)
			}

			if len(materials) == 0 {
				fmt.Println("No materials in the catalog.")
				return nil
			}
			for _, m := range materials {
				fmt.Printf("%s (%s) — nozzle %s, bed %s, difficulty: %s\n",
					m.Name, m.Type, m.NozzleTemp, m.BedTemp, m.Difficulty)
			}
			return nil
		},
	}
}

func newGuidesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guides",
		Short: "List troubleshooting guides",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			guides, err := client.Guides(context.Background())
			if err != nil {
				return fmt.Errorf("fetching guides: %w", err)
			}

			if len(guides) == 0 {
				fmt.Println("No guides available.")
				return nil
			}
			for _, g := range guides {
				fmt.Printf("[%s] %s\n", g.Category, g.Title)
				fmt.Printf("  Problem: %s\n", g.Problem)
				for _, fix := range g.Fixes {
					fmt.Printf("  - %s\n", fix)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
