// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/unit-converter/internal/catalog"
	"github.com/pdiddy/unit-converter/pkg/types"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the supported units and their accepted spellings",
	Long: `Units prints the unit catalog grouped by category. Each row shows the
unit, its scale relative to the category's base unit (meters for length,
grams for weight), and every alias the converter accepts.`,
	Args: cobra.NoArgs,
	RunE: runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	units, err := selectUnits(c, category)
	if err != nil {
		return err
	}
	return formatUnitsOutput(cmd.OutOrStdout(), units, jsonOutput)
}

// selectUnits returns the whole catalog, or one category of it when
// category is non-empty. Category names match case-insensitively.
func selectUnits(c *catalog.Catalog, category string) ([]types.UnitDefinition, error) {
	if category == "" {
		return c.All(), nil
	}
	for _, cat := range c.Categories() {
		if strings.EqualFold(string(cat), category) {
			return c.ByCategory(cat), nil
		}
	}
	return nil, fmt.Errorf("unknown category %q: use length, weight, or temperature", category)
}

func formatUnitsOutput(w io.Writer, units []types.UnitDefinition, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(units)
	}

	fmt.Fprintf(w, "%-12s  %-12s  %-12s  %s\n", "Category", "Unit", "Scale", "Aliases")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, u := range units {
		scale := "-"
		if u.Category.Linear() {
			scale = fmt.Sprintf("%g", u.ScaleToBase)
		}
		fmt.Fprintf(w, "%-12s  %-12s  %-12s  %s\n",
			u.Category, u.ID, scale, strings.Join(u.Names, ", "))
	}

	fmt.Fprintf(w, "\n%d units\n", len(units))
	return nil
}

func init() {
	unitsCmd.Flags().String("category", "", "show only one category: length, weight, or temperature")
	unitsCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(unitsCmd)
}
