package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/mealmatch"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var have []string
	var inventoryFile string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest meals from the ingredients you have",
		Long:  "Suggest meals from --have names and/or an --inventory JSON file holding a list of items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []mealmatch.InventoryItem
			if inventoryFile != "" {
				var err error
				items, err = readInventory(inventoryFile)
				if err != nil {
					return err
				}
			}

			names := append([]string{}, have...)
			names = append(names, mealmatch.InventoryNames(items)...)
			if len(names) == 0 {
				return fmt.Errorf("nothing to match: pass --have or --inventory")
			}

			renderSuggestions(cmd.OutOrStdout(), names, items, time.Now())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&have, "have", nil, "comma separated ingredient names")
	cmd.Flags().StringVar(&inventoryFile, "inventory", "", "path to an inventory JSON file")

	return cmd
}

func readInventory(path string) ([]mealmatch.InventoryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading inventory: %v", err)
	}

	inv := mealmatch.NewInventory(mealmatch.DefaultCatalog())
	var items []mealmatch.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("error parsing inventory: %v", err)
	}
	for _, item := range items {
		if _, err := inv.Add(item); err != nil {
			return nil, fmt.Errorf("error loading inventory item %q: %v", item.Name, err)
		}
	}

	return inv.Items(), nil
}

func renderSuggestions(w io.Writer, names []string, items []mealmatch.InventoryItem, now time.Time) {
	suggestions := mealmatch.Suggest(names, mealmatch.DefaultCatalog())

	color.New(color.Bold, color.FgHiGreen).Fprintln(w, "Cookable now")
	if len(suggestions.Cookable) == 0 {
		fmt.Fprintln(w, "🤷‍♂️ Nothing yet")
	} else {
		table := tablewriter.NewWriter(w)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Recipe", "Time", "Nutrients"})
		for _, recipe := range suggestions.Cookable {
			table.Append([]string{recipe.Name, recipe.Time, strings.Join(recipe.Nutrients, ", ")})
		}
		table.Render()
	}
	fmt.Fprintln(w)

	color.New(color.Bold, color.FgHiYellow).Fprintln(w, "Almost there")
	if len(suggestions.Almost) == 0 {
		fmt.Fprintln(w, "🤷‍♂️ Nothing close")
	} else {
		table := tablewriter.NewWriter(w)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Recipe", "Have", "Missing"})
		for _, partial := range suggestions.Almost {
			table.Append([]string{
				partial.Recipe.Name,
				strings.Join(partial.Available, ", "),
				color.New(color.FgHiRed).Sprint(strings.Join(partial.Missing, ", ")),
			})
		}
		table.Render()
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Health score: %d/100\n", mealmatch.HealthScore(names))
	if missing := mealmatch.MissingNutrients(names, mealmatch.EssentialNutrients); len(missing) > 0 {
		fmt.Fprintf(w, "Missing nutrients: %s\n", strings.Join(missing, ", "))
	}

	for _, item := range mealmatch.ExpiringItems(items, now) {
		status := item.ExpiryStatus(now)
		fmt.Fprintf(w, "⚠️  %s is %s\n", item.Name, color.New(color.FgHiRed).Sprint(string(status)))
	}
}
