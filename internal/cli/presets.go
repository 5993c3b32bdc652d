package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"capline/internal/style"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage named style presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved style presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := style.DefaultPresetStore()
		if err != nil {
			return err
		}
		presets, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to read presets: %w", err)
		}
		if len(presets) == 0 {
			fmt.Println("No presets saved.")
			return nil
		}
		for _, p := range presets {
			fmt.Printf("%-20s %s %s  font %.1f%%  pos %.0f,%.0f\n",
				p.Name, p.Styles.Effect, p.Styles.Align,
				p.Styles.FontSize, p.Styles.Position.X, p.Styles.Position.Y)
		}
		return nil
	},
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save a style preset from a JSON file (or the defaults)",
	Long: `Save a named preset. With --from, the style options are read from a
JSON file; without it the built-in defaults are saved as a starting
point for hand editing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		styles := style.Default()
		if fromPath, _ := cmd.Flags().GetString("from"); fromPath != "" {
			b, err := os.ReadFile(fromPath)
			if err != nil {
				return fmt.Errorf("failed to read style file: %w", err)
			}
			if err := json.Unmarshal(b, &styles); err != nil {
				return fmt.Errorf("invalid style JSON: %w", err)
			}
		}

		store, err := style.DefaultPresetStore()
		if err != nil {
			return err
		}
		if err := store.Save(name, styles); err != nil {
			return fmt.Errorf("failed to save preset: %w", err)
		}
		fmt.Printf("Preset saved: %s\n", name)
		return nil
	},
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a style preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := style.DefaultPresetStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to delete preset: %w", err)
		}
		fmt.Printf("Preset deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsSaveCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)

	presetsSaveCmd.Flags().
		String("from", "", "JSON file with style options")
}
