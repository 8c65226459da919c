package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/example/climenu"
	"github.com/example/climenu/internal/profiles"
	"github.com/example/climenu/picker"
	"github.com/example/climenu/tui"
)

var (
	selectFunc = func(m *climenu.Menu) (any, bool, error) {
		return picker.New().Choose(m)
	}
	tuiFunc = func(m *climenu.Menu) (any, bool, error) {
		return tui.Choose(m)
	}
	exitFunc = os.Exit
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "climenu-demo",
	Short: "Numbered console menus over a profile store",
	Long:  "climenu-demo drives the climenu menus against a small profile store: pick values from numbered lists, switch stored profiles, and prune old backups.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log store operations to stderr")
	rootCmd.AddCommand(colorsCommand())
	rootCmd.AddCommand(listCommand())
	rootCmd.AddCommand(switchCommand())
	rootCmd.AddCommand(saveCommand())
	rootCmd.AddCommand(pruneCommand())
}

func colorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Pick a color from a numbered menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			banner(cmd.OutOrStdout(), "Color picker")
			console := climenu.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

			choice, ok, err := climenu.RunValueMenu(console, "Available colors:", colorEntries())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No color selected.")
				return nil
			}
			picked := choice.(colorChoice)
			fmt.Fprintf(cmd.OutOrStdout(), "You picked %s.\n", picked.paint.Sprint(picked.name))
			return nil
		},
	}
	return cmd
}

func listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles saved yet. Use 'climenu-demo save' to create one.")
				return nil
			}
			for _, entry := range entries {
				if entry.Active {
					fmt.Fprintf(cmd.OutOrStdout(), "* %s (active)\n", entry.Name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", entry.Name)
				}
			}
			return nil
		},
	}
	return cmd
}

func switchCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Activate a stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("no profiles saved yet. Use 'climenu-demo save' first")
			}

			menu := climenu.New("Stored profiles:")
			for _, entry := range entries {
				display := entry.Name
				if entry.Active {
					display += " (active)"
				}
				item, err := climenu.NewValueItem(display, entry.Name)
				if err != nil {
					return err
				}
				menu.AddItem(item)
			}

			choice, ok, err := chooseProfile(cmd, menu, mode)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile selected.")
				return nil
			}

			name := choice.(string)
			if err := store.Use(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "line", "Menu front end: line, select, or tui")

	return cmd
}

func saveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save a profile under the given name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			} else {
				console := climenu.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
				answer, err := console.Prompt("Enter profile name: ")
				if err != nil {
					return fmt.Errorf("input cancelled")
				}
				name = answer
			}

			payload, err := profilePayload(name)
			if err != nil {
				return err
			}
			if err := store.Save(name, payload); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile: %s\n", name)
			return nil
		},
	}
	return cmd
}

func pruneCommand() *cobra.Command {
	var olderThan string
	var force bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old profile backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			dur, err := profiles.ParseRetention(olderThan)
			if err != nil {
				return err
			}

			if !force {
				console := climenu.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
				answer, err := console.Prompt(fmt.Sprintf("Delete backups older than %s? [y/N]: ", olderThan))
				if err != nil || !strings.EqualFold(answer, "y") {
					return fmt.Errorf("prune cancelled")
				}
			}

			removed, err := store.PruneBackups(dur)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d backup file(s).\n", removed)
			return nil
		},
	}

	cmd.Flags().StringVar(&olderThan, "older-than", "30d", "Age threshold for pruning backups (e.g. 30d, 12h)")
	cmd.Flags().BoolVar(&force, "force", false, "Do not prompt for confirmation")

	return cmd
}

func chooseProfile(cmd *cobra.Command, menu *climenu.Menu, mode string) (any, bool, error) {
	switch mode {
	case "line":
		console := climenu.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
		return menu.Choose(console)
	case "select":
		return selectFunc(menu)
	case "tui":
		return tuiFunc(menu)
	default:
		return nil, false, fmt.Errorf("unknown mode: %s", mode)
	}
}

func openStore() (*profiles.Store, error) {
	base, err := profiles.DefaultBaseDir()
	if err != nil {
		return nil, err
	}
	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	store := profiles.NewStore(afero.NewOsFs(), profiles.NewPathBuilder(base), logger)
	if err := store.Init(); err != nil {
		return nil, err
	}
	return store, nil
}

func banner(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n", color.New(color.Bold, color.Underline).Sprint(title))
	fmt.Fprintln(w, "Enter the number of an option, or 0 to leave.")
}

func profilePayload(name string) ([]byte, error) {
	doc := struct {
		Name    string    `json:"name"`
		SavedAt time.Time `json:"saved_at"`
	}{Name: strings.TrimSpace(name), SavedAt: time.Now().UTC()}
	return json.MarshalIndent(doc, "", "  ")
}

type colorChoice struct {
	name  string
	paint *color.Color
}

func colorEntries() []climenu.ValueEntry {
	return []climenu.ValueEntry{
		{Display: "Red", Value: colorChoice{"Red", color.New(color.FgRed)}},
		{Display: "Green", Value: colorChoice{"Green", color.New(color.FgGreen)}},
		{Display: "Yellow", Value: colorChoice{"Yellow", color.New(color.FgYellow)}},
		{Display: "Blue", Value: colorChoice{"Blue", color.New(color.FgBlue)}},
		{Display: "Magenta", Value: colorChoice{"Magenta", color.New(color.FgMagenta)}},
		{Display: "Cyan", Value: colorChoice{"Cyan", color.New(color.FgCyan)}},
	}
}
