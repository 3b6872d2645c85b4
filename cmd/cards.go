package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/config"
	"github.com/arcanaland/cardtable/internal/render"
	"github.com/arcanaland/cardtable/internal/snapshot"
)

// cardsCmd represents the cards command group
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Inspect the initial card snapshot",
	Long:  `Commands for listing, showing and exporting the cards a table starts with.`,
}

// cardsListCmd represents the cards ls command
var cardsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards of the initial snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		noColor, _ := cmd.Flags().GetBool("no-color")

		cards := snapshot.InitialCards()
		fmt.Fprint(cmd.OutOrStdout(),
			render.Table(cards, snapshot.IDs(cards), terminalWidth(), cfg.Color && !noColor))
		return nil
	},
}

var cardsShowCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card of the initial snapshot",
	Long: `Show draws a card of the initial snapshot and prints its state.
Cards start face-down; use --face to draw the face instead.

Examples:
  cardtable cards show A-clubs
  cardtable cards show --face 10-hearts`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		cards := snapshot.InitialCards()
		c, ok := cards[args[0]]
		if !ok {
			return fmt.Errorf("card not found: %s (available: %s)",
				args[0], strings.Join(snapshot.IDs(cards), ", "))
		}

		// Draw a copy so the snapshot record keeps its initial state
		shown := *c
		if face, _ := cmd.Flags().GetBool("face"); face {
			shown.Mode = card.ModeFace
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, render.Card(&shown, render.Options{TrueColor: cfg.Color && cfg.TrueColor}))
		fmt.Fprintln(out)
		for _, line := range cardDetails(c) {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

var cardsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the initial snapshot to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.Format
		}

		cards := snapshot.InitialCards()
		out := cmd.OutOrStdout()

		switch format {
		case config.FormatTOML:
			if err := toml.NewEncoder(out).Encode(cards); err != nil {
				return fmt.Errorf("error encoding snapshot: %v", err)
			}
		case config.FormatTable:
			fmt.Fprint(out, render.Table(cards, snapshot.IDs(cards), terminalWidth(), false))
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardsCmd)
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsShowCmd)
	cardsCmd.AddCommand(cardsExportCmd)

	cardsListCmd.Flags().Bool("no-color", false, "Disable coloured output")
	cardsShowCmd.Flags().Bool("face", false, "Draw the card face-up")
	cardsExportCmd.Flags().StringP("format", "f", "", "Output format (table or toml), defaults to the configured format")
}

// cardDetails returns the labelled state lines printed under a card
func cardDetails(c *card.CardListItem) []string {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	return []string{
		colorize.CyanString("Card:      ") + colorize.HiWhiteString("%s", c.String()),
		colorize.CyanString("ID:        ") + colorize.HiWhiteString("%s", c.ID),
		colorize.CyanString("Suit:      ") + colorize.HiWhiteString("%s · %s", c.Suit, c.Suit.Symbol()),
		colorize.CyanString("Mode:      ") + colorize.HiWhiteString("%s", c.Mode),
		colorize.CyanString("Available: ") + colorize.HiWhiteString("%s", yesNo(c.IsAvailable)),
		colorize.CyanString("Moved:     ") + colorize.HiWhiteString("%s", yesNo(c.IsMoved)),
		colorize.CyanString("Bound:     ") + colorize.HiWhiteString("%s", yesNo(c.Bound())),
	}
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
