/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-hand/ui"
	"github.com/SvenDH/go-card-hand/ui/screens"
)

var (
	playCards   int
	playSprites string
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window with an interactive hand",
	Long: `Open a window with an interactive hand of cards.

Controls:
  Drag  - Reorder cards
  Click - Select or deselect a card
  A     - Add a card
  D     - Remove the last card
  E     - Toggle the effect shake on the hovered card
  S     - Toggle auto spacing
  R     - Toggle reordering
  F1    - Show TPS and FPS`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd.Context())
		logger := loggerFromContext(cmd.Context())
		if cmd.Flags().Changed("cards") {
			cfg.Window.Cards = playCards
		}
		if playSprites != "" {
			cfg.Window.Sprites = playSprites
		}

		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		prog := &ui.Program{
			M:        screens.NewHand(cfg, logger),
			Width:    cfg.Window.Width,
			Height:   cfg.Window.Height,
			DebugKey: ebiten.KeyF1,
		}
		logger.Info("starting", "cards", cfg.Window.Cards, "size", [2]int{cfg.Window.Width, cfg.Window.Height})
		return ebiten.RunGame(prog)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().IntVarP(&playCards, "cards", "n", 5, "Number of cards dealt at start")
	playCmd.Flags().StringVarP(&playSprites, "sprites", "s", "", "Directory holding card layer images")
}
