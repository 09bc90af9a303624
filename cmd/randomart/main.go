package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/drunken-bishop/randomart/internal/art"
	"github.com/drunken-bishop/randomart/internal/bishop"
	"github.com/drunken-bishop/randomart/internal/config"
	"github.com/drunken-bishop/randomart/internal/digest"
	"github.com/drunken-bishop/randomart/internal/export"
	"github.com/drunken-bishop/randomart/internal/viz"
)

var (
	width      int
	height     int
	startX     int
	startY     int
	label      string
	hashAlg    string
	configFile string
	preset     string
	colorize   bool
	fontSize   float64
)

// main registers commands and flags for the randomart CLI and executes the
// root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "randomart",
		Short: "drunken bishop fingerprint art",
	}

	drawCmd := &cobra.Command{
		Use:   "draw [text]",
		Short: "hash text (or stdin) and draw its randomart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  drawArt,
	}
	addRoomFlags(drawCmd)
	drawCmd.Flags().BoolVar(&colorize, "color", false, "colorize output")

	renderCmd := &cobra.Command{
		Use:   "render [fingerprint]",
		Short: "draw randomart from a raw hex fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE:  renderArt,
	}
	addRoomFlags(renderCmd)
	renderCmd.Flags().BoolVar(&colorize, "color", false, "colorize output")

	svgCmd := &cobra.Command{
		Use:   "svg [output]",
		Short: "hash stdin and write the art as an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addRoomFlags(svgCmd)
	svgCmd.Flags().Float64Var(&fontSize, "font-size", export.DefaultFontSize, "svg font size")

	histCmd := &cobra.Command{
		Use:   "hist [fingerprint]",
		Short: "plot the visit count distribution of a fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE:  histArt,
	}
	addRoomFlags(histCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive view, art redraws as you type",
		RunE:  runLive,
	}
	addRoomFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-8s %dx%d %s\n", name, p.Room.Width, p.Room.Height, p.Hash)
			}
			return nil
		},
	}

	rootCmd.AddCommand(drawCmd, renderCmd, svgCmd, histCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRoomFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "room width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "room height")
	cmd.Flags().IntVar(&startX, "start-x", -1, "start column (-1 = center)")
	cmd.Flags().IntVar(&startY, "start-y", -1, "start row (-1 = center)")
	cmd.Flags().StringVar(&label, "label", "", "bottom border label")
	cmd.Flags().StringVar(&hashAlg, "hash", config.DefaultHash, "hash algorithm")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig layers preset, config file and changed flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Room.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Room.Height = height
	}
	if cmd.Flags().Changed("start-x") {
		cfg.Start.X = startX
	}
	if cmd.Flags().Changed("start-y") {
		cfg.Start.Y = startY
	}
	if cmd.Flags().Changed("label") {
		cfg.Label = label
	}
	if cmd.Flags().Changed("hash") {
		cfg.Hash = hashAlg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func drawBoard(cfg *config.Config, fingerprint string) (*bishop.Board, error) {
	return bishop.DrawAt(fingerprint, cfg.Room.Width, cfg.Room.Height, cfg.StartPosition())
}

func drawArt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var data []byte
	if len(args) > 0 {
		data = []byte(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
	}

	fingerprint, err := digest.Sum(cfg.Hash, data)
	if err != nil {
		return err
	}

	board, err := drawBoard(cfg, fingerprint)
	if err != nil {
		return err
	}

	lbl := cfg.Label
	if lbl == "" {
		lbl = cfg.Hash
	}

	block := art.Render(board, lbl)
	if colorize {
		block = viz.Colorize(block)
	}
	fmt.Println(block)
	return nil
}

func renderArt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	board, err := drawBoard(cfg, args[0])
	if err != nil {
		return err
	}

	block := art.Render(board, cfg.Label)
	if colorize {
		block = viz.Colorize(block)
	}
	fmt.Println(block)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	// The classic SVG pipeline defaults to the poster geometry.
	if preset == "" && configFile == "" {
		preset = "poster"
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	fingerprint, err := digest.Sum(cfg.Hash, data)
	if err != nil {
		return err
	}

	board, err := drawBoard(cfg, fingerprint)
	if err != nil {
		return err
	}

	doc := export.ArtToSVG(art.Render(board, cfg.Label), fontSize)
	if err := os.WriteFile(args[0], []byte(doc), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%s, %dx%d)\n", args[0], cfg.Hash, cfg.Room.Width, cfg.Room.Height)
	return nil
}

func histArt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	board, err := drawBoard(cfg, args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Histogram(board))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLive(cfg))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
