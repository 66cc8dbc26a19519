package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/san-kum/stringviz/internal/config"
	"github.com/san-kum/stringviz/internal/extract"
	"github.com/san-kum/stringviz/internal/imgplot"
	"github.com/san-kum/stringviz/internal/series"
	"github.com/san-kum/stringviz/internal/viewer"
	"github.com/san-kum/stringviz/internal/viz"
	"github.com/spf13/cobra"
)

const snapshotWidth = 72

var (
	configFile string
	paired     bool
	fraction   float64
	preset     string
	step       float64
	plotWidth  int
	plotHeight int
	theme      string
	// output image for extract and snapshot
	imagePath string
	// control value for snapshot
	index float64
)

// main registers the commands and exits with status 1 when one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "stringviz",
		Short:        "vibrating string snapshot viewer",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.BoolVar(&paired, "paired", true, "lines alternate displacement and companion snapshots")
	pf.Float64Var(&fraction, "fraction", config.DefaultPointFraction, "extraction point as a fraction of the string")
	pf.StringVar(&preset, "preset", "", "extraction point preset")
	pf.Float64Var(&step, "step", config.DefaultStep, "time control step per key press")
	pf.IntVar(&plotWidth, "width", 0, "plot width in columns (0 follows the terminal)")
	pf.IntVar(&plotHeight, "height", config.DefaultHeight, "plot height in rows")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "scrub through the displacement profile over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}

	extractCmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "plot the displacement of one point over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVar(&imagePath, "image", "", "draw into an image file instead of the terminal")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "plot the profile at one time control value",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&index, "index", 0, "time control value (floored to a step)")
	snapshotCmd.Flags().StringVar(&imagePath, "image", "", "draw into image files instead of the terminal")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "describe a snapshot file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInfo,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list extraction point presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(viewCmd, extractCmd, snapshotCmd, infoCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, the config file, the preset, changed
// flags and the positional file, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" && !cfg.Apply(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("paired") {
		cfg.PairedMode = paired
	}
	if flags.Changed("fraction") {
		cfg.PointFraction = fraction
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("width") {
		cfg.Width = plotWidth
	}
	if flags.Changed("height") {
		cfg.Height = plotHeight
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadData(cmd *cobra.Command, args []string) (*config.Config, *series.Data, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	d, err := series.Load(cfg.InputPath, cfg.PairedMode)
	if err != nil {
		return nil, nil, err
	}
	return cfg, d, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadData(cmd, args)
	if err != nil {
		return err
	}

	fig := viz.NewFigure()
	sess, err := viewer.NewSession(d, fig)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Source, err)
	}
	defer sess.Close()

	opts := viz.Options{
		Title:  filepath.Base(d.Source),
		Step:   cfg.Step,
		Width:  cfg.Width,
		Height: cfg.Height,
		Theme:  cfg.Theme,
	}
	// the strip is optional; a fraction past the last point just hides it
	if wf, err := extract.Extract(d.Primary, cfg.PointFraction); err == nil {
		opts.Trace = wf.Values
		opts.TraceLabel = extract.Caption(wf)
	}
	return viz.Run(cmd.Context(), sess, fig, opts)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadData(cmd, args)
	if err != nil {
		return err
	}

	wf, err := extract.Extract(d.Primary, cfg.PointFraction)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Source, err)
	}

	fmt.Printf("file: %s\n", d.Source)
	fmt.Printf("point: %d of %d (x=%.3f)\n", wf.Index, wf.Points, wf.Position())
	fmt.Printf("steps: %d\n\n", len(wf.Values))

	if imagePath != "" {
		if err := imgplot.SaveWaveform(imagePath, wf, imgplot.DefaultWidth, imgplot.DefaultHeight); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", imagePath)
		return nil
	}
	return extract.Render(os.Stdout, wf, extract.RenderOptions{Width: cfg.Width, Height: cfg.Height})
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadData(cmd, args)
	if err != nil {
		return err
	}

	if imagePath != "" {
		fig := imgplot.NewFigure(filepath.Base(d.Source))
		sess, err := viewer.NewSession(d, fig)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Source, err)
		}
		defer sess.Close()

		i := sess.SetValue(index)
		written, err := fig.Save(imagePath)
		if err != nil {
			return err
		}
		fmt.Printf("step: %d of %d\n", i, sess.Steps())
		for _, p := range written {
			fmt.Printf("wrote %s\n", p)
		}
		return nil
	}

	fig := viz.NewFigure()
	sess, err := viewer.NewSession(d, fig)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Source, err)
	}
	defer sess.Close()

	i := sess.SetValue(index)
	width := cfg.Width
	if width == 0 {
		width = snapshotWidth
	}
	fmt.Printf("file: %s\n", d.Source)
	fmt.Printf("step: %d of %d\n\n", i, sess.Steps())
	fmt.Println(fig.Render(width, cfg.Height))
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadData(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("file: %s\n", d.Source)
	fmt.Printf("paired: %v\n\n", d.Paired())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tSTEPS\tPOINTS\tMIN\tMAX")
	rows := []struct {
		name string
		ts   series.TimeSeries
	}{{viewer.Primary.String(), d.Primary}}
	if d.Paired() {
		rows = append(rows, struct {
			name string
			ts   series.TimeSeries
		}{viewer.Companion.String(), d.Companion})
	}
	for _, r := range rows {
		lo, hi := r.ts.Bounds()
		fmt.Fprintf(w, "%s\t%d\t%d\t%.6g\t%.6g\n", r.name, r.ts.Steps(), r.ts.Points(), lo, hi)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	idx, err := extract.PointIndex(d.Primary.Points(), cfg.PointFraction)
	if err != nil {
		fmt.Printf("\nextraction point: %v\n", err)
		return nil
	}
	fmt.Printf("\nextraction point: %d (fraction %.3g)\n", idx, cfg.PointFraction)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFRACTION\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", name, p.PointFraction, p.Description)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
