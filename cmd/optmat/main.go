package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/optmat/optmat/internal/catalog"
	"github.com/optmat/optmat/internal/config"
	"github.com/optmat/optmat/internal/engine"
	"github.com/optmat/optmat/internal/export"
	"github.com/optmat/optmat/internal/library"
	"github.com/optmat/optmat/internal/optics"
	"github.com/optmat/optmat/internal/source"
	"github.com/optmat/optmat/internal/tui"
	"github.com/optmat/optmat/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	minUm      float64
	maxUm      float64
	samples    int
	quantity   string
	format    string
	output    string
	unitName  string
	mode      int
	delimiter string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "optmat",
		Short: "optical material dispersion toolkit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", library.DefaultDir(), "imported material directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list known materials",
		RunE:  listMaterials,
	}

	queryCmd := &cobra.Command{
		Use:   "query [material] [wavelength]",
		Short: "evaluate dispersion quantities at one wavelength",
		Long: "Evaluates n, ng, vg, GVD and the propagation constants at one\n" +
			"wavelength. The wavelength is a bare number; its unit is inferred\n" +
			"from magnitude (meters, micrometers or nanometers).",
		Args: cobra.ExactArgs(2),
		RunE: queryMaterial,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [material]",
		Short: "plot a dispersion quantity over a wavelength band",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotMaterial,
	}
	addBandFlags(plotCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [material]",
		Short: "sweep a band and export the curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepMaterial,
	}
	addBandFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&format, "format", "csv", "output format: csv, json or svg")
	sweepCmd.Flags().StringVar(&output, "output", "", "output file (default stdout; required for svg)")

	importCmd := &cobra.Command{
		Use:   "import [name] [file.csv]",
		Short: "import tabulated index data into the material library",
		Args:  cobra.ExactArgs(2),
		RunE:  importMaterial,
	}
	importCmd.Flags().StringVar(&unitName, "unit", "nm", "wavelength unit of column 0: m, um or nm")
	importCmd.Flags().IntVar(&mode, "mode", 0, "index column to read (0 = first index column)")
	importCmd.Flags().StringVar(&delimiter, "delimiter", ",", "column delimiter")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list spectral band presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				band := config.Presets[name]
				fmt.Printf("  %-10s %.3g–%.4g µm\n", name, band.Min, band.Max)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive dispersion explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(materialsCmd, queryCmd, plotCmd, sweepCmd, importCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBandFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "spectral band preset (see `optmat presets`)")
	cmd.Flags().Float64Var(&minUm, "min", config.DefaultMinUm, "band start [um]")
	cmd.Flags().Float64Var(&maxUm, "max", config.DefaultMaxUm, "band end [um]")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample points")
	cmd.Flags().StringVar(&quantity, "quantity", config.DefaultQuantity, "quantity: n, ng, vg or gvd")
}

// loadConfig merges the config file, the preset and the explicit flags,
// with later sources winning.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		band, ok := config.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Band = band
	}

	if cmd.Flags().Changed("min") {
		cfg.Band.Min = minUm
	}
	if cmd.Flags().Changed("max") {
		cfg.Band.Max = maxUm
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("quantity") {
		cfg.Quantity = quantity
	}
	if len(args) > 0 {
		cfg.Material = args[0]
	}

	return cfg, nil
}

// resolveModel looks a material up in the built-in catalog first, then in
// the imported library.
func resolveModel(name string) (optics.DispersionModel, error) {
	cat := catalog.New()
	m, err := cat.Get(name)
	if err == nil {
		return m, nil
	}

	tab, libErr := library.New(dataDir).Load(name)
	if libErr != nil {
		return nil, err
	}
	return tab, nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	cat := catalog.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tDESCRIPTION")

	for _, name := range cat.Names() {
		desc, _ := cat.Describe(name)
		fmt.Fprintf(w, "%s\tbuilt-in\t%s\n", name, desc)
	}

	imported, err := library.New(dataDir).List()
	if err != nil {
		return err
	}
	for _, name := range imported {
		fmt.Fprintf(w, "%s\timported\ttabulated index data\n", name)
	}

	return w.Flush()
}

func queryMaterial(cmd *cobra.Command, args []string) error {
	wl, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid wavelength %q", args[1])
	}

	model, err := resolveModel(args[0])
	if err != nil {
		return err
	}
	mat := engine.NewMaterial(args[0], model)

	resolved, err := optics.Resolve(wl)
	if err != nil {
		return err
	}

	eps, err := mat.Eps(wl)
	if err != nil {
		return err
	}
	n, err := mat.N(wl)
	if err != nil {
		return err
	}
	ng, err := mat.Ng(wl)
	if err != nil {
		return err
	}
	vg, err := mat.Vg(wl)
	if err != nil {
		return err
	}
	gvd, err := mat.Gvd(wl)
	if err != nil {
		return err
	}
	b0, err := mat.Beta0(wl)
	if err != nil {
		return err
	}
	b1, err := mat.Beta1(wl)
	if err != nil {
		return err
	}

	fmt.Printf("%s at λ = %.6g µm\n\n", args[0], resolved.Micrometers())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "eps\t%.9g\t\n", eps)
	fmt.Fprintf(w, "n\t%.9g\t\n", n)
	fmt.Fprintf(w, "ng\t%.9g\t\n", ng)
	fmt.Fprintf(w, "vg\t%.6e\tm/s\n", vg)
	fmt.Fprintf(w, "gvd (β₂)\t%.6e\ts²/m\n", gvd)
	fmt.Fprintf(w, "β₀\t%.6e\t1/m\n", b0)
	fmt.Fprintf(w, "β₁\t%.6e\ts/m\n", b1)
	return w.Flush()
}

func sweepBand(cmd *cobra.Command, args []string) (*config.Config, *engine.Curve, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	model, err := resolveModel(cfg.Material)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New()
	curve, err := eng.ParallelSweep(model,
		optics.Wavelength(cfg.Band.Min*1e-6),
		optics.Wavelength(cfg.Band.Max*1e-6),
		cfg.Samples)
	if err != nil {
		return nil, nil, err
	}
	return cfg, curve, nil
}

func plotMaterial(cmd *cobra.Command, args []string) error {
	cfg, curve, err := sweepBand(cmd, args)
	if err != nil {
		return err
	}

	chart, err := viz.Plot(cfg.Material, curve, cfg.Quantity, 80, 15)
	if err != nil {
		return err
	}
	fmt.Println(chart)
	return nil
}

func sweepMaterial(cmd *cobra.Command, args []string) error {
	cfg, curve, err := sweepBand(cmd, args)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "csv":
		if output == "" {
			return export.WriteCSV(os.Stdout, curve)
		}
		return export.ExportCSV(output, curve)
	case "json":
		if output == "" {
			return export.WriteJSON(os.Stdout, cfg.Material, curve)
		}
		return export.ExportJSON(output, cfg.Material, curve)
	case "svg":
		if output == "" {
			return fmt.Errorf("svg export needs --output")
		}
		values, err := viz.Column(curve, cfg.Quantity)
		if err != nil {
			return err
		}
		return export.ExportSVG(output, curve, values, 800, 400, "#00ccff")
	default:
		return fmt.Errorf("unknown format %q (want csv, json or svg)", format)
	}
}

func importMaterial(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]

	var unit optics.Unit
	switch unitName {
	case "m":
		unit = optics.Meters
	case "um":
		unit = optics.Micrometers
	case "nm":
		unit = optics.Nanometers
	default:
		return fmt.Errorf("unknown unit %q (want m, um or nm)", unitName)
	}
	if len(delimiter) != 1 {
		return fmt.Errorf("delimiter must be one character")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := source.CSVOptions{Mode: mode, Delimiter: rune(delimiter[0]), Unit: unit}
	rows, unit, err := source.ReadCSV(f, opts)
	if err != nil {
		return err
	}

	store := library.New(dataDir)
	if err := store.Save(name, unit, rows); err != nil {
		return err
	}

	fmt.Printf("imported %s: %d samples\n", name, len(rows))
	return nil
}
