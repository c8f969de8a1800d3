package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/diffsim/internal/analysis"
	"github.com/san-kum/diffsim/internal/config"
	"github.com/san-kum/diffsim/internal/diffusion"
	"github.com/san-kum/diffsim/internal/export"
	"github.com/san-kum/diffsim/internal/metrics"
	"github.com/san-kum/diffsim/internal/sim"
	"github.com/san-kum/diffsim/internal/storage"
	"github.com/san-kum/diffsim/internal/viz"
)

var (
	dataDir     string
	diffusivity float64
	domainSize  float64
	spacing     float64
	origin      float64
	steps       int
	left        float64
	right       float64
	recordEvery int
	plotEnabled bool
	configFile  string
	preset      string
	frameRate   int
	svgOut      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diffsim",
		Short: "1d diffusion simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".diffsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	smokeCmd := &cobra.Command{
		Use:   "smoke",
		Short: "tiny end-to-end run (5 units, 5 steps, no plot)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset("smoke")
			applyConfig(cfg)
			plotEnabled = false
			return runSimulation(cmd, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run profiles to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the final profile as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output path (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [diffusivity...]",
		Short: "run one simulation per diffusivity and compare",
		Args:  cobra.MinimumNArgs(1),
		RunE:  sweepDiffusivities,
	}
	addRunFlags(sweepCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step throughput over grid sizes",
		RunE:  benchStepper,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "relaxation analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	rootCmd.AddCommand(runCmd, smokeCmd, listCmd, plotCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, liveCmd, presetsCmd,
		sweepCmd, benchCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&diffusivity, "diffusivity", config.DefaultDiffusivity, "diffusivity D")
	cmd.Flags().Float64Var(&domainSize, "domain-size", config.DefaultDomainSize, "domain size Lx")
	cmd.Flags().Float64Var(&spacing, "spacing", config.DefaultSpacing, "grid spacing dx")
	cmd.Flags().Float64Var(&origin, "origin", 0, "grid origin")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	cmd.Flags().Float64Var(&left, "left", config.DefaultBoundaryLeft, "left boundary concentration")
	cmd.Flags().Float64Var(&right, "right", config.DefaultBoundaryRight, "right boundary concentration")
	cmd.Flags().IntVar(&recordEvery, "record-every", 0, "record every k-th step (0 = all)")
	cmd.Flags().BoolVar(&plotEnabled, "plot", false, "plot profiles instead of per-step reporting")
}

func applyConfig(cfg *config.Config) {
	diffusivity = cfg.Diffusivity
	domainSize = cfg.DomainSize
	spacing = cfg.Spacing
	origin = cfg.Origin
	steps = cfg.Steps
	left = cfg.BoundaryLeft
	right = cfg.BoundaryRight
	recordEvery = cfg.RecordEvery
	plotEnabled = cfg.Plot
}

func currentParams() sim.Params {
	return sim.Params{
		Diffusivity:   diffusivity,
		DomainSize:    domainSize,
		Spacing:       spacing,
		Origin:        origin,
		Steps:         steps,
		BoundaryLeft:  left,
		BoundaryRight: right,
		RecordEvery:   recordEvery,
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override config file values.
		if !cmd.Flags().Changed("diffusivity") {
			diffusivity = cfg.Diffusivity
		}
		if !cmd.Flags().Changed("domain-size") {
			domainSize = cfg.DomainSize
		}
		if !cmd.Flags().Changed("spacing") {
			spacing = cfg.Spacing
		}
		if !cmd.Flags().Changed("origin") {
			origin = cfg.Origin
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("left") {
			left = cfg.BoundaryLeft
		}
		if !cmd.Flags().Changed("right") {
			right = cfg.BoundaryRight
		}
		if !cmd.Flags().Changed("record-every") {
			recordEvery = cfg.RecordEvery
		}
		if !cmd.Flags().Changed("plot") {
			plotEnabled = cfg.Plot
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params := currentParams()
	s := sim.New(params)
	s.AddMetric(metrics.NewMass())
	s.AddMetric(metrics.NewBounds(params.BoundaryLeft, params.BoundaryRight))
	s.AddMetric(metrics.NewFlatness(params.BoundaryLeft, params.BoundaryRight))

	if !plotEnabled {
		s.AddObserver(viz.NewReporter(os.Stdout))
	}

	fmt.Printf("running diffusion: D=%g Lx=%g dx=%g steps=%d\n",
		params.Diffusivity, params.DomainSize, params.Spacing, params.Steps)
	start := time.Now()

	result, err := s.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if plotEnabled {
		viz.PlotProfile(os.Stdout, result.Grid, result.Profiles[0], "Initial concentration profile")
		fmt.Println()
		viz.PlotProfile(os.Stdout, result.Grid, result.Final(), "Final concentration profile")
		fmt.Println()
	}

	runID, err := st.Save(params, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d  dt: %.6f  points: %d\n", result.StepsTaken, result.Dt, result.Grid.Len())
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tD\tLX\tDX\tSTEPS\tLEFT\tRIGHT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%d\t%g\t%g\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Diffusivity,
			run.DomainSize,
			run.Spacing,
			run.Steps,
			run.BoundaryLeft,
			run.BoundaryRight,
		)
	}

	return w.Flush()
}

func loadRunGrid(meta *storage.RunMetadata) (*diffusion.Grid, error) {
	return diffusion.NewGrid(meta.Origin, meta.DomainSize, meta.Spacing)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	profiles, times, err := st.LoadProfiles(runID)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no data to plot")
	}

	grid, err := loadRunGrid(meta)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("D=%g Lx=%g dx=%g dt=%.6f\n", meta.Diffusivity, meta.DomainSize, meta.Spacing, meta.Dt)
	fmt.Printf("samples: %d\n\n", len(profiles))

	viz.PlotProfile(os.Stdout, grid, profiles[0],
		fmt.Sprintf("Initial concentration profile (t=%.4f)", times[0]))
	fmt.Println()
	last := len(profiles) - 1
	viz.PlotProfile(os.Stdout, grid, profiles[last],
		fmt.Sprintf("Final concentration profile (t=%.4f)", times[last]))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	profiles, times, err := st.LoadProfiles(args[0])
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range profiles[0] {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range profiles {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range profiles[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	profiles, times, err := st.LoadProfiles(runID)
	if err != nil {
		return err
	}

	grid, err := loadRunGrid(meta)
	if err != nil {
		return err
	}

	params := sim.Params{
		Diffusivity:   meta.Diffusivity,
		DomainSize:    meta.DomainSize,
		Spacing:       meta.Spacing,
		Origin:        meta.Origin,
		Steps:         meta.Steps,
		BoundaryLeft:  meta.BoundaryLeft,
		BoundaryRight: meta.BoundaryRight,
	}

	return storage.ExportJSONStdout(meta.ID, params, grid.Coords(), times, profiles, meta.Metrics, meta.Dt)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	profiles, _, err := st.LoadProfiles(runID)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no data to export")
	}

	grid, err := loadRunGrid(meta)
	if err != nil {
		return err
	}

	final := diffusion.Field(profiles[len(profiles)-1])
	svg := export.ProfileSVG(grid, final, "Final concentration profile")
	if svg == "" {
		return fmt.Errorf("profile too small to render")
	}

	if svgOut == "" {
		fmt.Print(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func runLive(cmd *cobra.Command, args []string) error {
	m, err := viz.NewLive(currentParams(), frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func sweepDiffusivities(cmd *cobra.Command, args []string) error {
	diffusivities := make([]float64, 0, len(args))
	for _, arg := range args {
		d, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid diffusivity %q: %w", arg, err)
		}
		diffusivities = append(diffusivities, d)
	}

	base := currentParams()
	if !cmd.Flags().Changed("record-every") {
		base.RecordEvery = 100
	}

	sw := sim.NewSweep(base, diffusivities)
	sw.AddMetric(func() sim.Metric { return metrics.NewMass() })
	sw.AddMetric(func() sim.Metric { return metrics.NewFlatness(base.BoundaryLeft, base.BoundaryRight) })

	results, err := sw.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "D\tDT\tSTEPS\tFINAL MASS\tFLATNESS")
	for i, r := range results {
		fmt.Fprintf(w, "%g\t%.6f\t%d\t%.2f\t%.4f\n",
			diffusivities[i], r.Dt, r.StepsTaken,
			r.Metrics["mass"], r.Metrics["flatness"])
	}

	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	profiles, times, err := st.LoadProfiles(runID)
	if err != nil {
		return err
	}
	if len(profiles) < 2 {
		return fmt.Errorf("not enough data to analyze")
	}

	fmt.Printf("relaxation analysis: %s\n", meta.ID)
	fmt.Printf("D=%g Lx=%g dx=%g\n\n", meta.Diffusivity, meta.DomainSize, meta.Spacing)

	dev := analysis.Deviations(profiles, meta.BoundaryLeft, meta.BoundaryRight)

	graph := asciigraph.Plot(dev,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("RMS deviation from steady state"),
	)
	fmt.Println(graph)
	fmt.Println()

	rate := analysis.DecayRate(times, dev)
	fmt.Printf("fitted relaxation rate: %.4f 1/s\n", rate)
	if rate > 0 {
		fmt.Printf("time constant: %.4f s\n", 1.0/rate)
	}
	// Slowest continuous mode, for comparison.
	ideal := meta.Diffusivity * math.Pi * math.Pi / (meta.DomainSize * meta.DomainSize)
	fmt.Printf("slowest-mode rate D*(pi/L)^2: %.4f 1/s\n", ideal)

	return nil
}

func benchStepper(cmd *cobra.Command, args []string) error {
	domains := []float64{30, 300, 3000}
	stepCounts := []int{100, 1000, 5000}

	fmt.Println("benchmarking explicit stepper")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, lx := range domains {
		for _, nt := range stepCounts {
			params := sim.Params{
				Diffusivity:   config.DefaultDiffusivity,
				DomainSize:    lx,
				Spacing:       config.DefaultSpacing,
				Steps:         nt,
				BoundaryLeft:  config.DefaultBoundaryLeft,
				BoundaryRight: config.DefaultBoundaryRight,
				RecordEvery:   nt, // keep only initial and final
			}

			s := sim.New(params)
			start := time.Now()
			result, err := s.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n",
				result.Grid.Len(), result.StepsTaken, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
