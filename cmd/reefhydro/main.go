package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/reefhydro/internal/bathy"
	"github.com/san-kum/reefhydro/internal/config"
	"github.com/san-kum/reefhydro/internal/coral"
	"github.com/san-kum/reefhydro/internal/reef"
	"github.com/san-kum/reefhydro/internal/tui"
	"github.com/san-kum/reefhydro/internal/viz"
	"github.com/san-kum/reefhydro/internal/waves"
)

var (
	configFile string
	preset     string

	dx          float64
	hs          float64
	tp          float64
	waterLevel  float64
	steps       int
	stormCat    int
	reducerName string

	csvPath  string
	jsonPath string

	// generate flags
	genNodes     int
	genSeed      int64
	genOffshore  float64
	genFlatDepth float64
	genFlatFrac  float64
	genRoughness float64
	genOut       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reefhydro",
		Short: "analytical reef hydrodynamics for coral forcing",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "step the reef model and report forcing",
		RunE:  runModel,
	}
	addModelFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of update steps")
	runCmd.Flags().IntVar(&stormCat, "storm", 0, "storm category (0 = calm)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write per-node wave field to CSV")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write forcing summary to JSON")

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "print model settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := buildModel(cfg)
			if err != nil {
				return err
			}
			fmt.Println(r.Settings())
			return nil
		},
	}
	addModelFlags(settingsCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a synthetic bathymetry profile",
		RunE:  generateProfile,
	}
	generateCmd.Flags().IntVar(&genNodes, "nodes", 50, "number of cross-shore nodes")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "noise seed (0 = random)")
	generateCmd.Flags().Float64Var(&genOffshore, "offshore", 30, "offshore depth [m]")
	generateCmd.Flags().Float64Var(&genFlatDepth, "flat-depth", 1, "reef flat depth [m]")
	generateCmd.Flags().Float64Var(&genFlatFrac, "flat-frac", 0.3, "reef flat fraction of profile")
	generateCmd.Flags().Float64Var(&genRoughness, "roughness", 0.1, "noise amplitude fraction")
	generateCmd.Flags().StringVar(&genOut, "out", "", "write a run config with the profile to this yaml file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&stormCat, "storm", 0, "storm category (0 = calm)")

	rootCmd.AddCommand(runCmd, settingsCmd, presetsCmd, generateCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "node spacing [m]")
	cmd.Flags().Float64Var(&hs, "hs", config.DefaultHs, "significant wave height [m]")
	cmd.Flags().Float64Var(&tp, "tp", config.DefaultTp, "peak wave period [s]")
	cmd.Flags().Float64Var(&waterLevel, "water-level", 0, "still water level offset [m]")
	cmd.Flags().StringVar(&reducerName, "reducer", "", "velocity reducer (zero, orbital)")
}

// loadConfig resolves preset, config file and flags, in that order of
// precedence (flags win).
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
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	if cmd.Flags().Changed("dx") {
		cfg.Dx = dx
	}
	if cmd.Flags().Changed("hs") {
		cfg.Hs = hs
	}
	if cmd.Flags().Changed("tp") {
		cfg.Tp = tp
	}
	if cmd.Flags().Changed("water-level") {
		cfg.WaterLevel = waterLevel
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("storm") {
		cfg.StormCategory = stormCat
	}
	if cmd.Flags().Changed("reducer") {
		cfg.Reducer = reducerName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildModel(cfg *config.Config) (*reef.Reef1D, error) {
	r := reef.New(cfg.ReefConfig())
	red, err := cfg.NewReducer()
	if err != nil {
		return nil, err
	}
	if red != nil {
		r.SetReducer(red)
	}
	return r, nil
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := buildModel(cfg)
	if err != nil {
		return err
	}
	c := coral.New()

	if err := r.Initiate(); err != nil {
		return err
	}

	var forcing [][]float64
	for i := 0; i < cfg.Steps; i++ {
		f, err := r.Update(c, cfg.StormCategory)
		if err != nil {
			fmt.Fprintf(os.Stderr, "step %d: %v\n", i, err)
		}
		forcing = append(forcing, f.Values())
	}

	field, err := r.WaveField()
	if field == nil {
		return err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wave field: %v\n", err)
	}

	fmt.Println(r.Settings())
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if cfg.StormCategory > 0 {
		fmt.Fprintln(w, "STEP\tU_CURR_MAX\tU_WAVE_MAX")
	} else {
		fmt.Fprintln(w, "STEP\tU_CURR\tU_WAVE\tT_WAVE")
	}
	for i, vals := range forcing {
		row := strconv.Itoa(i)
		for _, v := range vals {
			row += fmt.Sprintf("\t%.4f", v)
		}
		fmt.Fprintln(w, row)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	depths, err := r.WaterDepth()
	if err != nil {
		return err
	}
	fmt.Println(viz.Profile("depth [m]", depths, 80, 10))
	fmt.Println(viz.Profile("wave length [m]", field.Length, 80, 10))
	fmt.Println(viz.Profile("group celerity [m/s]", field.GroupCelerity, 80, 10))

	if csvPath != "" {
		if err := writeFieldCSV(csvPath, r.XCoordinates(), depths, field); err != nil {
			return err
		}
		fmt.Printf("wave field written to %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := writeForcingJSON(jsonPath, cfg, forcing); err != nil {
			return err
		}
		fmt.Printf("forcing written to %s\n", jsonPath)
	}

	return r.Finalise()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := buildModel(cfg)
	if err != nil {
		return err
	}
	if err := r.Initiate(); err != nil {
		return err
	}
	return tui.Run(r, coral.New(), cfg.Hs, cfg.Tp, cfg.StormCategory)
}

func generateProfile(cmd *cobra.Command, args []string) error {
	profile := bathy.Generate(bathy.GenConfig{
		Nodes:     genNodes,
		Seed:      genSeed,
		Offshore:  genOffshore,
		FlatDepth: genFlatDepth,
		FlatFrac:  genFlatFrac,
		Roughness: genRoughness,
	})

	fmt.Println(viz.Profile("generated bathymetry [m]", profile, 80, 12))

	if genOut != "" {
		cfg := config.DefaultConfig()
		cfg.Bathymetry = profile
		if err := config.Save(genOut, cfg); err != nil {
			return err
		}
		fmt.Printf("config written to %s\n", genOut)
	}
	return nil
}

func writeFieldCSV(path string, x, depths []float64, field *waves.Field) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"x", "depth", "wave_length", "wave_number", "celerity", "group_celerity"}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range depths {
		row := []string{
			strconv.FormatFloat(x[i], 'f', 4, 64),
			strconv.FormatFloat(depths[i], 'f', 4, 64),
			strconv.FormatFloat(field.Length[i], 'f', 4, 64),
			strconv.FormatFloat(field.Number[i], 'f', 6, 64),
			strconv.FormatFloat(field.Celerity[i], 'f', 4, 64),
			strconv.FormatFloat(field.GroupCelerity[i], 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

type forcingExport struct {
	Model         string      `json:"model"`
	Hs            float64     `json:"hs"`
	Tp            float64     `json:"tp"`
	StormCategory int         `json:"storm_category"`
	Steps         int         `json:"steps"`
	Forcing       [][]float64 `json:"forcing"`
}

func writeForcingJSON(path string, cfg *config.Config, forcing [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(forcingExport{
		Model:         cfg.Model,
		Hs:            cfg.Hs,
		Tp:            cfg.Tp,
		StormCategory: cfg.StormCategory,
		Steps:         cfg.Steps,
		Forcing:       forcing,
	})
}
