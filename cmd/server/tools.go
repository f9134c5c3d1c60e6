package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ferti/entities"
	"ferti/pkg/advice/service"
	adviceSvcImp "ferti/pkg/advice/serviceImp"
	"ferti/pkg/agronomy"
	"ferti/pkg/classifier"
	irrigation "ferti/pkg/irrigation/service"
	irrigationSvcImp "ferti/pkg/irrigation/serviceImp"
)

var (
	reading    service.Reading
	fertilizer string

	waterIn irrigation.Input

	lat, lon float64
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Recommend a fertilizer and print the decision support",
	Long: `Classifies the reading with the configured classifier and prints the advice.
With --fertilizer the classifier is skipped and advice is built for that product.`,
	Example: "  ferti advise --temp 25 --humid 78 --mois 43 --soil 4 --crop 1 --nitro 22 --pota 26 --phos 38",
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadRules()
		if err != nil {
			return err
		}
		if fertilizer != "" {
			svc := adviceSvcImp.NewAdviceService(nil, rules, nil, logger)
			return printJSON(cmd.OutOrStdout(), svc.Advise(cmd.Context(), fertilizer, reading))
		}
		svc := adviceSvcImp.NewAdviceService(loadModel(cmd.Context()), rules, nil, logger)
		res, err := svc.Recommend(cmd.Context(), reading)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print an irrigation plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadRules()
		if err != nil {
			return err
		}
		res, err := irrigationSvcImp.NewIrrigationService(rules, nil, logger).Plan(cmd.Context(), waterIn)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res.Plan)
	},
}

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Print current conditions for a location",
	Long:  "Without --lat/--lon the location is resolved from the public IP, then DEFAULT_LAT/DEFAULT_LON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var la, lo *float64
		if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
			la, lo = &lat, &lon
		}
		return printJSON(cmd.OutOrStdout(), newWeather().Lookup(cmd.Context(), la, lo))
	},
}

var checkModelsCmd = &cobra.Command{
	Use:   "check-models",
	Short: "Load the classifier and run a reference prediction",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := classifier.Check(cmd.Context(), loadModel(cmd.Context()))
		if err := printJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if !report.OK {
			return fmt.Errorf("classifier check failed: %s", report.Error)
		}
		return nil
	},
}

func init() {
	f := adviseCmd.Flags()
	f.Float64Var(&reading.Temperature, "temp", 0, "Temperature (°C)")
	f.Float64Var(&reading.Humidity, "humid", 0, "Relative humidity (%)")
	f.Float64Var(&reading.Moisture, "mois", 0, "Soil moisture (%)")
	f.Float64Var(&reading.Soil, "soil", 0, "Soil code (0-4)")
	f.Float64Var(&reading.Crop, "crop", 0, "Crop code (0-16)")
	f.Float64Var(&reading.Nitrogen, "nitro", 0, "Nitrogen")
	f.Float64Var(&reading.Potassium, "pota", 0, "Potassium")
	f.Float64Var(&reading.Phosphorus, "phos", 0, "Phosphorus")
	f.StringVar(&reading.Stage, "stage", entities.DefaultStage, "Crop stage")
	f.StringVar(&fertilizer, "fertilizer", "", "Skip the classifier and advise for this fertilizer")
	for _, name := range []string{"temp", "humid", "mois", "soil", "crop", "nitro", "pota", "phos"} {
		_ = adviseCmd.MarkFlagRequired(name)
	}

	p := planCmd.Flags()
	p.Float64Var(&waterIn.Temperature, "temp", 0, "Temperature (°C)")
	p.Float64Var(&waterIn.Humidity, "humid", 0, "Relative humidity (%)")
	p.Float64Var(&waterIn.Soil, "soil", 0, "Soil code (0-4)")
	p.Float64Var(&waterIn.Crop, "crop", 0, "Crop code (0-16)")
	p.StringVar(&waterIn.Stage, "stage", entities.DefaultStage, "Crop stage")
	p.StringVar(&waterIn.FertilizerType, "fert-type", agronomy.DefaultFertilizerType, "Fertilizer in use")
	for _, name := range []string{"temp", "humid", "soil", "crop"} {
		_ = planCmd.MarkFlagRequired(name)
	}

	weatherCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	weatherCmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
}
