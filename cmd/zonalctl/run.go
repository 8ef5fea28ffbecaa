package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/salar-zonal-stats/internal/pkg/validator"
	"github.com/salar-zonal-stats/internal/usecase/dto"
)

type requestFlags struct {
	area   string
	index  string
	year   int
	season string
	json   bool
	gen    generatorFlags
}

func (f *requestFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.area, "area", "a", "", "Salar or area name")
	cmd.Flags().StringVarP(&f.index, "index", "i", "NDWI", "Spectral index (NDVI, NDWI, NDSI, Albedo, BSI, Classification)")
	cmd.Flags().IntVarP(&f.year, "year", "y", 2024, "Acquisition year")
	cmd.Flags().StringVarP(&f.season, "season", "s", "", "Season (Verano, Otoño, Invierno, Primavera)")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print JSON instead of a table")
	cmd.Flags().DurationVar(&f.gen.latency, "latency", 0, "Simulated processing delay")
	cmd.Flags().Uint64Var(&f.gen.seed, "seed", 0, "Random seed for reproducible output (0 = random)")
	_ = cmd.MarkFlagRequired("area")
}

func (f *requestFlags) request() (dto.ZonalStatsRequest, error) {
	req := dto.ZonalStatsRequest{
		AreaName: f.area,
		Index:    f.index,
		Year:     f.year,
		Season:   f.season,
	}
	if err := validator.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func generateCmd(factory appFactory) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate zonal statistics for an area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			a, err := factory(flags.gen)
			if err != nil {
				return err
			}

			result, err := a.zonalUC.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func interpretCmd(factory appFactory) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "interpret",
		Short: "Generate zonal statistics and print their interpretation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			a, err := factory(flags.gen)
			if err != nil {
				return err
			}

			resp, err := a.zonalUC.Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			printResult(cmd.OutOrStdout(), resp.Result)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", resp.Interpretation)
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func salarsCmd(factory appFactory) *cobra.Command {
	var (
		environment string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "salars",
		Short: "List the salar catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := factory(generatorFlags{})
			if err != nil {
				return err
			}

			resp, err := a.catalogUC.ListSalars(cmd.Context(), environment)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			printSalars(cmd.OutOrStdout(), resp.Salars)
			return nil
		},
	}

	cmd.Flags().StringVarP(&environment, "environment", "e", "", "Filter by environment (Costero, PreAndino, Andino)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
