package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "neoncity",
		Short: "Procedural neon city with window flicker, fireworks and an orbiting camera",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive 3D window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInteractive(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML settings file")
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		configPath string
		density    int
		seed       uint64
		noiseName  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a city headlessly and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("density") {
				s.Density = density
			}
			if cmd.Flags().Changed("seed") {
				s.Seed = seed
			}
			if cmd.Flags().Changed("noise") {
				s.Noise = noiseName
			}
			return runGenerate(s)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML settings file")
	cmd.Flags().IntVarP(&density, "density", "d", 0, "requested building count")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "random seed (0 = environment or clock)")
	cmd.Flags().StringVar(&noiseName, "noise", "", "height noise backend: builtin or perlin")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [settings-file]",
		Short: "Validate a settings file without opening a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}
