package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Meertayyab/portfolio/internal/config"
)

var (
	cfgFile   string
	appConfig config.Config
	v         = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page personal portfolio: a short bio, a
project list, a skills overview and a contact form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(v)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(v *viper.Viper) error {
	cfg, found, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if found {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}
	appConfig = cfg
	return nil
}
