package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "lokit",
	Short: "Convert and inspect documents through LibreOfficeKit",
	Long: `lokit drives a LibreOffice installation through the LibreOfficeKit
API to convert documents between formats and inspect their structure.

The installation path can be given with --install-path, the
LOK_INSTALL_PATH environment variable, or an install_path entry in the
config file.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.String("install-path", "/usr/lib/libreoffice/program", "LibreOffice installation program directory")
	pf.Bool("verbose", false, "enable debug logging")
	pf.String("config", "", "config file (default: ./lokit.yaml)")

	_ = viper.BindPFlag("install_path", pf.Lookup("install-path"))
	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
}

func initConfig() error {
	if cfg, _ := rootCmd.PersistentFlags().GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.SetConfigName("lokit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/lokit")
	}

	viper.SetEnvPrefix("LOK")
	_ = viper.BindEnv("install_path", "LOK_INSTALL_PATH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func installPath() string {
	return viper.GetString("install_path")
}
