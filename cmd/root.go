package cmd

import (
	"bytes"
	"os"

	"github.com/samko5sam/webapps/config"
	"github.com/samko5sam/webapps/utils"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "webapps",
	Short: "Coursework web application suite",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !utils.FileExist(conf) {
			log.New().Fatalf("Config file %v not found", conf)
		}
		viper.SetConfigType("yml")
		content, err := os.ReadFile(conf)
		if err != nil {
			log.NewEntry(err).Fatal("Failed to read config file")
		}
		if err = viper.ReadConfig(bytes.NewBuffer(content)); err != nil {
			log.NewEntry(err).Fatal("Failed to parse config file")
		}

		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if viper.GetString("log_file") != "" {
			log.SetJSONFormat()
			logFile, err := os.OpenFile(viper.GetString("log_file"),
				os.O_CREATE|os.O_APPEND|os.O_RDWR, 0755)
			if err != nil {
				log.NewEntry(err).Fatal("Failed to open log file")
			}
			log.SetOutput(os.Stdout, logFile)
			log.ShowStack()
		}
		config.Check()
	},
}

var conf string
var verbose bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&conf, "conf", "c", "conf.yml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show verbose")
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
