// Command solarstats serves and prints sun and solar energy statistics for a
// residential solar installation.
//
// Usage:
//
//	solarstats [command] [flags]
//
// The commands are:
//
//	serve     run the HTTP API (and the gRPC health service when configured)
//	sun       print sunrise, solar noon, sunset and day length
//	days      print daily energy records with totals
//	monthly   print monthly energy rollups
//
// Global flags:
//
//	--config string     path to config file (default "config.yaml")
//	--data-dir string   directory of YYYY_MM.csv files, overrides data.dir
package main

import (
	"os"

	_ "time/tzdata"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
