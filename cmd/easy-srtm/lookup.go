package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup LATITUDE LONGITUDE",
	Short: "Print the elevation in meters at a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude %q: %w", args[0], err)
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude %q: %w", args[1], err)
		}

		cfg := loadConfig(cmd)
		service, err := newService(cfg)
		if err != nil {
			return err
		}
		defer service.Close()

		elevation, err := service.Elevation(lat, lng)
		if err != nil {
			return err
		}
		fmt.Println(elevation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
