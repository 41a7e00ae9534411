package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/desktop-next/desktopcli/commands"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Take a screenshot of the display",
	Long:  `Captures the display and saves it as a PNG or JPEG file. By default the image is scaled to the logical API space; use --native for the real screen resolution.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		response, err := commands.ScreenshotCommand(cfg, commands.ScreenshotRequest{
			Format:     screenshotFormat,
			Quality:    screenshotJpegQuality,
			OutputPath: screenshotOutputPath,
			Native:     screenshotNative,
		})
		if err != nil {
			return err
		}

		// write binary data to stdout when requested
		if screenshotOutputPath == "-" {
			imageBytes, err := base64.StdEncoding.DecodeString(response.Data)
			if err != nil {
				return fmt.Errorf("failed to decode image data: %v", err)
			}
			_, err = os.Stdout.Write(imageBytes)
			if err != nil {
				return fmt.Errorf("failed to write to stdout: %v", err)
			}
			return nil
		}

		printJson(response)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(screenshotCmd)

	screenshotCmd.Flags().StringVarP(&screenshotOutputPath, "output", "o", "", "Output file path (e.g. screen.png, or '-' for stdout)")
	screenshotCmd.Flags().StringVarP(&screenshotFormat, "format", "f", "png", "Output format (png or jpeg)")
	screenshotCmd.Flags().IntVarP(&screenshotJpegQuality, "quality", "q", 90, "JPEG quality (1-100, only applies if format is jpeg)")
	screenshotCmd.Flags().BoolVar(&screenshotNative, "native", false, "Capture at native screen resolution instead of API space")
}
