package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/max-dev001/ZeBadge/badge"
	"github.com/max-dev001/ZeBadge/imp"
)

var decodeOut string

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <payload>",
	Short: "Turn a payload or command frame back into an image",
	Long: `Decodes a firmware payload (or a complete command frame containing one)
and writes the bitmap as an image, for checking what a badge will show.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// A raw payload is itself base64, so only unwrap when the
		// decoded text names a real firmware command.
		payload := args[0]
		if c, err := badge.ParseFrame(payload); err == nil && badge.IsCommand(c.Name) && c.Payload != "" {
			payload = c.Payload
		}

		buf, err := badge.DecodePayload(payload, badgeWidth, badgeHeight)
		if err != nil {
			log.Fatal(err)
		}
		if err := imp.Save(decodeOut, buf.Image()); err != nil {
			log.Fatal(err)
		}
		log.Println("Wrote", decodeOut)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&decodeOut, "out", "o", "decoded.png", "output image file")
	decodeCmd.Flags().IntVar(&badgeWidth, "width", badge.Width, "bitmap width in pixels")
	decodeCmd.Flags().IntVar(&badgeHeight, "height", badge.Height, "bitmap height in pixels")
}
