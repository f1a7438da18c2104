package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/max-dev001/ZeBadge/badge"
	"github.com/max-dev001/ZeBadge/imp"
	"github.com/max-dev001/ZeBadge/pix"
)

var (
	convertOut  string
	modeName    string
	invertFlag  bool
	normalize   bool
	badgeWidth  int
	badgeHeight int
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <image>",
	Short: "Convert an image into a black & white badge preview",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		buf, err := convertImage(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if err := imp.Save(convertOut, buf.Image()); err != nil {
			log.Fatal(err)
		}
		log.Println("Wrote", convertOut)
	},
}

// convertImage runs the shared pipeline: decode, fit to the badge
// panel, dither, optionally invert.
func convertImage(path string) (*pix.Buffer, error) {
	mode, err := pix.ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	src, err := imp.ReadFile(path)
	if err != nil {
		return nil, err
	}

	buf, err := pix.Dither(imp.Prepare(src, badgeWidth, badgeHeight, normalize), mode)
	if err != nil {
		return nil, err
	}
	if invertFlag {
		buf, err = pix.Invert(buf)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// addPipelineFlags registers the flags shared by every command that
// runs the conversion pipeline.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&modeName, "mode", "m", "ordered", "dither mode (ordered or threshold)")
	cmd.Flags().BoolVarP(&invertFlag, "invert", "i", false, "invert the result")
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "stretch contrast before dithering")
	cmd.Flags().IntVar(&badgeWidth, "width", badge.Width, "target width in pixels")
	cmd.Flags().IntVar(&badgeHeight, "height", badge.Height, "target height in pixels")
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "badge.png", "output image file")
	addPipelineFlags(convertCmd)
}
