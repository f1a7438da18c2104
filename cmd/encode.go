package cmd

import (
	"encoding/base64"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/max-dev001/ZeBadge/badge"
)

var (
	framePreview bool
	framePage    string
	metadata     string
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <image>",
	Short: "Convert an image into a firmware payload",
	Long: `Runs the conversion pipeline and prints the base64+zlib payload the
badge firmware decodes. With --preview or --store the payload is wrapped
into a complete serial command frame, ready to paste into picocom.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		buf, err := convertImage(args[0])
		if err != nil {
			log.Fatal(err)
		}
		payload, err := badge.EncodePayload(buf)
		if err != nil {
			log.Fatal(err)
		}

		switch {
		case framePreview:
			fmt.Print(badge.Preview(payload).Frame())
		case framePage != "":
			if !badge.IsPage(framePage) {
				log.Fatalf("unknown badge page %q (pages: %v)", framePage, badge.Pages)
			}
			meta := base64.StdEncoding.EncodeToString([]byte(metadata))
			fmt.Print(badge.Store(framePage, meta, payload).Frame())
		default:
			fmt.Println(payload)
		}
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	addPipelineFlags(encodeCmd)
	encodeCmd.Flags().BoolVar(&framePreview, "preview", false, "emit a framed preview command")
	encodeCmd.Flags().StringVar(&framePage, "store", "", "emit a framed store command for this page (a, b, c, up, down)")
	encodeCmd.Flags().StringVar(&metadata, "metadata", "", "metadata to attach to a stored page")
}
