package cmd

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/max-dev001/ZeBadge/badge"
	"github.com/max-dev001/ZeBadge/models"
)

// openDB opens the page library and keeps its schema current.
func openDB() (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", viper.GetString("db"))
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&models.Page{})
	return db, nil
}

// findClosestPage returns the stored page whose name is nearest to
// name, with its edit distance.
func findClosestPage(name string, pages []models.Page) (best models.Page, score int) {
	score = len(name)
	for _, p := range pages {
		d := levenshtein.DistanceForStrings([]rune(name), []rune(p.Name), levenshtein.DefaultOptions)
		if d < score {
			best = p
			score = d
		}
	}
	return
}

// lookupPage finds a stored page, suggesting the closest name on a
// miss.
func lookupPage(db *gorm.DB, name string) (*models.Page, error) {
	page, err := models.FindPage(db, name)
	if err == nil {
		return page, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	pages, _ := models.ListPages(db)
	if closest, score := findClosestPage(name, pages); score < len(name) {
		return nil, fmt.Errorf("no page named %q (did you mean %q?)", name, closest.Name)
	}
	return nil, fmt.Errorf("no page named %q", name)
}

// storeCmd represents the store command
var storeCmd = &cobra.Command{
	Use:   "store <name> <image>",
	Short: "Convert an image and save it in the page library",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, path := args[0], args[1]

		buf, err := convertImage(path)
		if err != nil {
			log.Fatal(err)
		}
		payload, err := badge.EncodePayload(buf)
		if err != nil {
			log.Fatal(err)
		}

		db, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		page := models.Page{
			Name:     name,
			Metadata: metadata,
			Payload:  payload,
		}
		err = models.Transaction(db, func(tx *gorm.DB) error {
			return page.Save(tx)
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Stored page", name)
	},
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the serial commands that put a stored page on the badge",
	Long: `Looks a page up in the library and prints the store command for its
payload. When the name is one of the badge's own page slots (a, b, c,
up, down), the matching show command follows, so pasting the output
into a serial terminal displays the page.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		page, err := lookupPage(db, args[0])
		if err != nil {
			log.Fatal(err)
		}

		slot := page.Name
		if !badge.IsPage(slot) {
			slot = badge.Pages[0]
		}
		meta := base64.StdEncoding.EncodeToString([]byte(page.Metadata))
		fmt.Print(badge.Store(slot, meta, page.Payload).Frame())
		fmt.Print(badge.Show(slot).Frame())
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored badge pages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		pages, err := models.ListPages(db)
		if err != nil {
			log.Fatal(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMETADATA\tPAYLOAD\t")
		for _, p := range pages {
			fmt.Fprintf(w, "%s\t%s\t%d bytes\t\n", p.Name, p.Metadata, len(p.Payload))
		}
		w.Flush()
	},
}

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a page from the library",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		page, err := lookupPage(db, args[0])
		if err != nil {
			log.Fatal(err)
		}
		if err := page.Delete(db); err != nil {
			log.Fatal(err)
		}
		log.Println("Removed page", page.Name)
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)

	addPipelineFlags(storeCmd)
	storeCmd.Flags().StringVar(&metadata, "metadata", "", "metadata to store with the page")
}
