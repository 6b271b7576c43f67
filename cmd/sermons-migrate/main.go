// Command sermons-migrate runs the one-shot template migration: it backs up
// the stored template texts, scans them for tags the current engine does not
// recognise, and removes stale generated output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-sermons/internal/filestore"
	"github.com/goliatone/go-sermons/pkg/migrate"
	"github.com/goliatone/go-sermons/pkg/render"
)

func main() {
	templatesDir := flag.String("templates", "templates", "directory holding the template files")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	strict := flag.Bool("strict", false, "exit non-zero when unknown tags are found")
	flag.Parse()

	fs, err := filestore.New(*templatesDir)
	if err != nil {
		log.Fatalf("Failed to open template store: %v", err)
	}

	if !*yes {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Back up and migrate the templates in %s?", fs.Dir()),
			Default: true,
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		if !confirmed {
			fmt.Println("Migration cancelled.")
			return
		}
	}

	result, err := migrate.New(fs, render.New()).Migrate()
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	fmt.Println(result.Message())
	if *strict && !result.Success() {
		os.Exit(1)
	}
}
