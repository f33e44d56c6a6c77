package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"singlelist/options"
	"singlelist/util"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   slist - 1.0.0 - Load, edit, filter and compare singly linked lists of values read from files or git revisions.

USAGE:
   slist run --src value [--repo value --rev value] [--op value]... [optional flags]
   slist compare --src value [--src value]... [--repo value --rev value...] [optional flags]

COMMANDS:
   run        apply list operations to one source, print the resulting values and optionally write a JSON report
   compare    load several sources concurrently and print how each compares with the next

RUN OPTIONS:
   --src value, -s value      path of the values file, one value per line
   --repo value               path to a git clone; --src is then read from the clone at --rev
   --rev value, -r value      commit-ish revision (default: HEAD)
   --op value                 push-front:V, pop-front, insert-after:P:V, erase-after:P, clear, filter
   --include value, -i value  patterns of values to keep on filter, comma delimited
   --exclude value, -e value  patterns of values to drop on filter, comma delimited
   --ignore-case              ignore case when checking values against patterns (default: false)
   --out value, -o value      path of a JSON stats report to write
   --verbose, --vv            verbose logging (default: false)

COMPARE OPTIONS:
   --src value, -s value      path of a values file, repeatable
   --repo value               path to a git clone
   --rev value, -r value      commit-ish revision, repeatable (default: HEAD)
   --workers value            number of sources loaded concurrently (default: 4)
   --verbose, --vv            verbose logging (default: false)

EXIT CODES:
  0    Success
  201  Source path is invalid
  202  Repository path is invalid (fs-wise or git-wise)
  203  Output path is invalid
  204  Source content could not be decoded
  205  Provided revision could not be found
  206  Source file does not exist at the provided revision
  207  Invalid list operation
  208  Invalid glob pattern
  1    Any other error
`

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
	app := &cli.App{
		Name:    "slist",
		Usage:   "Load, edit, filter and compare singly linked lists of values.",
		Version: VERSION,
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "apply list operations to one source",
				Flags: options.RunFlags,
				Action: func(ctx *cli.Context) error {
					opts, err := options.ParseOptions(ctx)
					if err != nil {
						return err
					}
					return runList(opts, ctx.App.Writer)
				},
			},
			{
				Name:  "compare",
				Usage: "compare consecutive sources lexicographically",
				Flags: options.CompareFlags,
				Action: func(ctx *cli.Context) error {
					opts, err := options.ParseCompareOptions(ctx)
					if err != nil {
						return err
					}
					return compareLists(ctx.Context, opts, ctx.App.Writer)
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		os.Exit(util.StatusCode(err))
	}
}
