package options

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"singlelist/script"
	"singlelist/source"
	"singlelist/util"
)

const DEFAULT_WORKERS = 4

var sourceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "repo",
		Usage:    "path to a git clone; when set, --src paths are read from the clone at --rev instead of the file system",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

var RunFlags = append([]cli.Flag{
	&cli.StringFlag{
		Name:     "src",
		Aliases:  []string{"s"},
		Usage:    "path of the values file, one value per line",
		Required: true,
	},
	&cli.StringFlag{
		Name:     "rev",
		Aliases:  []string{"r"},
		Value:    "HEAD",
		Usage:    "commit-ish revision to read --src at, used with --repo",
		Required: false,
	},
	&cli.StringSliceFlag{
		Name:     "op",
		Usage:    "operation to apply, repeatable: push-front:V, pop-front, insert-after:P:V, erase-after:P, clear, filter (P is -1 for before-begin or a 0-based index)",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "include",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "patterns of values to keep on filter, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of values to drop on filter, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "ignore-case",
		Value:    false,
		Usage:    "ignore case when checking values against patterns",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Value:    "",
		Usage:    "path of a JSON stats report to write. its directory will be created if does not exist",
		Required: false,
	},
}, sourceFlags...)

var CompareFlags = append([]cli.Flag{
	&cli.StringSliceFlag{
		Name:     "src",
		Aliases:  []string{"s"},
		Usage:    "path of a values file, repeatable",
		Required: true,
	},
	&cli.StringSliceFlag{
		Name:     "rev",
		Aliases:  []string{"r"},
		Usage:    "commit-ish revision, repeatable; every --src is read at every --rev (default: HEAD)",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    DEFAULT_WORKERS,
		Usage:    "number of sources loaded concurrently",
		Required: false,
	},
}, sourceFlags...)

type Options struct {
	Source             source.Source
	Operations         []script.Operation
	IncludePatterns    []string
	ExcludePatterns    []string
	IgnoreCasePatterns bool
	OutputPath         string
	VerboseLogging     bool
}

type CompareOptions struct {
	Sources        []source.Source
	Workers        int
	VerboseLogging bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	return strings.Split(flag, ",")
}

func validateDirectory(dirPath string, createIfNotExist bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		if !createIfNotExist {
			return fmt.Errorf("directory does not exist at %v", dirPath)
		}
		err = os.MkdirAll(dirPath, 0777)
		if err != nil {
			return fmt.Errorf("failed to create directory at %v: %w", dirPath, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func validateFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("file is actually a directory at %v", filePath)
	}
	return nil
}

func validateRepository(repositoryPath string) error {
	err := validateDirectory(repositoryPath, false)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_REPOSITORY,
			InternalError: fmt.Errorf("clone at '%v' is missing or invalid: %v", repositoryPath, err),
		}
	}
	err = validateDirectory(path.Join(repositoryPath, ".git"), false)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_REPOSITORY,
			InternalError: fmt.Errorf(".git at '%v' is missing or invalid: %v", repositoryPath, err),
		}
	}
	return nil
}

func validateSource(src source.Source) error {
	if len(src.Repository) > 0 {
		return validateRepository(src.Repository)
	}
	err := validateFile(src.Path)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_SOURCE_PATH,
			InternalError: fmt.Errorf("source at '%v' is missing or invalid: %v", src.Path, err),
		}
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		Source: source.Source{
			Path:       c.String("src"),
			Repository: c.String("repo"),
		},
		IncludePatterns:    splitListFlag(c.String("include")),
		ExcludePatterns:    splitListFlag(c.String("exclude")),
		IgnoreCasePatterns: c.Bool("ignore-case"),
		OutputPath:         c.String("out"),
		VerboseLogging:     c.Bool("verbose"),
	}
	if len(opts.Source.Repository) > 0 {
		opts.Source.Revision = c.String("rev")
	}

	err := validateSource(opts.Source)
	if err != nil {
		return nil, err
	}

	opts.Operations, err = script.ParseOperations(c.StringSlice("op"))
	if err != nil {
		return nil, err
	}

	if len(opts.OutputPath) > 0 {
		err = validateDirectory(filepath.Dir(opts.OutputPath), true)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
				InternalError: err,
			}
		}
	}

	return opts, nil
}

func ParseCompareOptions(c *cli.Context) (*CompareOptions, error) {
	opts := &CompareOptions{
		Workers:        c.Int("workers"),
		VerboseLogging: c.Bool("verbose"),
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %v", opts.Workers)
	}

	paths := c.StringSlice("src")
	repositoryPath := c.String("repo")
	if len(repositoryPath) == 0 {
		for _, srcPath := range paths {
			opts.Sources = append(opts.Sources, source.Source{Path: srcPath})
		}
	} else {
		revisions := c.StringSlice("rev")
		if len(revisions) == 0 {
			revisions = []string{"HEAD"}
		}
		for _, revision := range revisions {
			for _, srcPath := range paths {
				opts.Sources = append(opts.Sources, source.Source{Path: srcPath, Repository: repositoryPath, Revision: revision})
			}
		}
	}

	if len(opts.Sources) < 2 {
		return nil, fmt.Errorf("at least two sources are needed to compare, got %v", len(opts.Sources))
	}
	for _, src := range opts.Sources {
		err := validateSource(src)
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}
