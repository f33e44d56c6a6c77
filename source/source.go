package source

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/avast/retry-go"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"golang.org/x/net/html/charset"
	"singlelist/list"
	"singlelist/parallel"
	"singlelist/util"
)

const (
	COMMENT_PREFIX   = "#"
	DEFAULT_ATTEMPTS = 3
)

// Source names where a list is read from: a plain file, or a file at a
// revision of a git repository when Repository is set.
type Source struct {
	Path       string
	Repository string
	Revision   string
}

func (src Source) String() string {
	if src.Repository == "" {
		return src.Path
	}
	return fmt.Sprintf("%v@%v:%v", src.Repository, src.Revision, src.Path)
}

type Loader struct {
	Verbose bool
}

func (loader *Loader) verboseLog(format string, v ...interface{}) {
	if loader.Verbose {
		log.Printf(format, v...)
	}
}

func (loader *Loader) Load(src Source) (*list.LinkedList[string], error) {
	var values *list.LinkedList[string]
	var err error
	if src.Repository == "" {
		values, err = loader.LoadFile(src.Path)
	} else {
		values, err = loader.LoadRevision(src.Repository, src.Revision, src.Path)
	}
	if err != nil {
		return nil, err
	}
	loader.verboseLog("loaded %v values from '%v'", values.GetSize(), src)
	return values, nil
}

// LoadAll loads every source on a pool of workers. The lists are returned in
// the order of sources.
func (loader *Loader) LoadAll(ctx context.Context, sources []Source, workers int) ([]*list.LinkedList[string], error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*list.LinkedList[string], len(sources))
	queue := parallel.CreateJobQueue(ctx, len(sources), workers)
	for i, src := range sources {
		err := queue.Add(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values, err := loader.Load(src)
			if err != nil {
				return fmt.Errorf("failed to load '%v': %w", src, err)
			}
			results[i] = values
			return nil
		})
		if err != nil {
			break
		}
	}
	if err := queue.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (loader *Loader) LoadFile(path string) (*list.LinkedList[string], error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_SOURCE_PATH,
			InternalError: fmt.Errorf("failed to read '%v': %v", path, err),
		}
	}
	return Parse(content)
}

func (loader *Loader) LoadRevision(repositoryPath string, revision string, path string) (*list.LinkedList[string], error) {
	repository, err := git.PlainOpen(repositoryPath)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_REPOSITORY,
			InternalError: fmt.Errorf("failed to open repository at '%v': %v", repositoryPath, err),
		}
	}

	hash, err := repository.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_REVISION,
			InternalError: fmt.Errorf("failed to get revision '%v': %v", revision, err),
		}
	}

	commit, err := repository.CommitObject(*hash)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_REVISION,
			InternalError: fmt.Errorf("failed to get commit '%v' of revision '%v': %v", hash, revision, err),
		}
	}
	loader.verboseLog("reading '%v' from commit '%v' for revision '%v'", path, commit.Hash, revision)

	file, err := commit.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_FILE_NOT_FOUND,
				InternalError: fmt.Errorf("no file '%v' at revision '%v'", path, revision),
			}
		}
		return nil, fmt.Errorf("failed to get file '%v' at revision '%v': %v", path, revision, err)
	}

	var contents string
	err = retry.Do(
		func() error {
			var contentsErr error
			contents, contentsErr = file.Contents()
			return contentsErr
		},
		retry.Attempts(DEFAULT_ATTEMPTS),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get git file contents for '%v': %v", path, err)
	}

	return Parse([]byte(contents))
}

// Parse reads one value per line. The encoding is detected from the content,
// line endings are normalized, and blank lines and lines starting with '#'
// are skipped. Surrounding whitespace is kept.
func Parse(content []byte) (*list.LinkedList[string], error) {
	encoding, _, _ := charset.DetermineEncoding(content, "text/plain")
	decoded, err := encoding.NewDecoder().Bytes(content)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_ENCODING,
			InternalError: fmt.Errorf("failed to decode content: %v", err),
		}
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	text = strings.TrimPrefix(text, "\ufeff")

	values := list.New[string]()
	tail := values.BeforeBegin()
	for _, line := range strings.Split(text, "\n") {
		if len(strings.TrimSpace(line)) == 0 || strings.HasPrefix(line, COMMENT_PREFIX) {
			continue
		}
		tail = values.InsertAfter(tail, line)
	}
	return values, nil
}
