package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"singlelist/list"
	"singlelist/options"
	"singlelist/script"
	"singlelist/source"
	"singlelist/stats"
)

func runList(opts *options.Options, out io.Writer) error {
	loader := &source.Loader{Verbose: opts.VerboseLogging}
	values, err := loader.Load(opts.Source)
	if err != nil {
		return err
	}

	runner, err := script.NewRunner(opts.IncludePatterns, opts.ExcludePatterns, opts.IgnoreCasePatterns, opts.VerboseLogging)
	if err != nil {
		return err
	}
	err = runner.Apply(values, opts.Operations)
	if err != nil {
		return err
	}

	for value := range values.All() {
		if _, err = fmt.Fprintln(out, value); err != nil {
			return fmt.Errorf("failed to write values: %v", err)
		}
	}

	if len(opts.OutputPath) > 0 {
		err = stats.Collect(opts.Source.String(), values).WriteFile(opts.OutputPath)
		if err != nil {
			return err
		}
		log.Printf("written stats of %v values to '%v'", values.GetSize(), opts.OutputPath)
	}
	return nil
}

func relation(lhs *list.LinkedList[string], rhs *list.LinkedList[string]) string {
	switch {
	case list.Less(lhs, rhs):
		return "<"
	case list.Equal(lhs, rhs):
		return "=="
	default:
		return ">"
	}
}

func compareLists(ctx context.Context, opts *options.CompareOptions, out io.Writer) error {
	loader := &source.Loader{Verbose: opts.VerboseLogging}
	lists, err := loader.LoadAll(ctx, opts.Sources, opts.Workers)
	if err != nil {
		return err
	}

	for i := 1; i < len(lists); i++ {
		_, err = fmt.Fprintf(out, "%v %v %v\n", opts.Sources[i-1], relation(lists[i-1], lists[i]), opts.Sources[i])
		if err != nil {
			return fmt.Errorf("failed to write comparison: %v", err)
		}
	}
	return nil
}
