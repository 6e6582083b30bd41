package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/maxviazov/hydra-paging/internal/hydra"
	"github.com/maxviazov/hydra-paging/internal/pageurl"
)

type renderOptions struct {
	page         int
	itemsPerPage int
	total        int
	zeroBased    bool
	baseURL      string
	template     string
	param        string
	members      []string
	file         string
	indent       bool
}

// pageFile is the --file input. The numeric fields stay untyped so that a
// quoted or fractional value is reported instead of silently coerced.
type pageFile struct {
	PageNumber   any   `yaml:"pageNumber"`
	ItemsPerPage any   `yaml:"itemsPerPage"`
	TotalItems   any   `yaml:"totalItems"`
	Member       []any `yaml:"member"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hydractl",
		Short:        "Inspect Hydra paged collections",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the PagedCollection document for one page",
		Example: `  hydractl render --page 2 --items-per-page 10 --total 35 --base-url https://api.example.com/events
  hydractl render --page 0 --zero-based --total 3 --template /events/page/{page} --member a --member b
  hydractl render --file page.yaml --base-url https://api.example.com/events`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := opts.generator()
			if err != nil {
				return err
			}
			coll, err := opts.collection(cmd.InOrStdin(),
				hydra.WithGenerator(gen),
				hydra.ZeroBased(opts.zeroBased),
			)
			if err != nil {
				return err
			}
			if coll.ItemsPerPage() <= 0 {
				return fmt.Errorf("items per page must be > 0, got %d", coll.ItemsPerPage())
			}

			var out []byte
			if opts.indent {
				out, err = json.MarshalIndent(coll, "", "  ")
			} else {
				out, err = json.Marshal(coll)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.page, "page", 1, "page number in the chosen numbering scheme")
	f.IntVar(&opts.itemsPerPage, "items-per-page", 30, "page size")
	f.IntVar(&opts.total, "total", 0, "total items across all pages")
	f.BoolVar(&opts.zeroBased, "zero-based", false, "number the first page 0 instead of 1")
	f.StringVar(&opts.baseURL, "base-url", "", "collection URL; page links use a query parameter")
	f.StringVar(&opts.template, "template", "", "path pattern containing {page}; alternative to --base-url")
	f.StringVar(&opts.param, "param", pageurl.DefaultParam, "query parameter carrying the page number")
	f.StringArrayVar(&opts.members, "member", nil, "member value, repeatable")
	f.StringVar(&opts.file, "file", "", "YAML or JSON page file with pageNumber, itemsPerPage, totalItems and member; - reads stdin")
	f.BoolVar(&opts.indent, "indent", false, "pretty-print the document")
	cmd.MarkFlagsMutuallyExclusive("base-url", "template")
	for _, name := range []string{"page", "items-per-page", "total", "member"} {
		cmd.MarkFlagsMutuallyExclusive("file", name)
	}
	return cmd
}

// collection builds the page from --file when given, otherwise from the flags.
func (o renderOptions) collection(stdin io.Reader, opts ...hydra.Option) (*hydra.PagedCollection[any], error) {
	if o.file == "" {
		members := make([]any, len(o.members))
		for i, m := range o.members {
			members[i] = m
		}
		return hydra.New(o.page, o.itemsPerPage, members, o.total, opts...), nil
	}

	var (
		raw []byte
		err error
	)
	if o.file == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(o.file)
	}
	if err != nil {
		return nil, fmt.Errorf("--file: %w", err)
	}
	var pf pageFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("--file: %w", err)
	}
	return hydra.FromValues(pf.PageNumber, pf.ItemsPerPage, pf.Member, pf.TotalItems, opts...)
}

// generator returns nil when neither --base-url nor --template is set, which drops all links.
func (o renderOptions) generator() (hydra.PageURLGenerator, error) {
	switch {
	case o.baseURL != "":
		u, err := url.Parse(o.baseURL)
		if err != nil {
			return nil, fmt.Errorf("--base-url: %w", err)
		}
		return pageurl.NewQuery(u, o.param), nil
	case o.template != "":
		t, err := pageurl.NewTemplate(o.template)
		if err != nil {
			return nil, fmt.Errorf("--template: %w", err)
		}
		return t, nil
	default:
		return nil, nil
	}
}
