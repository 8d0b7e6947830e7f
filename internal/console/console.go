// Package console renders the listings API as terminal pages: properties,
// property detail with inquiries, agents, inquiry management and analytics.
package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"realty/internal/client"
	"realty/internal/inquiry"
	"realty/internal/report"
)

// Console holds the API client and the page workflows built on it
type Console struct {
	api      *client.Client
	reports  *report.Aggregator
	workflow *inquiry.Workflow
	out      io.Writer
}

// New creates a console writing its pages to out
func New(api *client.Client, out io.Writer) *Console {
	return &Console{
		api:      api,
		reports:  report.NewAggregator(api.Aggregation),
		workflow: inquiry.NewWorkflow(api.Users, api.Inquiries),
		out:      out,
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// heading prints a page title and subtitle
func (c *Console) heading(title, subtitle string) {
	c.printf("\n=== %s ===\n", title)
	if subtitle != "" {
		c.printf("%s\n", subtitle)
	}
	c.printf("%s\n", strings.Repeat("=", len(title)+8))
}

// loading returns the hook that announces a page load
func loading[T any](c *Console, what string) func(Page[T]) {
	return func(Page[T]) {
		c.printf("Loading %s...\n", what)
	}
}

// table writes rows aligned in columns
func (c *Console) table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}
