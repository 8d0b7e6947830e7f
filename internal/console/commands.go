package console

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"realty/internal/inquiry"
	"realty/internal/model"
)

// ErrUsage marks a malformed command line
var ErrUsage = errors.New("usage error")

const usage = `Usage: realty <command> [flags]

Commands:
  properties                  browse listings (-city -type -min-price -max-price -sort -order)
  property <id>               show one listing
  inquire <propertyId>        contact the listing's agent (-name -email -phone -message)
  agents                      list agents (-specialization)
  inquiries                   list inquiries (-property -user -agent -status)
  inquiry-status <id> <status>
                              set an inquiry to Pending, Responded or Closed
  analytics                   show the analytics dashboard
  price-ranges                show listing counts per price range
  init-db                     create indexes and seed sample data
`

// Usage writes the command summary
func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// Run dispatches one console command. Page load failures are rendered, not
// returned; only bad usage and failed writes produce an error.
func (c *Console) Run(ctx context.Context, args []string) error {
	err := c.dispatch(ctx, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (c *Console) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "properties":
		return c.runProperties(ctx, rest)
	case "property":
		id, err := oneArg(cmd, rest)
		if err != nil {
			return err
		}
		c.RenderProperty(c.LoadProperty(ctx, id))
		return nil
	case "inquire":
		return c.runInquire(ctx, rest)
	case "agents":
		return c.runAgents(ctx, rest)
	case "inquiries":
		return c.runInquiries(ctx, rest)
	case "inquiry-status":
		if len(rest) != 2 {
			return usageError("inquiry-status takes <id> <status>")
		}
		if !model.IsInquiryStatus(rest[1]) {
			return usageError(fmt.Sprintf("unknown status %q", rest[1]))
		}
		c.RenderInquiries(c.UpdateInquiryStatus(ctx, rest[0], rest[1]))
		return nil
	case "analytics":
		c.RenderAnalytics(c.LoadAnalytics(ctx))
		return nil
	case "price-ranges":
		c.RenderPriceRanges(c.LoadPriceRanges(ctx))
		return nil
	case "init-db":
		ack, err := c.api.InitDB(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		c.printf("%s\n", ack.Message)
		return nil
	case "help", "-h", "--help":
		Usage(c.out)
		return nil
	}
	return usageError(fmt.Sprintf("unknown command %q", cmd))
}

func (c *Console) runProperties(ctx context.Context, args []string) error {
	filters := model.DefaultListingFilters()

	fs := c.flagSet("properties")
	fs.StringVar(&filters.City, "city", filters.City, "city name")
	fs.StringVar(&filters.PropertyType, "type", filters.PropertyType, "Apartment, House, Penthouse or Commercial")
	fs.StringVar(&filters.MinPrice, "min-price", filters.MinPrice, "minimum price")
	fs.StringVar(&filters.MaxPrice, "max-price", filters.MaxPrice, "maximum price")
	fs.StringVar(&filters.SortBy, "sort", filters.SortBy, "price, size, city or createdAt")
	fs.StringVar(&filters.Order, "order", filters.Order, "asc or desc")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	c.RenderProperties(c.LoadProperties(ctx, filters))
	return nil
}

func (c *Console) runInquire(ctx context.Context, args []string) error {
	var form inquiry.ContactForm

	fs := c.flagSet("inquire")
	fs.StringVar(&form.Name, "name", "", "your name (required)")
	fs.StringVar(&form.Email, "email", "", "your email (required)")
	fs.StringVar(&form.Phone, "phone", "", "your phone")
	fs.StringVar(&form.Message, "message", "", "message to the agent")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	id, err := oneArg("inquire", fs.Args())
	if err != nil {
		return err
	}
	if form.Name == "" || form.Email == "" {
		return usageError("inquire requires -name and -email")
	}

	return c.SubmitInquiry(ctx, id, form)
}

func (c *Console) runAgents(ctx context.Context, args []string) error {
	var filter model.AgentFilter

	fs := c.flagSet("agents")
	fs.StringVar(&filter.Specialization, "specialization", "", "e.g. Residential, Commercial, Luxury")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	c.RenderAgents(c.LoadAgents(ctx, filter))
	return nil
}

func (c *Console) runInquiries(ctx context.Context, args []string) error {
	var filter model.InquiryFilter

	fs := c.flagSet("inquiries")
	fs.StringVar(&filter.PropertyID, "property", "", "property id")
	fs.StringVar(&filter.UserID, "user", "", "user id")
	fs.StringVar(&filter.AgentID, "agent", "", "agent id")
	fs.StringVar(&filter.Status, "status", "", "Pending, Responded or Closed")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	c.RenderInquiries(c.LoadInquiries(ctx, filter))
	return nil
}

func (c *Console) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func (c *Console) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError(err.Error())
	}
	return nil
}

func oneArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", usageError(cmd + " takes exactly one id")
	}
	return args[0], nil
}

func usageError(msg string) error {
	return fmt.Errorf("%w: %s", ErrUsage, msg)
}
