package main

import (
	"coldchain-dashboard/internal/console"
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/platform/clock"
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

const usage = `usage: deliveryctl <command> [flags]

commands:
  list                       all deliveries
  active                     deliveries still in transit
  create -min-temp N ...     register a new delivery
  deliver <id>               conclude a delivery now
  inspect <id>               sensor readings of an evaluated delivery
  watch [-refresh 5s]        live view, redrawn every clock tick
`

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type cli struct {
	dash      *services.Dashboard
	out       io.Writer
	formatter view.TimeFormatter
	screen    console.Screen
	newClock  func() *clock.Ticker
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usagef("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return c.list(ctx, rest)
	case "active":
		return c.active(ctx, rest)
	case "create":
		return c.create(ctx, rest)
	case "deliver":
		return c.deliver(ctx, rest)
	case "inspect":
		return c.inspect(ctx, rest)
	case "watch":
		return c.watch(ctx, rest)
	default:
		return usagef("unknown command %q", cmd)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func noArgs(name string, args []string) error {
	if len(args) != 0 {
		return usagef("%s: unexpected arguments: %q", name, strings.Join(args, " "))
	}
	return nil
}

func oneID(name string, args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", usagef("%s: expected exactly one delivery id", name)
	}
	return args[0], nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	if err := noArgs("list", args); err != nil {
		return err
	}
	if err := c.dash.RefreshDeliveries(ctx); err != nil {
		return err
	}
	return console.WriteDeliveries(c.out, c.dash.State().Deliveries, c.formatter)
}

func (c *cli) active(ctx context.Context, args []string) error {
	if err := noArgs("active", args); err != nil {
		return err
	}
	if err := c.dash.RefreshActiveDeliveries(ctx); err != nil {
		return err
	}
	return console.WriteActive(c.out, c.dash.State().ActiveDeliveries)
}

func (c *cli) create(ctx context.Context, args []string) error {
	var form domain.DeliveryForm

	fs := newFlagSet("create")
	fs.StringVar(&form.MinTemp, "min-temp", "", "Minimum temperature (°C)")
	fs.StringVar(&form.MaxTemp, "max-temp", "", "Maximum temperature (°C)")
	fs.StringVar(&form.MinHumidity, "min-humidity", "", "Minimum humidity (%)")
	fs.StringVar(&form.MaxHumidity, "max-humidity", "", "Maximum humidity (%)")
	fs.StringVar(&form.ProductPrice, "product-price", "", "Product price")
	fs.StringVar(&form.DeliveryPrice, "delivery-price", "", "Delivery price")
	if err := fs.Parse(args); err != nil {
		return usagef("create: %v", err)
	}
	if err := noArgs("create", fs.Args()); err != nil {
		return err
	}

	c.dash.UpdateForm(form)
	if err := c.dash.SubmitDelivery(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(c.out, "Delivery submitted")
	return err
}

func (c *cli) deliver(ctx context.Context, args []string) error {
	id, err := oneID("deliver", args)
	if err != nil {
		return err
	}
	if err := c.dash.SimulateDelivery(ctx, id); err != nil {
		return err
	}

	s := c.dash.State()
	if d, ok := lo.Find(s.Deliveries, func(d domain.Delivery) bool { return d.ID == id }); ok {
		_, err = fmt.Fprintf(c.out, "Delivery %s is now %s\n", id, d.Status)
		return err
	}
	_, err = fmt.Fprintf(c.out, "Delivery %s simulated\n", id)
	return err
}

func (c *cli) inspect(ctx context.Context, args []string) error {
	id, err := oneID("inspect", args)
	if err != nil {
		return err
	}
	if err := c.dash.RefreshDeliveries(ctx); err != nil {
		return err
	}
	if err := c.dash.SelectDelivery(ctx, id); err != nil {
		return err
	}

	s := c.dash.State()
	if !s.ModalOpen || s.Inspection == nil {
		_, err = fmt.Fprintf(c.out, "Delivery %s is %s: no sensor data to show\n", id, s.Selected.Status)
		return err
	}
	return console.WriteSummary(c.out, id, *s.Inspection)
}

func (c *cli) watch(ctx context.Context, args []string) error {
	fs := newFlagSet("watch")
	every := fs.Duration("refresh", console.DefaultRefreshEvery, "How often the deliveries are re-fetched")
	if err := fs.Parse(args); err != nil {
		return usagef("watch: %v", err)
	}
	if err := noArgs("watch", fs.Args()); err != nil {
		return err
	}

	ticker := c.newClock()
	defer ticker.Stop()

	return console.Watcher{
		Out:          c.out,
		Screen:       c.screen,
		Source:       c.dash,
		Clock:        ticker,
		Formatter:    c.formatter,
		RefreshEvery: *every,
	}.Run(ctx)
}
