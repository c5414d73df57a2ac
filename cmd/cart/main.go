// Command cart drives the shopping-cart store from the terminal, using the
// storage backend selected through the environment.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/strivehardest/celestial-shopping/internal/cart"
	"github.com/strivehardest/celestial-shopping/internal/config"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/logger"
	"github.com/strivehardest/celestial-shopping/internal/notify"
	"github.com/strivehardest/celestial-shopping/internal/pricing"
)

const usage = `usage: cart <command> [flags]

commands:
  list                         show the cart lines
  add -id N -name S -price P   add a product (-qty, -image, -slug, -category)
  remove -id N                 remove a product
  set -id N -qty Q             set a quantity, 0 removes
  clear                        empty the cart
  total                        print the cart total
  count                        print the number of units
  summary [-region R]          print the cart and checkout summaries
`

var errUsage = errors.New("invalid usage")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "cart",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Error("command failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("openRepository: %w", err)
	}
	defer closeRepo()

	store, err := cart.New(ctx, repo,
		cart.WithKey(cfg.CartKey),
		cart.WithCurrency(cfg.Currency),
		cart.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("cart.New: %w", err)
	}
	defer store.Close()

	unsubscribe := store.Subscribe(notify.NewLogListener(log))
	defer unsubscribe()

	return dispatch(ctx, store, args[0], args[1:], out)
}

func dispatch(ctx context.Context, store *cart.Store, cmd string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	id := fs.Int64("id", 0, "product id")
	name := fs.String("name", "", "product name")
	price := fs.String("price", "", "unit price")
	qty := fs.Int("qty", 1, "quantity")
	image := fs.String("image", "", "image url")
	slug := fs.String("slug", "", "product slug")
	category := fs.String("category", "", "category name")
	region := fs.String("region", "", "delivery region")

	if err := fs.Parse(args); err != nil {
		return errors.Join(errUsage, err)
	}

	switch cmd {
	case "list":
		return printItems(out, store.Items())

	case "add":
		if *id == 0 || *name == "" || *price == "" {
			return errUsage
		}
		return store.AddItem(ctx, domain.Product{
			ID:       domain.ProductID(*id),
			Name:     *name,
			Price:    *price,
			Image:    *image,
			Slug:     *slug,
			Category: *category,
		}, *qty)

	case "remove":
		if *id == 0 {
			return errUsage
		}
		return store.RemoveItem(ctx, domain.ProductID(*id))

	case "set":
		if *id == 0 {
			return errUsage
		}
		return store.UpdateQuantity(ctx, domain.ProductID(*id), *qty)

	case "clear":
		return store.ClearCart(ctx)

	case "total":
		_, err := fmt.Fprintln(out, notify.FormatMoney(store.Total()))
		return err

	case "count":
		_, err := fmt.Fprintln(out, strconv.Itoa(store.ItemCount()))
		return err

	case "summary":
		return printSummary(out, store.Total(), *region)

	default:
		return errUsage
	}
}

func printItems(out io.Writer, items []domain.LineItem) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			item.ProductID,
			item.Name,
			notify.FormatMoney(item.Price),
			item.Quantity,
			notify.FormatMoney(item.Subtotal()),
		)
	}

	return tw.Flush()
}

func printSummary(out io.Writer, subtotal domain.Money, region string) error {
	summary := pricing.Summarize(subtotal)
	quote := pricing.QuoteCheckout(subtotal, region)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Subtotal\t%s\n", notify.FormatMoney(summary.Subtotal))
	fmt.Fprintf(tw, "Tax (10%%)\t%s\n", notify.FormatMoney(summary.Tax))
	fmt.Fprintf(tw, "Total\t%s\n", notify.FormatMoney(summary.Total))
	fmt.Fprintf(tw, "Shipping\t%s\n", notify.FormatMoney(quote.Shipping))
	fmt.Fprintf(tw, "Checkout total\t%s\n", notify.FormatMoney(quote.Total))

	return tw.Flush()
}
