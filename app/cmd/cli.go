package cmd

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/Rakhulsr/go-restaurant/app/cart"
	"github.com/Rakhulsr/go-restaurant/app/configs"
	"github.com/Rakhulsr/go-restaurant/app/db/seeders"
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/models/migrations"
	"github.com/Rakhulsr/go-restaurant/app/services"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var ErrUnknownItem = errors.New("item is not on the menu")

type appAction func(ctx context.Context, app *App, c *cli.Command) error

// withApp builds the App for a single command run and prints notifications to
// the command's writer while it runs.
func withApp(env configs.ENV, logger *zap.Logger, fn appAction) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		app, err := NewApp(ctx, env, logger)
		if err != nil {
			return err
		}
		defer app.Close()

		w := c.Root().Writer
		unsubscribe := app.Notifications.Subscribe(func(message string, severity services.Severity) {
			fmt.Fprintf(w, "[%s] %s\n", severity, message)
		})
		defer unsubscribe()

		return fn(ctx, app, c)
	}
}

func NewCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "restaurant",
		Usage: "Restaurant cart, checkout and order history",
		Commands: []*cli.Command{
			menuCommand(env, logger),
			cartCommand(env, logger),
			checkoutCommand(env, logger),
			ordersCommand(env, logger),
			favoritesCommand(env, logger),
			reserveCommand(env, logger),
			reservationsCommand(env, logger),
			{
				Name:  "migrate",
				Usage: "Create the key/value table for the mysql storage driver",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, logger)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logger.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate storage sealing keys for .env",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "also write the keys to this file"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					keys, err := configs.GenerateStorageKeys()
					if err != nil {
						return err
					}
					if err := configs.WriteStorageKeys(c.Root().Writer, keys, c.String("out")); err != nil {
						return err
					}
					logger.Info("key generation complete, copy the keys to your .env file")
					return nil
				},
			},
		},
	}
}

func RunCli(ctx context.Context, args []string, env configs.ENV, logger *zap.Logger) error {
	return NewCommand(env, logger).Run(ctx, args)
}

func menuCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "List menu items (* marks favourites)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "starters, mainCourse, desserts or specials"},
		},
		Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
			items := seeders.Menu()
			if category := c.String("category"); category != "" {
				items = seeders.MenuByCategory(category)
			}
			renderMenu(c.Root().Writer, app.Format, items, app.Preferences.IsFavorite)
			return nil
		}),
	}
}

func lookupItems(ids []string) ([]*models.LineItem, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one menu item id is required")
	}
	items := make([]*models.LineItem, 0, len(ids))
	for _, id := range ids {
		m, ok := seeders.FindMenuItem(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
		}
		items = append(items, m.LineItem())
	}
	return items, nil
}

func cartCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	show := func(ctx context.Context, app *App, c *cli.Command) error {
		renderCart(c.Root().Writer, app.Format, app.Cart.State())
		return nil
	}

	return &cli.Command{
		Name:   "cart",
		Usage:  "Show or change the cart",
		Action: withApp(env, logger, show),
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the cart and its totals",
				Action: withApp(env, logger, show),
			},
			{
				Name:      "add",
				Usage:     "Add one unit of each menu item",
				ArgsUsage: "<item-id>...",
				Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
					items, err := lookupItems(c.Args().Slice())
					if err != nil {
						return err
					}
					for _, item := range items {
						if _, err := app.Cart.AddItem(ctx, item); err != nil {
							return err
						}
					}
					return show(ctx, app, c)
				}),
			},
			{
				Name:      "remove",
				Usage:     "Remove one unit of each item",
				ArgsUsage: "<item-id>...",
				Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
					if c.NArg() == 0 {
						return fmt.Errorf("at least one item id is required")
					}
					for _, id := range c.Args().Slice() {
						if _, err := app.Cart.RemoveItem(ctx, &models.LineItem{ID: id}); err != nil {
							return err
						}
					}
					return show(ctx, app, c)
				}),
			},
			{
				Name:  "clear",
				Usage: "Empty the cart",
				Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
					if _, err := app.Cart.Clear(ctx); err != nil {
						return err
					}
					return show(ctx, app, c)
				}),
			},
			{
				Name:  "toggle",
				Usage: "Open or close the cart drawer",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "open", Usage: "force open (false forces closed)"},
				},
				Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
					var open *bool
					if c.IsSet("open") {
						open = cart.Open(c.Bool("open"))
					}
					if _, err := app.Cart.Toggle(ctx, open); err != nil {
						return err
					}
					return show(ctx, app, c)
				}),
			},
			{
				Name:  "discount",
				Usage: "Apply a percentage promo code, replacing any previous one",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code", Required: true},
					&cli.StringFlag{Name: "percent", Required: true},
				},
				Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
					percent, err := decimal.NewFromString(c.String("percent"))
					if err != nil {
						return fmt.Errorf("invalid percent %q: %w", c.String("percent"), err)
					}
					if _, err := app.Cart.ApplyDiscount(ctx, c.String("code"), percent); err != nil {
						return err
					}
					return show(ctx, app, c)
				}),
			},
		},
	}
}

func checkoutCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "Place an order from the cart (details default to the signed-in profile)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "phone"},
			&cli.StringFlag{Name: "address"},
		},
		Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
			profile, _ := app.Users.GetProfile(services.DefaultUserEmail)
			customer := models.Customer{
				Name:    pick(c.String("name"), profile.Name),
				Email:   pick(c.String("email"), profile.Email),
				Phone:   pick(c.String("phone"), profile.Phone),
				Address: pick(c.String("address"), profile.Address),
			}

			order, err := app.Checkout.Submit(ctx, customer)
			if err != nil {
				printFieldErrors(c, err)
				return err
			}
			renderOrder(c.Root().Writer, app.Format, order)
			return nil
		}),
	}
}

func printFieldErrors(c *cli.Command, err error) {
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
		fmt.Fprintf(c.Root().ErrWriter, "%s: %s\n", field, verr.Fields[field])
	}
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func ordersCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "orders",
		Usage:     "Show order history, newest first",
		ArgsUsage: "[order-id]",
		Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
			w := c.Root().Writer
			if id := c.Args().First(); id != "" {
				order, ok, err := app.Orders.Find(ctx, id)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("order %s not found", id)
				}
				renderOrder(w, app.Format, order)
				return nil
			}

			orders, err := app.Orders.History(ctx)
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Fprintln(w, "You haven't placed any orders yet")
			}
			for _, o := range orders {
				renderOrder(w, app.Format, o)
			}
			return nil
		}),
	}
}

func favoritesCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	list := func(ctx context.Context, app *App, c *cli.Command) error {
		w := c.Root().Writer
		for _, id := range app.Preferences.Get().FavoriteItems {
			if m, ok := seeders.FindMenuItem(id); ok {
				fmt.Fprintf(w, "%s\t%s\n", id, m.Name)
			} else {
				fmt.Fprintln(w, id)
			}
		}
		return nil
	}

	return &cli.Command{
		Name:   "favorites",
		Usage:  "Manage favourite menu items",
		Action: withApp(env, logger, list),
		Commands: []*cli.Command{
			{
				Name:   "list",
				Action: withApp(env, logger, list),
			},
			{
				Name:      "add",
				ArgsUsage: "<item-id>",
				Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
					items, err := lookupItems(c.Args().Slice())
					if err != nil {
						return err
					}
					for _, item := range items {
						if _, err := app.Preferences.AddFavorite(ctx, item.ID); err != nil {
							return err
						}
					}
					return list(ctx, app, c)
				}),
			},
			{
				Name:      "remove",
				ArgsUsage: "<item-id>",
				Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
					for _, id := range c.Args().Slice() {
						if _, err := app.Preferences.RemoveFavorite(ctx, id); err != nil {
							return err
						}
					}
					return list(ctx, app, c)
				}),
			},
		},
	}
}

func reserveCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "reserve",
		Usage: "Book a table (contact details default to the signed-in profile)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "phone"},
			&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD"},
			&cli.StringFlag{Name: "time", Usage: "HH:MM"},
			&cli.IntFlag{Name: "guests", Value: 2, Usage: fmt.Sprintf("1 to %d", models.MaxReservationGuests)},
			&cli.StringFlag{Name: "requests", Usage: "special requests"},
			&cli.BoolFlag{Name: "pre-order", Usage: "attach the current cart to the booking"},
		},
		Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
			profile, _ := app.Users.GetProfile(services.DefaultUserEmail)
			r := models.Reservation{
				Name:            pick(c.String("name"), profile.Name),
				Email:           pick(c.String("email"), profile.Email),
				Phone:           pick(c.String("phone"), profile.Phone),
				Date:            c.String("date"),
				Time:            c.String("time"),
				Guests:          int(c.Int("guests")),
				SpecialRequests: c.String("requests"),
			}

			booked, err := app.Reservations.Reserve(ctx, r, c.Bool("pre-order"))
			if err != nil {
				printFieldErrors(c, err)
				return err
			}
			renderReservation(c.Root().Writer, app.Format, booked)
			return nil
		}),
	}
}

func reservationsCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "reservations",
		Usage: "List table bookings",
		Action: withApp(env, logger, func(ctx context.Context, app *App, c *cli.Command) error {
			w := c.Root().Writer
			reservations, err := app.Reservations.List(ctx)
			if err != nil {
				return err
			}
			if len(reservations) == 0 {
				fmt.Fprintln(w, "No reservations yet")
			}
			for _, r := range reservations {
				renderReservation(w, app.Format, r)
			}
			return nil
		}),
	}
}
