package cmd

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-restaurant/app/configs"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/Rakhulsr/go-restaurant/app/services"
	"github.com/Rakhulsr/go-restaurant/app/utils/format"
	"go.uber.org/zap"
)

// App holds the services for one process. It is built once and passed around.
type App struct {
	Env           configs.ENV
	Logger        *zap.Logger
	Notifications *services.NotificationService
	Users         *services.UserService
	Cart          *services.CartService
	Checkout      *services.CheckoutService
	Orders        *services.OrderService
	Preferences   *services.PreferencesService
	Reservations  *services.ReservationService
	Format        *format.Formatter

	closeStore func() error
}

func NewApp(ctx context.Context, env configs.ENV, logger *zap.Logger) (*App, error) {
	store, closeStore, err := configs.OpenStore(env, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	codec, err := configs.NewCodec(env)
	if err != nil {
		closeStore()
		return nil, err
	}

	notifications := services.NewNotificationService(logger)
	history := repositories.NewOrderHistoryRepository(store, codec)
	cartSvc := services.NewCartService(repositories.NewCartRepository(store, codec), notifications, logger, env.TaxRate)

	app := &App{
		Env:           env,
		Logger:        logger,
		Notifications: notifications,
		Cart:          cartSvc,
		Checkout:      services.NewCheckoutService(cartSvc, history, notifications, logger),
		Orders:        services.NewOrderService(history, logger),
		Preferences:   services.NewPreferencesService(repositories.NewPreferencesRepository(store, codec), logger),
		Reservations:  services.NewReservationService(repositories.NewReservationRepository(store, codec), cartSvc, notifications, logger),
		Format:        format.NewFormatter(env.CurrencySymbol),
		closeStore:    closeStore,
	}

	app.Cart.Load(ctx)
	prefs := app.Preferences.Load(ctx)

	// Favourites live in the persisted preferences; the profile mirrors them.
	user := services.DefaultUser()
	user.Preferences.FavoriteItems = prefs.FavoriteItems
	app.Users = services.NewUserService(notifications, user)
	return app, nil
}

func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}
