package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dukerupert/vagn/internal"
	"github.com/dukerupert/vagn/internal/domain"
	"github.com/dukerupert/vagn/internal/eventstore"
	"github.com/dukerupert/vagn/internal/inventory"
	"github.com/dukerupert/vagn/internal/publisher"
	"github.com/dukerupert/vagn/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize metrics
	metrics := telemetry.InitCartMetrics(cfg.Metrics.Namespace)
	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("Serving metrics", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Error("Metrics server stopped", "error", err)
			}
		}()
	}

	// Initialize event publisher
	var pub publisher.Publisher
	if cfg.NATS.URL != "" {
		logger.Info("Connecting to NATS...", "url", cfg.NATS.URL)
		pub, err = publisher.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			return fmt.Errorf("failed to initialize NATS publisher: %w", err)
		}
		logger.Info("NATS publisher initialized", "subject_prefix", cfg.NATS.SubjectPrefix)
	} else {
		pub = publisher.NewLogPublisher(logger)
		logger.Info("No NATS_URL configured, events will be logged")
	}
	defer pub.Close()

	// Initialize event store and stock checker
	store := eventstore.NewMemoryStore()
	stock := inventory.NewParityChecker()

	session := &cartSession{
		logger:  logger,
		metrics: metrics,
		cart:    domain.NewShoppingCart(stock),
	}
	logger.Info("Cart created", "cart_id", session.cart.ID(), "version", session.cart.Version())

	// A scripted shopping session: successful commands raise events,
	// rejected commands leave the cart untouched.
	session.exec("add_item", func() error {
		return session.cart.AddItem(101, 2, decimal.RequireFromString("99.99"))
	})
	session.exec("add_item", func() error {
		// Same product again: rejected as a duplicate.
		return session.cart.AddItem(101, 3, decimal.RequireFromString("99.99"))
	})
	session.exec("add_item", func() error {
		// Three fractional digits: rejected for precision.
		return session.cart.AddItem(104, 1, decimal.RequireFromString("12.345"))
	})
	session.exec("add_item", func() error {
		return session.cart.AddItem(102, 1, decimal.RequireFromString("100.00"))
	})
	session.exec("apply_discount", func() error {
		return session.cart.ApplyDiscount(102, decimal.RequireFromString("20.00"))
	})
	session.exec("apply_discount", func() error {
		// Lower than the current 20%: discounts are monotonic.
		return session.cart.ApplyDiscount(102, decimal.RequireFromString("10.00"))
	})
	session.exec("change_item_quantity", func() error {
		return session.cart.ChangeItemQuantity(101, 3)
	})
	session.exec("checkout", func() error {
		return session.cart.Checkout(ctx)
	})
	session.exec("add_item", func() error {
		// After checkout the cart is frozen.
		return session.cart.AddItem(103, 1, decimal.RequireFromString("10.00"))
	})

	logger.Info("Session finished",
		"items", len(session.cart.Items()),
		"total_price", session.cart.TotalPrice(),
		"total_quantity", session.cart.TotalQuantity(),
		"checked_out", session.cart.IsCheckedOut(),
		"version", session.cart.Version(),
	)

	// Persist, then publish: drain hands each event out exactly once.
	batch := session.cart.DrainEvents()
	if err := store.Append(ctx, session.cart.ID(), session.cart.Version()-len(batch), batch); err != nil {
		return fmt.Errorf("failed to append events: %w", err)
	}
	if err := pub.Publish(ctx, batch); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}
	for _, event := range batch {
		metrics.EventsPublished.WithLabelValues(event.EventType()).Inc()
	}
	logger.Info("Events persisted and published", "count", len(batch))

	// Replay the stored history into a fresh aggregate and compare.
	history, err := store.Load(ctx, session.cart.ID())
	if err != nil {
		return fmt.Errorf("failed to load event history: %w", err)
	}
	replica := domain.LoadShoppingCart(stock, history)
	logger.Info("Replayed cart from history",
		"events", len(history),
		"total_price_matches", replica.TotalPrice().Equal(session.cart.TotalPrice()),
		"version_matches", replica.Version() == session.cart.Version(),
		"checked_out", replica.IsCheckedOut(),
	)

	return nil
}

// cartSession runs commands against one cart, logging and counting each
// outcome.
type cartSession struct {
	logger  *slog.Logger
	metrics *telemetry.CartMetrics
	cart    *domain.ShoppingCart
}

func (s *cartSession) exec(command string, fn func() error) {
	pendingBefore := len(s.cart.Events())

	if err := fn(); err != nil {
		s.metrics.CommandsTotal.WithLabelValues(command, "rejected").Inc()
		s.metrics.CommandErrors.WithLabelValues(command, domain.ErrorCode(err)).Inc()
		s.logger.Warn("Command rejected",
			"command", command,
			"code", domain.ErrorCode(err),
			"reason", domain.ErrorMessage(err),
		)
		return
	}

	s.metrics.CommandsTotal.WithLabelValues(command, "ok").Inc()
	for _, event := range s.cart.Events()[pendingBefore:] {
		s.metrics.EventsRaised.WithLabelValues(event.EventType()).Inc()
		if checkedOut, ok := event.(domain.CheckedOut); ok {
			s.metrics.CheckoutValue.Observe(checkedOut.TotalPrice.InexactFloat64())
			s.metrics.CheckoutItemCount.Observe(float64(checkedOut.ItemCount))
		}
	}
	s.logger.Info("Command applied",
		"command", command,
		"total_price", s.cart.TotalPrice(),
		"total_quantity", s.cart.TotalQuantity(),
		"version", s.cart.Version(),
	)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
