package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"cafe-kiosk/internal/config"
	"cafe-kiosk/internal/logger"
	"cafe-kiosk/internal/menu"
	"cafe-kiosk/internal/models"
	"cafe-kiosk/internal/payment"
	"cafe-kiosk/internal/storage"
	"cafe-kiosk/internal/store"
)

func main() {
	// Parse command line flags
	var (
		mode       = flag.String("mode", "kiosk", "Start screen (kiosk, orders)")
		configPath = flag.String("config", "config.yaml", "Path to config file")
		backend    = flag.String("storage", "", "Override the configured storage backend (bolt, redis, memory)")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *backend != "" {
		cfg.Storage.Backend = *backend
	}

	// Create logger
	var log *logger.Logger
	if cfg.Logging.File != "" {
		log = logger.NewWithFile("cafe-kiosk", cfg.Logging.File)
	} else {
		log = logger.New("cafe-kiosk")
	}
	requestID := logger.GenerateRequestID()

	log.Info("kiosk_started", requestID, fmt.Sprintf("Starting kiosk with %s storage", cfg.Storage.Backend))

	// Open durable storage
	st, err := openStorage(cfg, log)
	if err != nil {
		log.Error("storage_open_failed", requestID, "Failed to open storage", err)
		os.Exit(1)
	}
	defer st.Close()

	// Close storage cleanly on Ctrl-C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("kiosk_shutdown", requestID, "Received shutdown signal")
		st.Close()
		os.Exit(0)
	}()

	k := &kiosk{
		store:     store.New(st, log),
		processor: payment.NewProcessor(),
		cfg:       cfg,
		in:        bufio.NewScanner(os.Stdin),
	}

	switch *mode {
	case "kiosk":
		k.run(viewMenu)
	case "orders":
		k.run(viewOrders)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}

	log.Info("kiosk_stopped", requestID, "Kiosk stopped")
}

// openStorage opens the backend selected in the configuration
func openStorage(cfg *config.Config, log *logger.Logger) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "bolt":
		return storage.NewBolt(cfg.Storage.Path)
	case "redis":
		return storage.NewRedis(cfg, log)
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

type view int

const (
	viewMenu view = iota
	viewOrders
	viewQuit
)

// kiosk drives the terminal screens. It owns no order state: everything
// lives in the store.
type kiosk struct {
	store     *store.Store
	processor *payment.Processor
	cfg       *config.Config
	in        *bufio.Scanner
}

func (k *kiosk) run(start view) {
	current := start
	for current != viewQuit {
		switch current {
		case viewMenu:
			current = k.menuView()
		case viewOrders:
			current = k.ordersView()
		}
	}
}

// menuView is the menu browser plus cart sidebar
func (k *kiosk) menuView() view {
	k.store.LoadFromStorage()
	k.printMenu()

	for {
		k.printCart()
		fmt.Print("kiosk> ")
		if !k.in.Scan() {
			return viewQuit
		}

		fields := strings.Fields(k.in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "menu":
			k.printMenu()
		case "add":
			k.addItem(fields)
		case "remove":
			k.removeItem(fields)
		case "clear":
			k.store.ClearCart()
			k.store.SaveCartToStorage()
		case "checkout":
			if next, done := k.checkout(); done {
				return next
			}
		case "orders":
			return viewOrders
		case "quit":
			return viewQuit
		case "help":
			fmt.Println("commands: menu, add <id>, remove <id>, clear, checkout, orders, quit")
		default:
			fmt.Printf("Unknown command %q (try help)\n", fields[0])
		}
	}
}

func (k *kiosk) addItem(fields []string) {
	id, err := parseID(fields)
	if err != nil {
		fmt.Println(err)
		return
	}
	item, ok := menu.Find(int(id))
	if !ok {
		fmt.Printf("No menu item with id %d\n", id)
		return
	}
	k.store.AddToCart(item.MenuItem())
	k.store.SaveCartToStorage()
}

func (k *kiosk) removeItem(fields []string) {
	id, err := parseID(fields)
	if err != nil {
		fmt.Println(err)
		return
	}
	k.store.RemoveFromCart(int(id))
	k.store.SaveCartToStorage()
}

// checkout runs the payment modal. It reports the next view and whether the
// menu view should hand over to it.
func (k *kiosk) checkout() (view, bool) {
	if len(k.store.Cart()) == 0 {
		fmt.Println("No items in cart")
		return viewMenu, false
	}

	k.store.SetShowPaymentModal(true)
	total := k.store.TotalPrice()
	fmt.Println("--- Payment Details ---")
	fmt.Printf("Total Amount: $%.2f\n", total)
	fmt.Println("Payment Method: (Mock Payment)")

	for k.store.ShowPaymentModal() {
		fmt.Print("pay? (y/n) ")
		if !k.in.Scan() {
			return viewQuit, true
		}

		switch strings.TrimSpace(k.in.Text()) {
		case "y", "yes":
			receipt, err := k.processor.Charge(total)
			if err != nil {
				fmt.Printf("Payment declined: %v\n", err)
				continue
			}

			order := k.store.ProcessPayment()
			if order == nil {
				// Storage hiccup: the modal stays open, nothing else
				// changes, the customer can try again.
				fmt.Println("Payment could not be completed, please try again")
				continue
			}

			k.store.SetShowPaymentModal(false)
			k.celebrate(order.ID, receipt.ID)
			return viewOrders, true
		case "n", "no":
			k.store.SetShowPaymentModal(false)
		default:
			fmt.Println("Please answer y or n")
		}
	}

	return viewMenu, false
}

// celebrate shows the success notification for the configured delay, then
// the caller navigates to the orders view. The store may change underneath
// (the flags are all this touches).
func (k *kiosk) celebrate(orderID int64, receiptID string) {
	k.store.SetShowNotification(true)
	fmt.Printf("Order placed successfully! (order %d, receipt %s)\n", orderID, receiptID)
	time.Sleep(k.cfg.NotificationDelay())
	k.store.SetShowNotification(false)
}

// ordersView is the order history screen
func (k *kiosk) ordersView() view {
	k.store.LoadOrders()
	k.printOrders()

	for {
		fmt.Print("orders> ")
		if !k.in.Scan() {
			return viewQuit
		}

		fields := strings.Fields(k.in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			k.printOrders()
		case "complete":
			k.updateStatus(fields, models.StatusCompleted)
		case "cancel":
			k.updateStatus(fields, models.StatusCancelled)
		case "delete":
			id, err := parseID(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			k.store.DeleteOrder(id)
			k.printOrders()
		case "menu":
			return viewMenu
		case "quit":
			return viewQuit
		case "help":
			fmt.Println("commands: list, complete <id>, cancel <id>, delete <id>, menu, quit")
		default:
			fmt.Printf("Unknown command %q (try help)\n", fields[0])
		}
	}
}

func (k *kiosk) updateStatus(fields []string, status models.OrderStatus) {
	id, err := parseID(fields)
	if err != nil {
		fmt.Println(err)
		return
	}
	k.store.UpdateOrderStatus(id, status)
	k.printOrders()
}

func (k *kiosk) printMenu() {
	fmt.Println("=== Menu ===")
	for _, cat := range menu.Categories() {
		fmt.Printf("%s:\n", cat.Name)
		for _, item := range cat.Items {
			fmt.Printf("  [%d] %-12s $%.2f\n", item.ID, item.Name, item.Price)
		}
	}
}

func (k *kiosk) printCart() {
	cart := k.store.Cart()
	if len(cart) == 0 {
		fmt.Println("Your Order: no items in cart")
		return
	}

	fmt.Println("Your Order:")
	for _, item := range cart {
		fmt.Printf("  %-12s $%.2f x %d\n", item.Name, item.Price, item.Quantity)
	}
	fmt.Printf("Total: $%.2f\n", k.store.TotalPrice())
}

func (k *kiosk) printOrders() {
	orders := k.store.Orders()
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return
	}

	fmt.Println("=== Order History ===")
	for _, order := range orders {
		fmt.Printf("Order %d  %s  $%.2f  [%s]\n", order.ID, order.Date, order.Total, order.Status)
		for _, item := range order.Items {
			fmt.Printf("  %-12s $%.2f x %d\n", item.Name, item.Price, item.Quantity)
		}
	}
}

func parseID(fields []string) (int64, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("usage: %s <id>", fields[0])
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", fields[1])
	}
	return id, nil
}
