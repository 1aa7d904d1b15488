package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ahinestrog/bookstore-console/Backend/src/catalog"
	"github.com/ahinestrog/bookstore-console/Backend/src/store"
)

// App is the interactive menu. Input is read line by line.
type App struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
}

func NewApp(st *store.Store, in io.Reader, out io.Writer) *App {
	return &App{store: st, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user picks Exit or input runs out.
func (a *App) Run(ctx context.Context) error {
	a.printf("Welcome to the Online Bookstore!\n")
	for {
		a.printMenu()
		choice, err := a.readInt()
		if errors.Is(err, io.EOF) {
			a.printf("\nExiting the bookstore. Goodbye!\n")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = a.viewBooks(ctx)
		case 2:
			err = a.selectCustomer()
		case 3:
			err = a.addToCart(ctx)
		case 4:
			a.viewCart()
		case 5:
			err = a.checkout(ctx)
		case 6:
			err = a.recommend(ctx)
		case 0:
			a.printf("Exiting the bookstore. Goodbye!\n")
			return nil
		default:
			a.printf("Invalid choice. Please try again.\n")
		}
		if errors.Is(err, io.EOF) {
			a.printf("\nExiting the bookstore. Goodbye!\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) printMenu() {
	a.printf("\n--- Online Bookstore Menu ---\n")
	if c := a.store.Current(); c != nil {
		a.printf("Current Customer: %s (%s, %s points)\n", c.Name(), c.Tier(), humanize.Comma(int64(c.LoyaltyPoints())))
	} else {
		a.printf("No customer selected.\n")
	}
	a.printf("1. View All Books\n")
	a.printf("2. Select Customer\n")
	a.printf("3. Add Book to Cart\n")
	a.printf("4. View Cart\n")
	a.printf("5. Checkout\n")
	a.printf("6. View Recommended Books (Highest Priced per Category)\n")
	a.printf("0. Exit\n")
	a.printf("Enter your choice: ")
}

func (a *App) viewBooks(ctx context.Context) error {
	books, err := a.store.Catalog().All(ctx)
	if err != nil {
		return err
	}
	a.printf("\n--- Available Books ---\n")
	if len(books) == 0 {
		a.printf("No books in the catalog.\n")
		return nil
	}
	for i, b := range books {
		a.printf("%d. %s\n", i+1, bookDetails(b))
	}
	return nil
}

func (a *App) selectCustomer() error {
	a.printf("\n--- Select Customer ---\n")
	customers := a.store.Customers().All()
	for i, c := range customers {
		a.printf("%d. %s\n", i+1, c)
	}
	a.printf("Enter customer number to select: ")
	n, err := a.readInt()
	if err != nil {
		return err
	}
	c, err := a.store.Customers().At(n - 1)
	if err != nil {
		a.printf("Invalid customer selection.\n")
		return nil
	}
	if _, err := a.store.SelectCustomer(c.ID()); err != nil {
		return err
	}
	a.printf("Selected customer: %s\n", c.Name())
	return nil
}

func (a *App) addToCart(ctx context.Context) error {
	if a.store.Current() == nil {
		a.printf("Please select a customer first (Option 2).\n")
		return nil
	}
	if err := a.viewBooks(ctx); err != nil {
		return err
	}
	books, err := a.store.Catalog().All(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		return nil
	}

	a.printf("Enter book number to add to cart: ")
	n, err := a.readInt()
	if err != nil {
		return err
	}
	if n < 1 || n > len(books) {
		a.printf("Invalid book selection.\n")
		return nil
	}
	a.printf("Enter quantity: ")
	qty, err := a.readInt()
	if err != nil {
		return err
	}
	if qty <= 0 {
		a.printf("Quantity must be positive.\n")
		return nil
	}

	b, err := a.store.AddToCart(ctx, books[n-1].ID(), qty)
	if err != nil {
		return err
	}
	a.printf("Added to cart: %d x %s\n", qty, b.Title())
	return nil
}

func (a *App) viewCart() {
	a.printf("\n--- Shopping Cart ---\n")
	if c := a.store.Current(); c != nil {
		a.printf("Customer: %s\n", c.Name())
	}
	cart := a.store.Cart()
	if cart.IsEmpty() {
		a.printf("Shopping cart is empty.\n")
		return
	}
	for i, l := range cart.Lines() {
		a.printf("%d. %s (Type: %s) - Qty: %d - Price per unit (after type adj.): $%s - Line Total (before VIP): $%s\n",
			i+1, l.Book.Title(), l.Book.Kind(), l.Quantity, l.UnitPrice(), l.Total())
	}
	a.printf("---------------------\n")
	a.printf("Subtotal (before VIP discount): $%s\n", cart.Subtotal())
}

func (a *App) checkout(ctx context.Context) error {
	r, err := a.store.Checkout(ctx)
	switch {
	case errors.Is(err, store.ErrNoCustomer):
		a.printf("Please select a customer first (Option 2).\n")
		return nil
	case errors.Is(err, store.ErrEmptyCart):
		a.printf("Shopping cart is empty. Add books before checking out.\n")
		return nil
	case err != nil:
		return err
	}

	o := r.Order
	c := o.Customer()
	a.printf("\n--- Order Summary ---\n")
	a.printf("Order ID: %s (placed %s)\n", o.ID(), humanize.Time(o.CreatedAt()))
	a.printf("Customer: %s (%s)\n", c.Name(), c.Tier())
	a.printf("Items:\n")
	for _, s := range o.Summary() {
		if c.IsVIP() {
			a.printf("  - %d x %s @ $%s each (VIP Price: $%s, Original Item Price (after type adj.): $%s)\n",
				s.Quantity, s.Title, s.FinalUnit, s.FinalUnit, s.UnitPrice)
		} else {
			a.printf("  - %d x %s @ $%s each\n", s.Quantity, s.Title, s.FinalUnit)
		}
	}
	if c.IsVIP() && !o.VIPDiscountApplied().IsZero() {
		a.printf("Total VIP Discount Applied: $%s\n", o.VIPDiscountApplied())
	}
	a.printf("Grand Total: $%s\n", o.GrandTotal())
	a.printf("--------------------\n")
	if r.PointsEarned > 0 {
		a.printf("%s earned %s loyalty points. Total points: %s\n",
			c.Name(), humanize.Comma(int64(r.PointsEarned)), humanize.Comma(int64(r.Balance)))
	}
	a.printf("Thank you for your order, %s!\n", c.Name())
	return nil
}

func (a *App) recommend(ctx context.Context) error {
	best, err := a.store.Recommend(ctx)
	if err != nil {
		return err
	}
	a.printf("\n--- Recommended Books (Highest Priced per Category) ---\n")
	if len(best) == 0 {
		a.printf("No books available to recommend.\n")
		return nil
	}
	for _, k := range catalog.Kinds {
		b, ok := best[k]
		if !ok {
			continue
		}
		a.printf("Highest priced %s: %s at $%s\n", k, b.Title(), b.AdjustedPrice())
	}
	return nil
}

// readInt reads lines until one holds an integer. It returns io.EOF when
// input is exhausted.
func (a *App) readInt() (int, error) {
	for a.in.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err == nil {
			return n, nil
		}
		a.printf("Invalid input. Please enter a number: ")
	}
	if err := a.in.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func bookDetails(b *catalog.Book) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ISBN: %s, Title: '%s', Author: '%s', Base Price: $%s",
		b.ID(), b.Title(), b.Author(), b.BasePrice())
	switch b.Kind() {
	case catalog.KindEBook:
		fmt.Fprintf(&sb, ", Type: EBook (Discount: %s)", catalog.EBookDiscountRate.Percent())
	case catalog.KindAudioBook:
		fmt.Fprintf(&sb, ", Type: AudioBook (Fee: %s)", catalog.AudioBookFeeRate.Percent())
	default:
		sb.WriteString(", Type: PhysicalBook")
		if p := b.Print(); p.Pages > 0 {
			fmt.Fprintf(&sb, ", Pages: %d, Cover: %s, Published: %d", p.Pages, p.Cover, p.PublishYear)
		}
	}
	fmt.Fprintf(&sb, ", Final Price (after type adjustment): $%s", b.AdjustedPrice())
	return sb.String()
}
