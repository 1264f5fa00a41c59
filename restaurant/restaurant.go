// Package restaurant holds the menu and table factories and the shared
// order and payment services of the restaurant.
package restaurant

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

// Restaurant owns the shared services and the output they report to.
// Orders and Payments are created on first access and live as long as the
// Restaurant does.
type Restaurant struct {
	out *lineWriter

	ordersOnce   sync.Once
	orders       *OrderManager
	paymentsOnce sync.Once
	payments     *PaymentSystem
}

func New(w io.Writer) *Restaurant {
	return &Restaurant{out: &lineWriter{w: w}}
}

var (
	defaultOnce       sync.Once
	defaultRestaurant *Restaurant
)

// Default returns the process-wide Restaurant reporting to stdout.
func Default() *Restaurant {
	defaultOnce.Do(func() {
		defaultRestaurant = New(os.Stdout)
	})

	return defaultRestaurant
}

// Output is the writer every line of this Restaurant goes through. Writes are
// serialized.
func (r *Restaurant) Output() io.Writer {
	return r.out
}

func (r *Restaurant) Orders() *OrderManager {
	r.ordersOnce.Do(func() {
		r.orders = &OrderManager{out: r.out}
	})

	return r.orders
}

func (r *Restaurant) Payments() *PaymentSystem {
	r.paymentsOnce.Do(func() {
		r.payments = &PaymentSystem{out: r.out}
	})

	return r.payments
}

type contextKey struct{}

func NewContext(ctx context.Context, r *Restaurant) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the Restaurant stored in ctx, or Default if there is none.
func FromContext(ctx context.Context) *Restaurant {
	if r, ok := ctx.Value(contextKey{}).(*Restaurant); ok && r != nil {
		return r
	}

	return Default()
}

type OrderManager struct {
	out io.Writer
}

func OrderProcessed(details string) string {
	return fmt.Sprintf("Order processed: %s", details)
}

func (m *OrderManager) ProcessOrder(details string) error {
	_, err := fmt.Fprintln(m.out, OrderProcessed(details))
	return err
}

type PaymentSystem struct {
	out io.Writer
}

// PaymentProcessed formats amount in its shortest decimal form, so 19.99 is
// reported as "$19.99" and 20 as "$20".
func PaymentProcessed(amount float64) string {
	return fmt.Sprintf("Payment processed: $%s", strconv.FormatFloat(amount, 'f', -1, 64))
}

func (p *PaymentSystem) ProcessPayment(amount float64) error {
	_, err := fmt.Fprintln(p.out, PaymentProcessed(amount))
	return err
}

type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lineWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.w.Write(p)
}
