package checkout

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/shopspring/decimal"

	"foodctl/internal/api"
)

// Redirector initiates a hosted checkout session and navigates the browser
// to it. Once the URL is obtained the navigation is unconditional; there is
// no client-side state to observe until the provider redirects back.
type Redirector struct {
	API           *api.Client
	Currency      string
	ReturnBaseURL string

	// Open launches the browser; overridable in tests. Defaults to the
	// platform opener.
	Open func(url string) error
}

func (r *Redirector) open(url string) error {
	if r.Open != nil {
		return r.Open(url)
	}
	return OpenBrowser(url)
}

func (r *Redirector) successURL(orderID int64) string {
	return fmt.Sprintf("%s/dashboard/payments?success=true&orderId=%d", r.ReturnBaseURL, orderID)
}

func (r *Redirector) cancelURL(orderID int64) string {
	return fmt.Sprintf("%s/dashboard/payments?canceled=true&orderId=%d", r.ReturnBaseURL, orderID)
}

// Start creates the checkout session and opens the browser at the returned
// URL. The URL is returned as well so the caller can print it for manual
// navigation if the opener fails.
func (r *Redirector) Start(ctx context.Context, orderID int64, amount decimal.Decimal) (string, error) {
	url, err := r.API.CreateCheckoutSession(ctx, orderID, amount, r.Currency,
		r.successURL(orderID), r.cancelURL(orderID))
	if err != nil {
		return "", err
	}
	log.Printf("[checkout] orderId=%d redirecting to %s", orderID, url)
	if err := r.open(url); err != nil {
		log.Printf("[checkout] could not open browser: %v", err)
	}
	return url, nil
}

func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
