// Package checkout drives the hosted payment flow: it creates a checkout
// session, sends the user's browser to the provider, and catches the
// provider's return redirect on a short-lived local listener.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"foodctl/internal/httpx"
)

// Result is what the provider's return redirect tells us. It is a transient
// signal for the user, not ground truth: the payment list must be re-fetched
// for the authoritative status.
type Result struct {
	OrderID  int64
	Success  bool
	Canceled bool
}

func (r Result) Banner() string {
	switch {
	case r.Success:
		return "Payment successful!"
	case r.Canceled:
		return "Payment canceled by user."
	default:
		return "Payment flow finished with no signal."
	}
}

// Listener serves the return route the checkout session points back at.
type Listener struct {
	srv     *http.Server
	results chan Result
}

func NewListener(addr string) *Listener {
	gin.SetMode(gin.ReleaseMode)
	l := &Listener{results: make(chan Result, 1)}
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger("return"))
	r.GET("/dashboard/payments", l.handleReturn)
	l.srv = &http.Server{Addr: addr, Handler: r}
	return l
}

func (l *Listener) handleReturn(c *gin.Context) {
	orderID, _ := strconv.ParseInt(c.Query("orderId"), 10, 64)
	res := Result{
		OrderID:  orderID,
		Success:  c.Query("success") == "true",
		Canceled: c.Query("canceled") == "true",
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, "<html><body><p>%s You can close this tab and return to the terminal.</p></body></html>", res.Banner())
	select {
	case l.results <- res:
	default: // a second redirect for the same flow is ignored
	}
}

// Start binds the return address and begins serving in the background.
// Binding happens synchronously so a busy port fails the flow up front
// instead of leaving the caller waiting for a redirect that can never
// arrive.
func (l *Listener) Start() error {
	ln, err := net.Listen("tcp", l.srv.Addr)
	if err != nil {
		return fmt.Errorf("bind return listener on %s: %w", l.srv.Addr, err)
	}
	go func() {
		if err := l.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[return] listener error: %v", err)
		}
	}()
	return nil
}

// Wait blocks until the provider redirects back or ctx expires.
func (l *Listener) Wait(ctx context.Context) (Result, error) {
	select {
	case res := <-l.results:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (l *Listener) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = l.srv.Shutdown(ctx)
}
