package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"foodctl/internal/api"
	"foodctl/internal/session"
)

func newRedirectorUnderTest(t *testing.T, handler http.Handler) *Redirector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.NewStore(filepath.Join(t.TempDir(), "session"))
	if err := sess.Set("tok"); err != nil {
		t.Fatal(err)
	}
	return &Redirector{
		API:           api.New(srv.URL, sess),
		Currency:      "inr",
		ReturnBaseURL: "http://localhost:3000",
	}
}

func TestRedirector_OpensCheckoutURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotSuccess, gotCancel string
	r := gin.New()
	r.POST("/payments/payments/create-checkout-session", func(c *gin.Context) {
		var req struct {
			SuccessURL string `json:"successUrl"`
			CancelURL  string `json:"cancelUrl"`
		}
		_ = c.ShouldBindJSON(&req)
		gotSuccess, gotCancel = req.SuccessURL, req.CancelURL
		c.JSON(http.StatusOK, gin.H{"url": "https://pay.example/session/abc"})
	})

	red := newRedirectorUnderTest(t, r)
	var opened string
	red.Open = func(url string) error {
		opened = url
		return nil
	}

	url, err := red.Start(context.Background(), 42, decimal.NewFromInt(250))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if url != "https://pay.example/session/abc" || opened != url {
		t.Errorf("url = %q, opened = %q", url, opened)
	}
	if gotSuccess != "http://localhost:3000/dashboard/payments?success=true&orderId=42" {
		t.Errorf("successUrl = %q", gotSuccess)
	}
	if gotCancel != "http://localhost:3000/dashboard/payments?canceled=true&orderId=42" {
		t.Errorf("cancelUrl = %q", gotCancel)
	}
}

// When the session cannot be created the browser must stay untouched.
func TestRedirector_NoNavigationOnFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payments/payments/create-checkout-session", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html", []byte("<html>oops</html>"))
	})

	red := newRedirectorUnderTest(t, r)
	opened := false
	red.Open = func(string) error {
		opened = true
		return nil
	}

	_, err := red.Start(context.Background(), 1, decimal.NewFromInt(10))
	if err == nil {
		t.Fatal("Start should fail on a non-JSON response")
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("raw body missing from error: %v", err)
	}
	if opened {
		t.Error("browser opened despite checkout failure")
	}
}
