package checkout

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestListener_SuccessRedirect(t *testing.T) {
	l := NewListener(":0")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/payments?success=true&orderId=42", nil)
	rec := httptest.NewRecorder()
	l.srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("content-type = %q", ct)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !res.Success || res.Canceled || res.OrderID != 42 {
		t.Errorf("result = %+v", res)
	}
	if res.Banner() != "Payment successful!" {
		t.Errorf("banner = %q", res.Banner())
	}
}

func TestListener_CanceledRedirect(t *testing.T) {
	l := NewListener(":0")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/payments?canceled=true&orderId=7", nil)
	l.srv.Handler.ServeHTTP(httptest.NewRecorder(), req)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if res.Success || !res.Canceled || res.OrderID != 7 {
		t.Errorf("result = %+v", res)
	}
	if res.Banner() != "Payment canceled by user." {
		t.Errorf("banner = %q", res.Banner())
	}
}

// A second redirect for the same flow must not block the handler.
func TestListener_DuplicateRedirectIgnored(t *testing.T) {
	l := NewListener(":0")
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/payments?success=true&orderId=1", nil)
		rec := httptest.NewRecorder()
		l.srv.Handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("redirect %d: status = %d", i, rec.Code)
		}
	}
}

// A busy return port must surface from Start, not from a goroutine log
// line after the user is already waiting on a redirect.
func TestListener_StartReportsBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	l := NewListener(ln.Addr().String())
	if err := l.Start(); err == nil {
		l.Shutdown()
		t.Fatal("Start should fail when the return address is taken")
	}
}

func TestListener_StartThenServe(t *testing.T) {
	l := NewListener("127.0.0.1:0")
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer l.Shutdown()
}

func TestListener_WaitTimesOut(t *testing.T) {
	l := NewListener(":0")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := l.Wait(ctx); err == nil {
		t.Error("Wait should fail when nothing redirects back")
	}
}
