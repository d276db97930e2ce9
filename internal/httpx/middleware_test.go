package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger("test"))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRequestID_MintedWhenAbsent(t *testing.T) {
	r := newRIDRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rid := rec.Header().Get(HeaderRequestID); rid == "" {
		t.Error("response is missing a request id")
	}
}

func TestRequestID_InboundHeaderEchoed(t *testing.T) {
	r := newRIDRouter()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "rid-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rid := rec.Header().Get(HeaderRequestID); rid != "rid-123" {
		t.Errorf("rid = %q, want the inbound id echoed back", rid)
	}
}
