package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthGateway(registered *[]RegisterRequest) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/auth/login", func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "bad request")
			return
		}
		if req.Email != "alice@example.com" || req.Password != "s3cret" {
			c.String(http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		// The auth service answers with the raw token as text, padded the
		// way a real body may arrive.
		c.String(http.StatusOK, "  header.payload.signature\n")
	})
	r.POST("/auth/auth/register", func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "bad request")
			return
		}
		if req.Email == "taken@example.com" {
			c.String(http.StatusBadRequest, "Email already registered!")
			return
		}
		*registered = append(*registered, req)
		c.String(http.StatusCreated, "User registered successfully!")
	})
	return r
}

func TestLogin_ReturnsTrimmedTokenText(t *testing.T) {
	var registered []RegisterRequest
	client := newTestClient(t, newAuthGateway(&registered))

	token, err := client.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "header.payload.signature" {
		t.Errorf("token = %q", token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	var registered []RegisterRequest
	client := newTestClient(t, newAuthGateway(&registered))

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	if err == nil || !strings.Contains(err.Error(), "invalid email or password") {
		t.Errorf("err = %v", err)
	}
}

func TestRegister_DefaultsRoleToUser(t *testing.T) {
	var registered []RegisterRequest
	client := newTestClient(t, newAuthGateway(&registered))

	err := client.Register(context.Background(), RegisterRequest{
		Name: "Bob", Email: "bob@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(registered) != 1 || registered[0].Role != "USER" {
		t.Errorf("registered = %+v, want role USER", registered)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	var registered []RegisterRequest
	client := newTestClient(t, newAuthGateway(&registered))

	err := client.Register(context.Background(), RegisterRequest{
		Name: "Eve", Email: "taken@example.com", Password: "pw", Role: "ADMIN",
	})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("err = %v", err)
	}
}
