package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRestaurantGateway(rows map[int64]*Restaurant, nextID *int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	guard := func(c *gin.Context) {
		if !bearerOK(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		}
	}

	r.GET("/restaurant/restaurants", guard, func(c *gin.Context) {
		out := make([]*Restaurant, 0, len(rows))
		for _, row := range rows {
			out = append(out, row)
		}
		c.JSON(http.StatusOK, out)
	})
	r.POST("/restaurant/restaurants", guard, func(c *gin.Context) {
		var req Restaurant
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		*nextID++
		req.ID = *nextID
		rows[req.ID] = &req
		c.JSON(http.StatusCreated, req)
	})
	r.PUT("/restaurant/restaurants/:id", guard, func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		row, ok := rows[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		var patch RestaurantPatch
		_ = c.ShouldBindJSON(&patch)
		if patch.Name != nil {
			row.Name = *patch.Name
		}
		if patch.Location != nil {
			row.Location = *patch.Location
		}
		if patch.Cuisine != nil {
			row.Cuisine = *patch.Cuisine
		}
		if patch.Status != nil {
			row.Status = *patch.Status
		}
		c.JSON(http.StatusOK, row)
	})
	r.DELETE("/restaurant/restaurants/:id", guard, func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if _, ok := rows[id]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		delete(rows, id)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestCreateRestaurant_ThenList(t *testing.T) {
	rows := map[int64]*Restaurant{}
	var nextID int64
	client := newTestClient(t, newRestaurantGateway(rows, &nextID))

	created, err := client.CreateRestaurant(context.Background(), Restaurant{
		Name: "Tandoori Nights", Location: "Indiranagar", Cuisine: "North Indian",
	})
	if err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}
	// Status was omitted; the client defaults new restaurants to ACTIVE.
	if created.Status != RestaurantActive {
		t.Errorf("status = %q, want ACTIVE", created.Status)
	}

	restaurants, err := client.ListRestaurants(context.Background())
	if err != nil {
		t.Fatalf("ListRestaurants: %v", err)
	}
	if len(restaurants) != 1 || restaurants[0].Name != "Tandoori Nights" || restaurants[0].ID != created.ID {
		t.Errorf("list = %+v", restaurants)
	}
}

func TestCreateRestaurant_MissingName(t *testing.T) {
	rows := map[int64]*Restaurant{}
	var nextID int64
	client := newTestClient(t, newRestaurantGateway(rows, &nextID))

	_, err := client.CreateRestaurant(context.Background(), Restaurant{Location: "MG Road"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "name" {
		t.Errorf("field = %q, want name", verr.Field)
	}
	if len(rows) != 0 {
		t.Error("invalid restaurant must not reach the wire")
	}
}

func TestUpdateRestaurant_PatchAndNotFound(t *testing.T) {
	rows := map[int64]*Restaurant{
		1: {ID: 1, Name: "Dosa Corner", Location: "Jayanagar", Cuisine: "South Indian", Status: RestaurantActive},
	}
	var nextID int64 = 1
	client := newTestClient(t, newRestaurantGateway(rows, &nextID))

	status := RestaurantClosed
	updated, err := client.UpdateRestaurant(context.Background(), 1, RestaurantPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateRestaurant: %v", err)
	}
	if updated.Status != RestaurantClosed || updated.Name != "Dosa Corner" {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := client.UpdateRestaurant(context.Background(), 99, RestaurantPatch{Status: &status}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRestaurant_RepeatYieldsNotFound(t *testing.T) {
	rows := map[int64]*Restaurant{
		1: {ID: 1, Name: "Dosa Corner", Status: RestaurantActive},
	}
	var nextID int64 = 1
	client := newTestClient(t, newRestaurantGateway(rows, &nextID))

	if err := client.DeleteRestaurant(context.Background(), 1); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := client.DeleteRestaurant(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}
