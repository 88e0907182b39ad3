// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/bakery-orders/internal/adapter"
	"github.com/MKhiriev/bakery-orders/models"
)

const usage = `
Commands:
  register -username U -email E -password P
  login -username U -password P
  orders list
  orders create -customer C -item I -quantity N [-status S] [-date RFC3339]
  orders get ID
  orders update ID -customer C -item I -quantity N [-status S]
  orders delete ID
  health
  version
`

var (
	errUsage          = errors.New("usage error")
	errUnknownCommand = errors.New("unknown command")
)

type cli struct {
	api adapter.ServerAdapter
	out io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}

	switch args[0] {
	case "register":
		return c.register(ctx, args[1:])
	case "login":
		return c.login(ctx, args[1:])
	case "orders":
		return c.orders(ctx, args[1:])
	case "health":
		if err := c.api.Health(ctx); err != nil {
			return err
		}
		return c.print(models.HealthResponse{Status: "ok"})
	case "version":
		v, err := c.api.Version(ctx)
		if err != nil {
			return err
		}
		return c.print(v)
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}
}

func (c *cli) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest

	fs := newFlagSet("register")
	fs.StringVar(&req.Username, "username", "", "user name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if err := c.api.Register(ctx, req); err != nil {
		return err
	}
	return c.print(models.MessageResponse{Message: "User registered successfully"})
}

func (c *cli) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&req.Username, "username", "", "user name")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	user, err := c.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return c.print(models.LoginResponse{Message: "Login successful", User: user})
}

func (c *cli) orders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: orders needs a subcommand", errUsage)
	}

	switch args[0] {
	case "list":
		orders, err := c.api.ListOrders(ctx)
		if err != nil {
			return err
		}
		return c.print(orders)
	case "create":
		req, _, err := parseOrderRequest("create", args[1:], false)
		if err != nil {
			return err
		}
		order, err := c.api.CreateOrder(ctx, req)
		if err != nil {
			return err
		}
		return c.print(order)
	case "get":
		id, err := parseOrderID(args[1:])
		if err != nil {
			return err
		}
		order, err := c.api.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		return c.print(order)
	case "update":
		req, id, err := parseOrderRequest("update", args[1:], true)
		if err != nil {
			return err
		}
		if err = c.api.UpdateOrder(ctx, id, req); err != nil {
			return err
		}
		return c.print(models.MessageResponse{Message: "Order updated"})
	case "delete":
		id, err := parseOrderID(args[1:])
		if err != nil {
			return err
		}
		if err = c.api.DeleteOrder(ctx, id); err != nil {
			return err
		}
		return c.print(models.MessageResponse{Message: "Order deleted"})
	default:
		return fmt.Errorf("%w: orders %q", errUnknownCommand, args[0])
	}
}

// parseOrderRequest reads order flags. When withID is set the first
// positional argument is the order id.
func parseOrderRequest(name string, args []string, withID bool) (models.OrderRequest, int64, error) {
	var (
		req  models.OrderRequest
		id   int64
		date string
		err  error
	)

	if withID {
		if id, err = parseOrderID(args); err != nil {
			return req, 0, err
		}
		args = args[1:]
	}

	fs := newFlagSet(name)
	fs.StringVar(&req.Customer, "customer", "", "customer name")
	fs.StringVar(&req.Item, "item", "", "ordered item")
	fs.IntVar(&req.Quantity, "quantity", 0, "number of items")
	fs.StringVar(&req.Status, "status", "", "order status")
	fs.StringVar(&date, "date", "", "order date, RFC3339")
	if err = fs.Parse(args); err != nil {
		return req, 0, fmt.Errorf("%w: %w", errUsage, err)
	}

	if date != "" {
		createdAt, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return req, 0, fmt.Errorf("%w: invalid date: %w", errUsage, err)
		}
		req.CreatedAt = &createdAt
	}

	return req, id, nil
}

func parseOrderID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: order id required", errUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid order id %q", errUsage, args[0])
	}
	return id, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
