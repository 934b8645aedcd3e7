package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"retail-checkout/internal/catalog"
	"retail-checkout/internal/config"
	"retail-checkout/internal/domain"
	checkoutsvc "retail-checkout/internal/service/checkout"
	shippingsvc "retail-checkout/internal/service/shipping"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[checkout] ", log.LstdFlags|log.LUTC)

	today := time.Now()

	var products []*domain.Product
	if cfg.CatalogPath != "" {
		loaded, err := catalog.NewLoader(logger).LoadFile(cfg.CatalogPath)
		if err != nil {
			logger.Fatalf("load catalog: %v", err)
		}
		products = loaded
	} else {
		products = catalog.Demo(today)
	}

	customer := domain.NewCustomer(cfg.CustomerName, cfg.CustomerBalance)
	cart := domain.NewCart(os.Stdout)

	if cfg.CatalogPath != "" {
		// Custom catalogs have no known names; take one of each.
		for _, p := range products {
			cart.Add(p, 1)
		}
	} else {
		byName := make(map[string]*domain.Product, len(products))
		for _, p := range products {
			byName[p.Name] = p
		}
		cart.Add(byName["Cheese"], 2)
		cart.Add(byName["Biscuits"], 1)
		cart.Add(byName["Scratch Card"], 1)
	}

	shipping := shippingsvc.New(os.Stdout)
	svc := checkoutsvc.New(shipping, cfg.ShippingRatePerKg, os.Stdout)

	if err := svc.Process(customer, cart, today); err != nil {
		fmt.Println("ERROR: " + err.Error())
	}
}
