// cmd/seeddemo/main.go — seeds a small demo inventory through the ledger
// engine. Usage: go run ./cmd/seeddemo
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"github.com/zamantopups/Mobile-Accessories/internal/dto"
	"github.com/zamantopups/Mobile-Accessories/internal/ledger"
	"github.com/zamantopups/Mobile-Accessories/internal/store"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	st, err := store.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	ctx := context.Background()
	engine := ledger.NewEngine(st)
	if err := engine.Load(ctx); err != nil {
		log.Fatalf("load error: %v", err)
	}

	items := []dto.AddStockRequest{
		{Code: "C1", Group: "Case", Name: "Basic Case", Quantity: 10, Rate: decimal.NewFromFloat(5.00)},
		{Code: "C2", Group: "Case", Name: "Leather Flip Cover", Quantity: 6, Rate: decimal.NewFromFloat(12.50)},
		{Code: "CH1", Group: "Charger", Name: "USB-C Fast Charger 25W", Quantity: 15, Rate: decimal.NewFromFloat(8.75)},
		{Code: "E1", Group: "Audio", Name: "Wired Earphones", Quantity: 20, Rate: decimal.NewFromFloat(3.20)},
		{Code: "G1", Group: "Protection", Name: "Tempered Glass 6.1in", Quantity: 30, Rate: decimal.NewFromFloat(1.90)},
	}

	for _, req := range items {
		line, err := engine.AddStock(ctx, req)
		if err != nil {
			log.Fatalf("seed error for %s: %v", req.Code, err)
		}
		fmt.Printf("seeded %-4s serial=%-3s qty=%-3d amount=%s\n",
			line.Code, line.SerialNo, line.Quantity, line.Amount.StringFixed(2))
	}
}
