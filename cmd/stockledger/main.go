// cmd/stockledger/main.go — operator CLI for the Mobile Accessories stock
// and sales ledger. One subcommand per ledger operation:
//
//	stockledger add    -code C1 -name "Basic Case" -group Case -qty 10 -rate 5.00
//	stockledger sell   -id <inventory-id> -qty 4
//	stockledger stock  [-pdf]
//	stockledger sales  [-from 2026-08-01 -to 2026-08-25] [-pdf]
//	stockledger export [-out <file>]
//	stockledger import -file <file>
//	stockledger clear-sales -yes
//	stockledger clear-inventory -yes
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/zamantopups/Mobile-Accessories/internal/backup"
	"github.com/zamantopups/Mobile-Accessories/internal/config"
	"github.com/zamantopups/Mobile-Accessories/internal/dto"
	"github.com/zamantopups/Mobile-Accessories/internal/infra"
	"github.com/zamantopups/Mobile-Accessories/internal/ledger"
	"github.com/zamantopups/Mobile-Accessories/internal/render"
	"github.com/zamantopups/Mobile-Accessories/internal/report"
	"github.com/zamantopups/Mobile-Accessories/internal/store"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	st, err := newStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	ctx := context.Background()
	engine := ledger.NewEngine(st)
	if err := engine.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load ledger")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "add":
		cmdAdd(ctx, engine, os.Args[2:])
	case "sell":
		cmdSell(ctx, engine, os.Args[2:])
	case "stock":
		cmdStock(engine, cfg, os.Args[2:])
	case "sales":
		cmdSales(engine, cfg, os.Args[2:])
	case "export":
		cmdExport(engine, os.Args[2:])
	case "import":
		cmdImport(ctx, engine, os.Args[2:])
	case "clear-sales":
		cmdClearSales(ctx, engine, os.Args[2:])
	case "clear-inventory":
		cmdClearInventory(ctx, engine, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(rdb), nil
	default:
		return store.NewFileStore(cfg.DataDir)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stockledger <add|sell|stock|sales|export|import|clear-sales|clear-inventory> [flags]")
}

// ── Commands ─────────────────────────────────────────────────────────────────

func cmdAdd(ctx context.Context, engine *ledger.Engine, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	code := fs.String("code", "", "item code (required)")
	group := fs.String("group", "", "item group")
	name := fs.String("name", "", "item name (required)")
	qty := fs.Int("qty", 0, "quantity (>= 1)")
	rate := fs.String("rate", "", "unit cost (> 0)")
	fs.Parse(args)

	r, err := decimal.NewFromString(*rate)
	if err != nil {
		log.Fatal().Str("rate", *rate).Msg("rate must be a decimal number")
	}

	line, err := engine.AddStock(ctx, dto.AddStockRequest{
		Code:     *code,
		Group:    *group,
		Name:     *name,
		Quantity: *qty,
		Rate:     r,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("add stock failed")
	}
	fmt.Printf("added line %s  serial=%s  qty=%d  amount=%s\n",
		line.ID, line.SerialNo, line.Quantity, line.Amount.StringFixed(2))
}

func cmdSell(ctx context.Context, engine *ledger.Engine, args []string) {
	fs := flag.NewFlagSet("sell", flag.ExitOnError)
	id := fs.String("id", "", "inventory line id (required)")
	qty := fs.Int("qty", 0, "quantity to sell (>= 1)")
	fs.Parse(args)

	rec, err := engine.RecordSale(ctx, dto.RecordSaleRequest{InventoryID: *id, Quantity: *qty})
	if err != nil {
		log.Fatal().Err(err).Msg("record sale failed")
	}
	fmt.Printf("sold %d x %s  amount=%s\n", rec.QuantitySold, rec.Name, rec.AmountSold.StringFixed(2))
}

func cmdStock(engine *ledger.Engine, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("stock", flag.ExitOnError)
	pdf := fs.Bool("pdf", false, "also render the report to PDF")
	fs.Parse(args)

	rep := report.BuildStockReport(engine.Inventory())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "S.NO\tCODE\tNAME\tGROUP\tQTY\tRATE\tAMOUNT\tID")
	for _, line := range rep.Lines {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			line.SerialNo, line.Code, line.Name, line.Group,
			line.Quantity, line.Rate.StringFixed(2), line.Amount.StringFixed(2), line.ID)
	}
	w.Flush()
	fmt.Printf("unique items: %d   total cost: %s\n", rep.UniqueItemCount, rep.TotalCost.StringFixed(2))

	if *pdf {
		path, err := render.StockReportPDF(rep, cfg.ReportStoragePath)
		if err != nil {
			log.Fatal().Err(err).Msg("render stock report failed")
		}
		fmt.Println("report written to", path)
	}
}

func cmdSales(engine *ledger.Engine, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("sales", flag.ExitOnError)
	fromStr := fs.String("from", "", "start date YYYY-MM-DD (inclusive)")
	toStr := fs.String("to", "", "end date YYYY-MM-DD (inclusive)")
	pdf := fs.Bool("pdf", false, "also render the report to PDF")
	fs.Parse(args)

	var from, to *time.Time
	if *fromStr != "" && *toStr != "" {
		f := parseDay(*fromStr)
		t := parseDay(*toStr)
		from, to = &f, &t
	}

	rep := report.BuildSalesReport(engine.Sales(), from, to)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tS.NO\tCODE\tNAME\tQTY\tRATE\tAMOUNT")
	for _, rec := range rep.Records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			rec.SaleDate.Local().Format("2006-01-02 15:04"), rec.SerialNo, rec.Code, rec.Name,
			rec.QuantitySold, rec.Rate.StringFixed(2), rec.AmountSold.StringFixed(2))
	}
	w.Flush()
	fmt.Printf("records: %d   total sold: %s\n", rep.RecordCount, rep.TotalSold.StringFixed(2))

	if *pdf {
		path, err := render.SalesReportPDF(rep, cfg.ReportStoragePath)
		if err != nil {
			log.Fatal().Err(err).Msg("render sales report failed")
		}
		fmt.Println("report written to", path)
	}
}

func parseDay(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		log.Fatal().Str("date", s).Msg("dates must be YYYY-MM-DD")
	}
	return t
}

func cmdExport(engine *ledger.Engine, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "output file (default: ./inventory_backup_<date>.json)")
	fs.Parse(args)

	snap := backup.Export(engine.Inventory(), engine.Sales())
	data, err := backup.EncodeJSON(snap)
	if err != nil {
		log.Fatal().Err(err).Msg("encode backup failed")
	}

	path := *out
	if path == "" {
		path = backup.ExportFileName(time.Now())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write backup failed")
	}
	fmt.Println("backup written to", path)
}

func cmdImport(ctx context.Context, engine *ledger.Engine, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "backup file to restore (required)")
	fs.Parse(args)

	// The full file is read before anything is applied — no partial restore.
	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("read backup failed")
	}
	inventory, sales, err := backup.Import(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("import rejected")
	}
	engine.LoadSnapshot(ctx, inventory, sales)
	fmt.Printf("restored %d inventory lines and %d sales\n", len(inventory), len(sales))
}

func cmdClearSales(ctx context.Context, engine *ledger.Engine, args []string) {
	fs := flag.NewFlagSet("clear-sales", flag.ExitOnError)
	yes := fs.Bool("yes", false, "confirm deletion of the entire sales history")
	fs.Parse(args)

	if !*yes {
		log.Fatal().Msg("refusing to delete sales history without -yes")
	}
	engine.DeleteAllSales(ctx)
	fmt.Println("sales history cleared")
}

func cmdClearInventory(ctx context.Context, engine *ledger.Engine, args []string) {
	fs := flag.NewFlagSet("clear-inventory", flag.ExitOnError)
	yes := fs.Bool("yes", false, "confirm deletion of the entire inventory")
	fs.Parse(args)

	if !*yes {
		log.Fatal().Msg("refusing to delete inventory without -yes")
	}
	engine.DeleteAllInventory(ctx)
	fmt.Println("inventory cleared (sales history untouched)")
}
