package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	tsetmc "github.com/pmoradi/tsetmc-data"
	"github.com/pmoradi/tsetmc-data/api"
	"github.com/pmoradi/tsetmc-data/history"
	"github.com/pmoradi/tsetmc-data/internal/config"
	"github.com/pmoradi/tsetmc-data/internal/version"
	"github.com/pmoradi/tsetmc-data/model"
)

const dateFormat = "2006-01-02"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	symbol := flag.String("symbol", "", "instrument symbol to look up")
	inscode := flag.Int64("inscode", 0, "instrument code (16 or 17 digits)")
	days := flag.Int("days", 0, "day-count window, 0 = all available history")
	start := flag.String("start", "", "start date (YYYY-MM-DD, inclusive)")
	end := flag.String("end", "", "end date (YYYY-MM-DD, inclusive)")
	format := flag.String("format", "", "output format: table, csv or json")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging; stdout is reserved for the rendered table
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithUserAgent(cfg.API.UserAgent),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxAttempts, cfg.API.RetryDelay),
		api.WithLogger(logger),
	)

	table, err := tsetmc.StockHistory(ctx, client, tsetmc.Request{
		Symbol:    *symbol,
		InsCode:   model.InsCode(*inscode),
		Days:      *days,
		StartDate: *start,
		EndDate:   *end,
	})
	if err != nil {
		if errors.Is(err, tsetmc.ErrNoIdentifier) {
			logger.Error("no valid parameters provided for fetching stock data")
			flag.Usage()
			os.Exit(2)
		}
		logger.Error("failed to fetch history", "error", err)
		os.Exit(1)
	}

	logger.Info("history fetched", "rows", table.Len())

	if err := render(os.Stdout, table, cfg.Output.Format); err != nil {
		logger.Error("failed to render output", "error", err)
		os.Exit(1)
	}
}

func render(w io.Writer, table *history.Table, format string) error {
	switch format {
	case "csv":
		return renderCSV(w, table)
	case "json":
		return renderJSON(w, table)
	default:
		return renderTable(w, table)
	}
}

func renderTable(w io.Writer, table *history.Table) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDATE_SHAMSI\tCLOSE\tVALUE_OF_TRADE")
	for _, row := range table.Rows() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Date.Format(dateFormat),
			row.DateShamsi.Format("yyyy-MM-dd"),
			row.Close.String(),
			row.ValueOfTrade.String(),
		)
	}
	return tw.Flush()
}

func renderCSV(w io.Writer, table *history.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "date_shamsi", "close", "value_of_trade"}); err != nil {
		return err
	}
	for _, row := range table.Rows() {
		record := []string{
			row.Date.Format(dateFormat),
			row.DateShamsi.Format("yyyy-MM-dd"),
			row.Close.String(),
			row.ValueOfTrade.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonRow carries the stable public field names.
type jsonRow struct {
	Date         string          `json:"date"`
	DateShamsi   string          `json:"date_shamsi"`
	Close        decimal.Decimal `json:"close"`
	ValueOfTrade decimal.Decimal `json:"value_of_trade"`
}

func renderJSON(w io.Writer, table *history.Table) error {
	rows := make([]jsonRow, 0, table.Len())
	for _, row := range table.Rows() {
		rows = append(rows, jsonRow{
			Date:         row.Date.Format(dateFormat),
			DateShamsi:   row.DateShamsi.Format("yyyy-MM-dd"),
			Close:        row.Close,
			ValueOfTrade: row.ValueOfTrade,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
