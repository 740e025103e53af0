// Command ratecheck probes every configured exchange rate source and
// reports what each one returns, then the rate the storefront would
// actually use. Handy when a source changes its payload shape.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"

	infracache "github.com/brioches/storefront/infra/cache"
	"github.com/brioches/storefront/pkg/config"
	"github.com/brioches/storefront/pkg/domain"
	"github.com/brioches/storefront/pkg/money"
	"github.com/brioches/storefront/pkg/rates"
)

const maxBody = 1 << 20

func main() {
	if err := run(); err != nil {
		color.Red("ratecheck: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := rates.NewAdapter(cfg.Rates, logger)
	client := &http.Client{Timeout: cfg.Rates.HTTPTimeout}

	bold := color.New(color.Bold)
	bold.Printf("Probing %d rate sources (USD→VES)\n\n", len(cfg.Rates.Endpoints))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for i, endpoint := range cfg.Rates.Endpoints {
		fmt.Printf("%d. %s\n", i+1, endpoint)
		rate, err := probe(ctx, client, adapter, endpoint)
		switch {
		case err != nil:
			color.Red("   FAIL  %v", err)
		case rate == nil:
			color.Yellow("   SKIP  payload did not yield a plausible rate")
		default:
			color.Green("   OK    %s  (as of %s)",
				money.FormatVES(rate.Rate), rate.Date.Format("2006-01-02"))
		}
	}

	slot := infracache.NewSlot(cfg.Rates.CacheTTL, nil, cfg.Rates.CacheKey, logger)
	effective := rates.New(cfg.Rates, slot, logger).GetRate(ctx)

	fmt.Println()
	bold.Print("Effective rate: ")
	line := fmt.Sprintf("%s  source=%s endpoint=%s",
		money.FormatVES(effective.Rate), effective.Source, effective.Endpoint)
	if effective.Source == domain.RateSourceFallback {
		color.Yellow("%s", line)
	} else {
		color.Green("%s", line)
	}
	return nil
}

func probe(
	ctx context.Context,
	client *http.Client,
	adapter *rates.Adapter,
	endpoint string,
) (*domain.ExchangeRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}
	return adapter.Normalize(payload, endpoint), nil
}
