package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/client"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/config"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func main() {
	cfg := config.NewClientConfig()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig) error {
	if cfg.InputPath == "" || cfg.PackageID == "" || cfg.PropertyType == "" {
		return fmt.Errorf("flags -f (input file), -p (package id) and -t (property type) are required")
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var property model.PropertyData
	if err := json.Unmarshal(data, &property); err != nil {
		return fmt.Errorf("failed to parse property data: %w", err)
	}

	req := &model.AnalyzeRequest{
		PackageID:    cfg.PackageID,
		PropertyType: model.PropertyType(cfg.PropertyType),
		Property:     &property,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ClientTimeout)*time.Second)
	defer cancel()

	analysis, err := client.NewClient(cfg).Analyze(ctx, req)
	if err != nil {
		return err
	}

	printSummary(analysis)

	if cfg.OutputPath != "" {
		out, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(cfg.OutputPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("full result written to %s\n", cfg.OutputPath)
	}
	return nil
}

func printSummary(a *model.Analysis) {
	res := a.Result

	if len(res.ValidationErrors) > 0 {
		fmt.Println("validation failed:")
		for field, reason := range res.ValidationErrors {
			fmt.Printf("  %s: %s\n", field, reason)
		}
		return
	}
	if res.Error != "" {
		fmt.Printf("analysis failed: %s\n", res.Error)
		return
	}

	fmt.Printf("analysis %s (%s, %s)\n", a.ID, a.PackageID, a.PropertyType)

	m := res.Metrics
	printMetric := func(name string, v *float64, unit string) {
		if v != nil {
			fmt.Printf("  %-22s %.2f%s\n", name, *v, unit)
		}
	}
	printMetric("cap rate", m.CapRate, "%")
	printMetric("cash-on-cash", m.CashOnCash, "%")
	printMetric("DSCR", m.DSCR, "")
	printMetric("LTV", m.LTV, "%")
	printMetric("GRM", m.GRM, "")
	printMetric("debt yield", m.DebtYield, "%")
	printMetric("loan constant", m.LoanConstant, "%")
	printMetric("price per SF", m.PricePerSF, "")
	printMetric("price per unit", m.PricePerUnit, "")
	printMetric("expense ratio", m.OperatingExpenseRatio, "%")
	printMetric("break-even occupancy", m.BreakEvenOccupancy, "%")
	printMetric("effective gross income", m.EffectiveGrossIncome, "")
	printMetric("IRR", m.IRR, "%")
	printMetric("equity multiple", m.EquityMultiple, "x")
	printMetric("payback period", m.PaybackPeriod, " years")

	for id, reason := range res.Omitted {
		fmt.Printf("  %s unavailable: %s\n", id, reason)
	}
	for _, warning := range res.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
	for _, e := range res.Errors {
		fmt.Printf("  error: %s\n", e)
	}
}
