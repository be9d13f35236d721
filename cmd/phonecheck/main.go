// phonecheck runs the lookup pipeline over a batch of numbers without going
// through HTTP. Numbers come from arguments or, with no arguments, one per
// line on stdin. Useful for eyeballing resolution changes against a corpus.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"phone_info_backend/internal/phoneinfo/service"
	"phone_info_backend/platform/config"
	"phone_info_backend/platform/logger"
	"phone_info_backend/platform/phone"

	"golang.org/x/sync/errgroup"
)

const lookupConcurrency = 8

type outcome struct {
	number string
	result *service.Result
	err    error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	svc := service.New(phone.NewProvider(), log)

	numbers := os.Args[1:]
	if len(numbers) == 0 {
		numbers = readLines(os.Stdin)
	}
	if len(numbers) == 0 {
		fmt.Fprintln(os.Stderr, "usage: phonecheck <number> [number...]  (or numbers on stdin)")
		os.Exit(2)
	}

	outcomes := make([]outcome, len(numbers))

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(lookupConcurrency)
	for i, number := range numbers {
		i, number := i, number
		group.Go(func() error {
			result, err := svc.Lookup(ctx, number, cfg.DefaultRegion)
			outcomes[i] = outcome{number: number, result: result, err: err}
			return nil
		})
	}
	// Lookups never return a group error; failures are data in outcomes.
	_ = group.Wait()

	okCount, validCount, errCount := 0, 0, 0
	for _, o := range outcomes {
		if o.err != nil {
			errCount++
			fmt.Printf("%-24s ERROR  %s\n", o.number, o.err.Error())
			continue
		}
		okCount++
		validMark := "invalid"
		if o.result.IsValid {
			validCount++
			validMark = "valid"
		}
		fmt.Printf("%-24s +%-4d %-8s %-28s %-24s %s\n",
			o.number, o.result.CallingCode, validMark,
			o.result.Country, o.result.Region, o.result.FormattedNumber)
	}

	fmt.Printf("\n%d resolved (%d valid), %d errors\n", okCount, validCount, errCount)
}

func readLines(f *os.File) []string {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines
}
