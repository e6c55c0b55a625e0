package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"career-os/internal/marketdata"
)

func main() {
	input := flag.String("input", "", "path to a job postings CSV export")
	output := flag.String("o", "data/market_skills.json", "path to the output JSON file")
	crawlBase := flag.String("crawl", "", "optional listings site base URL to crawl as an extra source")
	crawlTemplate := flag.String("crawl_url_template", "", "listing page URL template with one %d page placeholder")
	pages := flag.Int("pages", 2, "number of listing pages to crawl")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	if strings.TrimSpace(*input) == "" && strings.TrimSpace(*crawlBase) == "" {
		logger.Fatal("provide -input and/or -crawl")
	}

	b := marketdata.NewBuilder()

	if strings.TrimSpace(*input) != "" {
		f, err := os.Open(*input)
		if err != nil {
			logger.Fatalf("open input: %v", err)
		}
		rows, err := marketdata.ReadCSV(f, b)
		_ = f.Close()
		if err != nil {
			logger.Fatalf("read csv: %v", err)
		}
		logger.Printf("CSV processed | path=%s rows=%d", *input, rows)
	}

	if strings.TrimSpace(*crawlBase) != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		crawler := marketdata.NewCrawler(*crawlBase, logger)
		postings, err := crawler.Postings(ctx, *crawlTemplate, *pages)
		if err != nil {
			logger.Fatalf("crawl failed: %v", err)
		}
		for _, p := range postings {
			b.AddPosting(p)
		}
		logger.Printf("Crawl processed | base=%s postings=%d", *crawlBase, len(postings))
	}

	ds := b.Dataset()
	if len(ds.Profiles) == 0 {
		logger.Fatal("no tracked roles found in the input")
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatalf("create output dir: %v", err)
		}
	}

	out, err := os.Create(*output)
	if err != nil {
		logger.Fatalf("create output: %v", err)
	}
	defer out.Close()

	if err := ds.WriteJSON(out); err != nil {
		logger.Fatalf("write output: %v", err)
	}

	for _, p := range ds.Profiles {
		logger.Printf("Role profile | role=%q postings=%d skills=%d", p.Role, p.Postings, len(p.Skills))
	}
	logger.Printf("Market table written | path=%s roles=%d", *output, len(ds.Profiles))
}
