package marketdata

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// Crawler pulls job postings from a listings site as a supplementary source
// next to CSV exports. It walks listing pages, follows posting links and
// reads the title plus the advertised skill tags from each detail page.
type Crawler struct {
	baseURL     string
	allowedHost string
	logger      *log.Logger
}

func NewCrawler(baseURL string, logger *log.Logger) *Crawler {
	c := &Crawler{baseURL: strings.TrimSpace(baseURL), logger: logger}
	c.allowedHost = hostFromBaseURL(c.baseURL)
	return c
}

func hostFromBaseURL(baseURL string) string {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return ""
	}
	return u.Host
}

func crawlHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

// Postings crawls up to pages listing pages and returns the postings found.
// The listing URL template must contain one %d for the page number. Partial
// results are returned with a nil error when individual pages fail; errors
// are logged instead.
func (c *Crawler) Postings(ctx context.Context, listURLTemplate string, pages int) ([]Posting, error) {
	if c == nil || c.allowedHost == "" {
		return nil, fmt.Errorf("crawler misconfigured: base URL %q", c.baseURL)
	}
	if pages <= 0 {
		pages = 1
	}
	if strings.TrimSpace(listURLTemplate) == "" {
		listURLTemplate = strings.TrimRight(c.baseURL, "/") + "/jobs?page=%d"
	}

	seen := make(map[string]struct{})
	links := make([]string, 0)

	for page := 1; page <= pages; page++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		listURL := fmt.Sprintf(listURLTemplate, page)
		pageLinks, err := c.listingLinks(listURL)
		if err != nil {
			if c.logger != nil {
				c.logger.Printf("Crawl listing failed | page=%d url=%s error=%v", page, listURL, err)
			}
			continue
		}
		for _, link := range pageLinks {
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
			links = append(links, link)
		}
	}

	postings := make([]Posting, 0, len(links))
	for _, link := range links {
		if ctx.Err() != nil {
			return postings, ctx.Err()
		}

		p, err := c.detailPosting(link)
		if err != nil {
			if c.logger != nil {
				c.logger.Printf("Crawl detail failed | url=%s error=%v", link, err)
			}
			continue
		}
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		postings = append(postings, p)
	}

	if c.logger != nil {
		c.logger.Printf("Crawl finished | links=%d postings=%d", len(links), len(postings))
	}
	return postings, nil
}

func (c *Crawler) listingLinks(listURL string) ([]string, error) {
	col := colly.NewCollector(
		colly.AllowedDomains(c.allowedHost),
	)

	_ = col.Limit(&colly.LimitRule{
		DomainGlob:  "*" + c.allowedHost + "*",
		Parallelism: 2,
		Delay:       400 * time.Millisecond,
		RandomDelay: 750 * time.Millisecond,
	})

	links := make([]string, 0)

	col.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		if !strings.Contains(href, "/job/") && !strings.Contains(href, "/jobs/view/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		links = append(links, abs)
	})

	var reqErr error
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	col.OnRequest(func(r *colly.Request) {
		for k, v := range crawlHeaders() {
			r.Headers.Set(k, v)
		}
	})

	if err := col.Visit(listURL); err != nil {
		return nil, err
	}
	col.Wait()

	if reqErr != nil {
		return nil, reqErr
	}
	return links, nil
}

func (c *Crawler) detailPosting(detailURL string) (Posting, error) {
	col := colly.NewCollector(
		colly.AllowedDomains(c.allowedHost),
	)

	var p Posting
	var skills []string

	col.OnHTML("h1", func(e *colly.HTMLElement) {
		if p.Title == "" {
			p.Title = strings.TrimSpace(e.Text)
		}
	})

	// Skill tags show up either as dedicated chips or inside a skills list.
	col.OnHTML("[data-skill], .skill-tag, ul.skills li", func(e *colly.HTMLElement) {
		s := strings.TrimSpace(e.Text)
		if s != "" {
			skills = append(skills, s)
		}
	})

	var reqErr error
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	col.OnRequest(func(r *colly.Request) {
		for k, v := range crawlHeaders() {
			r.Headers.Set(k, v)
		}
	})

	if err := col.Visit(detailURL); err != nil {
		return Posting{}, err
	}
	col.Wait()

	if reqErr != nil {
		return Posting{}, reqErr
	}

	p.SkillsText = strings.Join(skills, ", ")
	return p, nil
}
