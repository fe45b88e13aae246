package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const (
	// MaxContentChars caps the stored text of one page.
	MaxContentChars = 10000
	// MinContentChars is the shortest extraction accepted as a real page.
	MinContentChars = 50
	// DefaultTitle is used when a page has neither <title> nor <h1>.
	DefaultTitle = "MITS Page"

	minBlockChars = 10
	maxBodyBytes  = 2 << 20
	userAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var whitespace = regexp.MustCompile(`\s+`)

// boilerplate elements are dropped with their whole subtree.
var boilerplate = map[string]bool{
	"script": true, "style": true, "nav": true, "header": true,
	"footer": true, "iframe": true, "noscript": true,
}

// textBlocks are the elements whose text makes up the page content.
var textBlocks = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "td": true, "th": true, "article": true, "section": true,
}

type Result struct {
	URL     string
	Title   string
	Content string
}

type Scraper struct {
	client *http.Client
	log    *zap.Logger
}

// New returns a scraper whose fetches give up after timeout.
func New(timeout time.Duration, log *zap.Logger) *Scraper {
	return NewWithClient(&http.Client{Timeout: timeout}, log)
}

func NewWithClient(client *http.Client, log *zap.Logger) *Scraper {
	return &Scraper{client: client, log: log.Named("scraper")}
}

// Scrape fetches url and extracts its readable text.
func (s *Scraper) Scrape(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	s.log.Debug("fetching", zap.String("url", url))
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("read error: %w", err)}
	}

	title, content, err := Extract(string(body))
	if err != nil {
		return nil, &ContentError{URL: url, Err: err}
	}
	if n := len([]rune(content)); n < MinContentChars {
		return nil, &ContentError{URL: url, Length: n}
	}

	s.log.Info("scraped", zap.String("url", url), zap.String("title", title), zap.Int("chars", len([]rune(content))))
	return &Result{URL: url, Title: title, Content: truncate(content, MaxContentChars)}, nil
}

// Extract returns the page title and whitespace-normalized text content.
func Extract(page string) (title, content string, err error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", "", fmt.Errorf("parse html: %w", err)
	}
	stripBoilerplate(doc)

	title = strings.TrimSpace(textOf(find(doc, "title")))
	if title == "" {
		title = strings.TrimSpace(textOf(find(doc, "h1")))
	}
	if title == "" {
		title = DefaultTitle
	}

	var blocks []string
	walk(doc, func(n *html.Node) {
		if !isTextBlock(n) {
			return
		}
		if t := strings.TrimSpace(textOf(n)); utf8.RuneCountInString(t) > minBlockChars {
			blocks = append(blocks, t)
		}
	})
	content = strings.TrimSpace(whitespace.ReplaceAllString(strings.Join(blocks, "\n"), " "))
	return title, content, nil
}

func isTextBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if textBlocks[n.Data] {
		return true
	}
	return n.Data == "div" && hasClass(n, "content")
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func stripBoilerplate(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && boilerplate[c.Data] {
			n.RemoveChild(c)
		} else {
			stripBoilerplate(c)
		}
		c = next
	}
}

// walk visits n and its descendants in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func find(n *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) {
		if found == nil && c.Type == html.ElementNode && c.Data == tag {
			found = c
		}
	})
	return found
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
