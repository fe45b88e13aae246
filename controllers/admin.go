package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"MITSAssistant/models"
	"MITSAssistant/pkg/scraper"
	"MITSAssistant/pkg/seed"
	"MITSAssistant/pkg/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fetcher is the part of the scraper the admin endpoints need.
type Fetcher interface {
	Scrape(ctx context.Context, url string) (*scraper.Result, error)
}

type AdminController struct {
	store   store.Store
	fetcher Fetcher
	log     *zap.Logger
}

func NewAdminController(st store.Store, f Fetcher, log *zap.Logger) *AdminController {
	return &AdminController{store: st, fetcher: f, log: log.Named("admin")}
}

type scrapeRequest struct {
	URL string `json:"url"`
}

func bindURL(c *gin.Context) (string, bool) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return "", false
	}
	if !scraper.ValidURL(req.URL) {
		badRequest(c, "Invalid request: url must be an absolute http(s) URL")
		return "", false
	}
	return strings.TrimSpace(req.URL), true
}

// Scrape fetches a page and stores it, replacing any earlier copy.
func (a *AdminController) Scrape(c *gin.Context) {
	u, ok := bindURL(c)
	if !ok {
		return
	}
	res, err := a.fetcher.Scrape(c.Request.Context(), u)
	if err != nil {
		a.log.Warn("scrape failed", zap.String("url", u), zap.Error(err))
		respondError(c, err)
		return
	}
	saved, err := a.store.UpsertContent(c.Request.Context(), models.ContentInput{URL: u, Title: res.Title, Content: res.Content})
	if err != nil {
		respondError(c, err)
		return
	}
	a.log.Info("page stored", zap.String("url", u), zap.Int("chars", len([]rune(saved.Content))))
	c.JSON(http.StatusOK, saved)
}

// Refresh re-scrapes a page that is already stored. Unknown URLs are
// rejected before anything is fetched.
func (a *AdminController) Refresh(c *gin.Context) {
	u, ok := bindURL(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := a.store.GetContent(ctx, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "URL not found in content library"})
			return
		}
		respondError(c, err)
		return
	}
	res, err := a.fetcher.Scrape(ctx, u)
	if err != nil {
		a.log.Warn("refresh failed", zap.String("url", u), zap.Error(err))
		respondError(c, err)
		return
	}
	updated, err := a.store.UpdateContent(ctx, models.ContentInput{URL: u, Title: res.Title, Content: res.Content})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (a *AdminController) ListContent(c *gin.Context) {
	all, err := a.store.ListContent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if all == nil {
		all = []models.ScrapedContent{}
	}
	c.JSON(http.StatusOK, all)
}

// Seed loads the starter pages into an empty knowledge base.
func (a *AdminController) Seed(c *gin.Context) {
	n, err := seed.Run(c.Request.Context(), a.store, a.log)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": n})
}
