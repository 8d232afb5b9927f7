package main

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NotMedic/PopUpVideo/internal/classify"
	"github.com/NotMedic/PopUpVideo/internal/generator"
	"github.com/NotMedic/PopUpVideo/internal/logging"
	"github.com/NotMedic/PopUpVideo/internal/metrics"
	"github.com/NotMedic/PopUpVideo/internal/middleware"
	"github.com/NotMedic/PopUpVideo/internal/prompt"
	"github.com/NotMedic/PopUpVideo/internal/store"
	"github.com/NotMedic/PopUpVideo/pkg/models"
)

const serviceName = "PopUpVideo Facts Generator"

// videoIDPattern matches YouTube video ids (and is a safe superset for
// file naming in the facts store).
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// TranscriptFetcher supplies timed caption lines for a video, or an error
// when none exist. Absence is never fatal to a request.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]models.TranscriptEntry, error)
}

// API wires the facts pipeline per request: cache check, classify, parse,
// transcript fetch, prompt build, generate, persist.
type API struct {
	store       *store.Store
	generator   *generator.Generator
	transcripts TranscriptFetcher
	log         *logging.Logger
}

func setupRouter(api *API) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	router.GET("/health", api.health)
	router.POST("/generate-facts", api.generateFacts)
	router.GET("/list-facts", api.listFacts)

	return router
}

// Health check endpoint
func (api *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}

type generateFactsRequest struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// Generate facts endpoint
func (api *API) generateFacts(c *gin.Context) {
	var req generateFactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.VideoID == "" || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing video_id or title"})
		return
	}
	if !videoIDPattern.MatchString(req.VideoID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video_id"})
		return
	}

	log := api.log.WithVideoID(req.VideoID)

	// Cache hit ends the request: no transcript fetch, no generation.
	cached, err := api.store.Get(req.VideoID)
	if err == nil {
		metrics.RecordCacheAccess(true)
		metrics.RecordFactsRequest("cache", 0)
		log.Debug("Serving facts from cache")
		c.JSON(http.StatusOK, gin.H{
			"source": "cache",
			"data":   cached,
		})
		return
	}
	if err != store.ErrNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.RecordCacheAccess(false)

	// Transcript fetch is best effort; a video with no captions still gets
	// facts, just without lyric/transcript context.
	transcriptEntries, err := api.transcripts.Fetch(c.Request.Context(), req.VideoID)
	if err != nil {
		metrics.RecordTranscriptFetch("unavailable")
		log.WithError(err).Debug("No transcript available")
	} else {
		metrics.RecordTranscriptFetch("ok")
		log.Debugf("Fetched transcript with %d entries", len(transcriptEntries))
	}

	isMusic, reason := classify.Classify(req.Title)
	parsed := classify.Parse(req.Title)
	log.Infof("Classified title: music=%v (%s), parsed artist=%q song=%q", isMusic, reason, parsed.Artist, parsed.Song)

	// Classification only selects the prompt style. Non-music and
	// unparseable titles are still generated for, down the general path.
	contentType := models.ContentTypeGeneral
	var promptText string
	if isMusic && parsed.MusicFormat {
		contentType = models.ContentTypeMusic
		promptText = prompt.Music(prompt.MusicInput{
			Artist:      parsed.Artist,
			Song:        parsed.Song,
			FullTitle:   parsed.FullTitle,
			VideoID:     req.VideoID,
			Duration:    req.Duration,
			Description: req.Description,
			Lyrics:      transcriptEntries,
		})
	} else {
		promptText = prompt.General(prompt.GeneralInput{
			Title:       parsed.FullTitle,
			VideoID:     req.VideoID,
			Duration:    req.Duration,
			Description: req.Description,
			Transcript:  transcriptEntries,
		})
	}

	facts, err := api.generator.Generate(c.Request.Context(), promptText, parsed)
	if err != nil {
		// Generation failure degrades to a fixed two-fact payload; the
		// request itself still succeeds.
		log.WithError(err).Error("Fact generation failed, using fallback facts")
		facts = generator.FallbackFacts()
	}

	meta := &models.VideoMetadata{
		VideoID:     req.VideoID,
		Title:       parsed.FullTitle,
		ContentType: contentType,
		Artist:      parsed.Artist,
		Song:        parsed.Song,
		GeneratedAt: time.Now().UTC(),
		Prompt:      promptText,
		Facts:       facts,
	}

	if err := api.store.Put(meta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.RecordFactsRequest("generated", len(facts))
	log.Infof("Generated and cached %d facts", len(facts))

	c.JSON(http.StatusOK, gin.H{
		"source": "generated",
		"data":   meta,
	})
}

// List cached facts endpoint
func (api *API) listFacts(c *gin.Context) {
	ids, err := api.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(ids),
		"video_ids": ids,
	})
}
