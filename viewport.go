package main

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Zachkp/scroll-portfolio/internal/metrics"
	"github.com/Zachkp/scroll-portfolio/internal/section"
	"github.com/Zachkp/scroll-portfolio/internal/theme"
	"github.com/Zachkp/scroll-portfolio/internal/tracker"
)

const (
	visitorCookie = "visitor_id"
	writeWait     = 5 * time.Second
)

// viewportResponse is what the page gets back for every sample.
type viewportResponse struct {
	tracker.Update
	Parallax    map[string]float64 `json:"parallax"`
	Theme       theme.Record       `json:"theme"`
	ShowPattern bool               `json:"showPattern"`
}

func newViewportResponse(u tracker.Update) viewportResponse {
	return viewportResponse{
		Update:      u,
		Parallax:    tracker.Layers(u.ParallaxBasis, tracker.DefaultLayers),
		Theme:       theme.For(u.Section),
		ShowPattern: theme.ShowsPattern(u.Section),
	}
}

// visitors keeps one tracker per visitor. Least recently seen visitors are
// dropped once the cache is full; they start over from the default section.
type visitors struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, *tracker.Tracker]
	initial section.Section
	metrics *metrics.Metrics
}

func newVisitors(size int, initial section.Section, m *metrics.Metrics) (*visitors, error) {
	cache, err := lru.New[string, *tracker.Tracker](size)
	if err != nil {
		return nil, err
	}
	return &visitors{cache: cache, initial: initial, metrics: m}, nil
}

// get returns the tracker for id, creating it on first sight.
func (v *visitors) get(id string) *tracker.Tracker {
	v.mu.Lock()
	defer v.mu.Unlock()

	if tr, ok := v.cache.Get(id); ok {
		return tr
	}

	tr := tracker.New(tracker.WithInitial(v.initial))
	tr.Subscribe(func(u tracker.Update) {
		log.Printf("Section changed to: %s", u.Section)
	})
	if v.metrics != nil {
		tr.Subscribe(v.metrics.Observe)
	}
	v.cache.Add(id, tr)
	if v.metrics != nil {
		v.metrics.SetVisitors(v.cache.Len())
	}
	return tr
}

func visitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.SetCookie(visitorCookie, id, 3600*24, "/", "", false, true)
	return id
}

func (a *app) trackerFor(c *gin.Context) *tracker.Tracker {
	return a.visitors.get(visitorID(c))
}

// recorder returns the analytics sink for changes caused by this request.
// DNT and the client address always come from the request that produced the
// change, not from whichever request first created the tracker.
func (a *app) recorder(c *gin.Context) func(tracker.Update) {
	if a.analytics == nil || !a.cfg.TrackVisitors || doNotTrack(c) {
		return func(tracker.Update) {}
	}
	hashedIP := a.analytics.hashIP(c.ClientIP())
	return func(u tracker.Update) {
		if u.Changed {
			a.analytics.recordAsync(hashedIP, u)
		}
	}
}

func (a *app) handleViewport(c *gin.Context) {
	var sample section.Sample
	if err := c.ShouldBindJSON(&sample); err != nil {
		a.metrics.Invalid()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viewport sample"})
		return
	}
	if err := sample.Validate(); err != nil {
		a.metrics.Invalid()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.metrics.Sample()
	u := a.trackerFor(c).OnViewportChange(sample)
	a.recorder(c)(u)
	c.JSON(http.StatusOK, newViewportResponse(u))
}

// stream serializes writes to one WebSocket. Each write gets a deadline so a
// stalled peer cannot block the goroutine that changed the section.
type stream struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	writeWait time.Duration
}

func (s *stream) send(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

// handleViewportStream reads samples from a WebSocket and writes a frame only
// when the visitor's active section changes.
func (a *app) handleViewportStream(c *gin.Context) {
	tr := a.trackerFor(c)
	record := a.recorder(c)

	conn, err := a.upgrader.Upgrade(c.Writer, c.Request, c.Writer.Header())
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	a.metrics.StreamOpened()
	defer a.metrics.StreamClosed()

	out := &stream{conn: conn, writeWait: writeWait}
	cancel := tr.Subscribe(func(u tracker.Update) {
		if err := out.send(newViewportResponse(u)); err != nil {
			log.Printf("WebSocket write failed: %v", err)
		}
	})
	defer cancel()

	// Initial frame so the page can theme itself before the first scroll.
	initial := tracker.Update{Section: tr.Current(), Previous: tr.Current(), ParallaxBasis: tr.Basis()}
	if err := out.send(newViewportResponse(initial)); err != nil {
		return
	}

	for {
		var sample section.Sample
		if err := conn.ReadJSON(&sample); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Printf("WebSocket read failed: %v", err)
			}
			return
		}
		if err := sample.Validate(); err != nil {
			a.metrics.Invalid()
			continue
		}
		a.metrics.Sample()
		record(tr.OnViewportChange(sample))
	}
}

func newUpgrader(origins []string) websocket.Upgrader {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(allowed) == 0 {
				return true
			}
			return allowed[origin]
		},
	}
}
