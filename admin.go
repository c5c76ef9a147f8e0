// admin.go - privacy-conscious section analytics and admin pages
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/scroll-portfolio/internal/section"
	"github.com/Zachkp/scroll-portfolio/internal/tracker"
)

const timestampLayout = "2006-01-02 15:04:05"

// One row per section transition
type SectionView struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // Hashed instead of raw IP for privacy
	Section   string    `json:"section"`
	Previous  string    `json:"previous"`
	Timestamp time.Time `json:"timestamp"`
}

type SectionCount struct {
	Section string `json:"section"`
	Views   int64  `json:"views"`
}

type AdminStats struct {
	TotalViews     int64          `json:"total_views"`
	UniqueVisitors int64          `json:"unique_visitors"`
	ViewsToday     int64          `json:"views_today"`
	ViewsThisWeek  int64          `json:"views_this_week"`
	BySection      []SectionCount `json:"by_section"`
	RecentViews    []SectionView  `json:"recent_views"`
}

type analytics struct {
	db              *sql.DB
	salt            string
	retentionMonths int
	now             func() time.Time
}

func newAnalytics(db *sql.DB, retentionMonths int) (*analytics, error) {
	a := &analytics{
		db:              db,
		salt:            generateToken(),
		retentionMonths: retentionMonths,
		now:             time.Now,
	}

	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS section_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
		section TEXT NOT NULL,
		previous TEXT,
		timestamp TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create section_views: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_section_views_ts ON section_views(timestamp)`); err != nil {
		return nil, fmt.Errorf("index section_views: %w", err)
	}

	log.Println("Privacy: Section analytics enabled with hashed IP addresses")
	return a, nil
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy compliance (consistent per IP)
func (a *analytics) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *analytics) recordView(ctx context.Context, hashedIP string, u tracker.Update) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO section_views (hashed_ip, section, previous, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, string(u.Section), string(u.Previous), a.now().UTC().Format(timestampLayout))
	if err != nil {
		return fmt.Errorf("record section view: %w", err)
	}
	return nil
}

// recordAsync stores a transition in the background so scroll handling never
// waits on disk.
func (a *analytics) recordAsync(hashedIP string, u tracker.Update) {
	go func() {
		if err := a.recordView(context.Background(), hashedIP, u); err != nil {
			log.Printf("Error recording section view: %v", err)
		}
	}()
}

// Cleanup old view data for privacy compliance
func (a *analytics) cleanup(ctx context.Context) (int64, error) {
	cutoff := a.now().UTC().AddDate(0, -a.retentionMonths, 0).Format(timestampLayout)
	result, err := a.db.ExecContext(ctx, `DELETE FROM section_views WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup section views: %w", err)
	}

	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		log.Printf("Privacy cleanup: Removed %d section views older than %d months", rowsDeleted, a.retentionMonths)
	}
	return rowsDeleted, nil
}

func (a *analytics) stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{BySection: make([]SectionCount, 0, len(section.Order))}
	now := a.now().UTC()
	today := now.Format("2006-01-02") + " 00:00:00"
	weekAgo := now.AddDate(0, 0, -7).Format(timestampLayout)

	counts := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM section_views`, nil, &stats.TotalViews},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM section_views`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM section_views WHERE timestamp >= ?`, []any{today}, &stats.ViewsToday},
		{`SELECT COUNT(*) FROM section_views WHERE timestamp >= ?`, []any{weekAgo}, &stats.ViewsThisWeek},
	}
	for _, c := range counts {
		if err := a.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	bySection := make(map[string]int64)
	if err := a.countBySection(ctx, bySection); err != nil {
		return nil, err
	}
	for _, s := range section.Order {
		stats.BySection = append(stats.BySection, SectionCount{Section: string(s), Views: bySection[string(s)]})
	}

	recent, err := a.recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentViews = recent

	return stats, nil
}

func (a *analytics) countBySection(ctx context.Context, into map[string]int64) error {
	rows, err := a.db.QueryContext(ctx, `SELECT section, COUNT(*) FROM section_views GROUP BY section`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var n int64
		if err := rows.Scan(&name, &n); err != nil {
			return fmt.Errorf("scan section count: %w", err)
		}
		into[name] = n
	}
	return rows.Err()
}

func (a *analytics) recent(ctx context.Context, limit int) ([]SectionView, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, hashed_ip, section, COALESCE(previous, ''), timestamp
		FROM section_views
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []SectionView
	for rows.Next() {
		var v SectionView
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.Section, &v.Previous, &ts); err != nil {
			return nil, fmt.Errorf("scan section view: %w", err)
		}
		v.Timestamp, _ = time.Parse(timestampLayout, ts)
		views = append(views, v)
	}
	return views, rows.Err()
}

type adminAuth struct {
	token    string
	username string
	password string
}

func newAdminAuth(username, password string, defaulted bool) *adminAuth {
	a := &adminAuth{token: generateToken(), username: username, password: password}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
		if defaulted {
			log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
		}
	}
	return a
}

func (a *adminAuth) check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Respect Do Not Track header
func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}

func setupAdminRoutes(r *gin.Engine, an *analytics, auth *adminAuth) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":           "Privacy Policy",
			"retentionMonths": an.retentionMonths,
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if auth.check(c.PostForm("username"), c.PostForm("password")) {
			// Set secure cookie (24 hours)
			c.SetCookie("admin_token", auth.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", an.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		log.Printf("Failed admin login attempt from %s", an.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", an.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(auth.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := an.stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := an.stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := an.cleanup(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := an.stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=section-stats.json")
		log.Printf("Admin stats exported by %s", an.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
