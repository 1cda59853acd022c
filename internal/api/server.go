// Package api provides the HTTP API for observing the realms.
// GET endpoints are public and read-only. POST endpoints require a bearer token.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talgya/star-realms/internal/engine"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/llm"
	"github.com/talgya/star-realms/internal/narrative"
	"github.com/talgya/star-realms/internal/news"
	"github.com/talgya/star-realms/internal/persistence"
	"github.com/talgya/star-realms/internal/realm"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// Server serves the court state over HTTP.
type Server struct {
	Court    *engine.Court
	Mu       *sync.RWMutex // Shared with the runner; read-locked by every handler
	LLM      *llm.Client
	DB       *persistence.DB
	Gatherer prometheus.Gatherer
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	storyMu    sync.Mutex
	storyCache map[storyKey]cachedStory

	gazetteMu   sync.Mutex
	cachedPaper *llm.Gazette
}

type storyKey struct {
	realm  int
	leader leaders.LeaderID
}

type cachedStory struct {
	Story       string `json:"story"`
	Generated   bool   `json:"generated"`
	GeneratedAt string `json:"generated_at"`
}

// Handler builds the routed handler.
func (s *Server) Handler() http.Handler {
	storyLimiter := NewRateLimiter(10, time.Hour)
	gazetteLimiter := NewRateLimiter(30, time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/realms", s.handleRealms)
	mux.HandleFunc("GET /api/v1/realm/{realm}/leaders", s.handleLeaders)
	mux.HandleFunc("GET /api/v1/realm/{realm}/leader/{leader}", s.handleLeader)
	mux.HandleFunc("GET /api/v1/realm/{realm}/leader/{leader}/story", RateLimitMiddleware(storyLimiter, s.handleStory))
	mux.HandleFunc("GET /api/v1/events", s.handleEvents)
	mux.HandleFunc("GET /api/v1/news", s.handleNews)
	mux.HandleFunc("GET /api/v1/gazette", RateLimitMiddleware(gazetteLimiter, s.handleGazette))
	mux.HandleFunc("POST /api/v1/snapshot", s.adminOnly(s.handleSnapshot))

	gatherer := s.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Start serves the API until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP API starting", "addr", srv.Addr, "admin_auth", s.AdminKey != "", "llm", s.LLM.Enabled())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP shutdown error", "error", err)
		}
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			http.Error(w, "admin endpoints disabled (no REALMSIM_ADMIN_KEY set)", http.StatusForbidden)
			return
		}
		if !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	living := 0
	for _, rl := range s.Court.Realms {
		living += len(rl.LivingLeaders())
	}
	writeJSON(w, map[string]any{
		"name":           "Star Realms",
		"turn":           s.Court.Turn,
		"realms":         len(s.Court.Realms),
		"planets":        len(s.Court.Map.Planets),
		"living_leaders": living,
		"news_items":     s.Court.News.Len(),
		"llm_enabled":    s.LLM.Enabled(),
	})
}

type realmSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Race        string `json:"race"`
	Government  string `json:"government"`
	Human       bool   `json:"human"`
	Credits     int    `json:"credits"`
	Ruler       string `json:"ruler,omitempty"`
	Leaders     int    `json:"leaders"`
	Planets     int    `json:"planets"`
	RecruitCost int    `json:"recruit_cost"`
}

func (s *Server) handleRealms(w http.ResponseWriter, r *http.Request) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	out := make([]realmSummary, 0, len(s.Court.Realms))
	for _, rl := range s.Court.Realms {
		sum := realmSummary{
			ID:          rl.ID,
			Name:        rl.EmpireName,
			Race:        rl.Race.String(),
			Government:  rl.Government.String(),
			Human:       rl.Human,
			Credits:     rl.Credits,
			Leaders:     len(rl.LivingLeaders()),
			Planets:     len(s.Court.Map.PlanetsOwnedBy(rl.ID)),
			RecruitCost: engine.RecruitCost(rl),
		}
		if ruler := rl.Ruler(); ruler != nil {
			sum.Ruler = ruler.CallName()
		}
		out = append(out, sum)
	}
	writeJSON(w, out)
}

type leaderView struct {
	ID         leaders.LeaderID  `json:"id"`
	Name       string            `json:"name"`
	Title      string            `json:"title,omitempty"`
	Gender     string            `json:"gender"`
	Race       string            `json:"race"`
	Homeworld  string            `json:"homeworld"`
	Age        int               `json:"age"`
	Level      int               `json:"level"`
	Experience int               `json:"experience"`
	Job        string            `json:"job"`
	Rank       string            `json:"military_rank"`
	ParentID   *leaders.LeaderID `json:"parent_id,omitempty"`
	Perks      []string          `json:"perks"`
	Attitude   string            `json:"attitude,omitempty"`
}

type leaderDetail struct {
	leaderView
	Biography   string         `json:"biography"`
	KnownFor    string         `json:"known_for,omitempty"`
	Stats       leaders.Stats  `json:"stats"`
	Parent      string         `json:"parent,omitempty"`
	Fleet       string         `json:"fleet,omitempty"`
	Governs     string         `json:"governs,omitempty"`
	AttitudeMap map[string]int `json:"attitude_scores,omitempty"`
}

func viewLeader(l *leaders.Leader) leaderView {
	v := leaderView{
		ID:         l.ID,
		Name:       l.Name,
		Title:      l.Title,
		Gender:     l.Gender.String(),
		Race:       l.Race.String(),
		Homeworld:  l.Homeworld,
		Age:        l.Age,
		Level:      l.Level,
		Experience: l.Experience,
		Job:        l.Job.String(),
		Rank:       l.Rank.String(),
		ParentID:   l.ParentID,
		Perks:      make([]string, len(l.Perks)),
	}
	for i, p := range l.Perks {
		v.Perks[i] = p.String()
	}
	if a, ok := leaders.DeriveAttitude(l.Perks); ok {
		v.Attitude = a.String()
	}
	return v
}

// lookupRealm resolves the {realm} path value. Callers hold the read lock.
func (s *Server) lookupRealm(w http.ResponseWriter, r *http.Request) *realm.Realm {
	id, err := strconv.Atoi(r.PathValue("realm"))
	if err != nil {
		http.Error(w, "invalid realm id", http.StatusBadRequest)
		return nil
	}
	rl := s.Court.Realm(id)
	if rl == nil {
		http.Error(w, "realm not found", http.StatusNotFound)
	}
	return rl
}

// lookupLeader resolves the {realm} and {leader} path values. Callers hold the read lock.
func (s *Server) lookupLeader(w http.ResponseWriter, r *http.Request) (*realm.Realm, *leaders.Leader) {
	rl := s.lookupRealm(w, r)
	if rl == nil {
		return nil, nil
	}
	id, err := strconv.ParseUint(r.PathValue("leader"), 10, 64)
	if err != nil {
		http.Error(w, "invalid leader id", http.StatusBadRequest)
		return nil, nil
	}
	l := rl.Leader(leaders.LeaderID(id))
	if l == nil {
		http.Error(w, "leader not found", http.StatusNotFound)
		return nil, nil
	}
	return rl, l
}

func (s *Server) handleLeaders(w http.ResponseWriter, r *http.Request) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	rl := s.lookupRealm(w, r)
	if rl == nil {
		return
	}
	includeDead := r.URL.Query().Get("dead") == "true"
	out := make([]leaderView, 0, len(rl.Leaders))
	for _, l := range rl.Leaders {
		if !l.IsAlive() && !includeDead {
			continue
		}
		out = append(out, viewLeader(l))
	}
	writeJSON(w, out)
}

func (s *Server) handleLeader(w http.ResponseWriter, r *http.Request) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	rl, l := s.lookupLeader(w, r)
	if l == nil {
		return
	}
	d := leaderDetail{
		leaderView: viewLeader(l),
		Biography:  narrative.BuildBiography(l, rl.Government),
		KnownFor:   narrative.BestKnownFor(l),
		Stats:      l.Stats,
	}
	if p := rl.Parent(l); p != nil {
		d.Parent = p.CallName()
	}
	if f := rl.FleetCommandedBy(l.ID); f != nil {
		d.Fleet = f.Name
	}
	if p := s.Court.Map.PlanetGovernedBy(rl.ID, l.ID); p != nil {
		d.Governs = p.Name
	}
	scores := leaders.AttitudeScores(l.Perks)
	for a, score := range scores {
		if score > 0 {
			if d.AttitudeMap == nil {
				d.AttitudeMap = make(map[string]int)
			}
			d.AttitudeMap[leaders.Attitude(a).String()] = score
		}
	}
	writeJSON(w, d)
}

// handleStory serves a chronicler's story of the leader, falling back to the
// plain biography when the LLM is unavailable. Refreshing requires the admin key.
func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"
	if refresh && (s.AdminKey == "" || !s.checkBearerToken(r)) {
		http.Error(w, "refresh requires admin authorization", http.StatusUnauthorized)
		return
	}

	s.Mu.RLock()
	rl, l := s.lookupLeader(w, r)
	if l == nil {
		s.Mu.RUnlock()
		return
	}
	key := storyKey{realm: rl.ID, leader: l.ID}
	bc := llm.BiographyContext{
		Name:       l.Name,
		Title:      l.Title,
		Race:       l.Race.String(),
		Age:        l.Age,
		Job:        l.Job.String(),
		Realm:      rl.EmpireName,
		Government: rl.Government.String(),
		Perks:      viewLeader(l).Perks,
		Biography:  narrative.BuildBiography(l, rl.Government),
	}
	if a, ok := leaders.DeriveAttitude(l.Perks); ok {
		bc.Attitude = a.Adjective()
	}
	name := l.CallName()
	s.Mu.RUnlock()

	s.storyMu.Lock()
	if s.storyCache == nil {
		s.storyCache = make(map[storyKey]cachedStory)
	}
	cached, ok := s.storyCache[key]
	s.storyMu.Unlock()
	if ok && !refresh {
		writeJSON(w, map[string]any{"name": name, "story": cached.Story, "generated": cached.Generated, "generated_at": cached.GeneratedAt})
		return
	}

	story := cachedStory{Story: bc.Biography, GeneratedAt: time.Now().UTC().Format(time.RFC3339)}
	if s.LLM.Enabled() {
		text, err := llm.GenerateBiography(r.Context(), s.LLM, bc)
		if err != nil {
			slog.Warn("story generation failed", "leader", name, "error", err)
		} else {
			story.Story = text
			story.Generated = true
			s.storyMu.Lock()
			s.storyCache[key] = story
			s.storyMu.Unlock()
		}
	}
	writeJSON(w, map[string]any{"name": name, "story": story.Story, "generated": story.Generated, "generated_at": story.GeneratedAt})
}

// handleEvents returns recent history, newest first. Falls back to the
// database when the in-memory log is empty, such as after a restart.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxEventLimit)
	}

	s.Mu.RLock()
	events := s.Court.History.Events()
	out := make([]any, 0, min(limit, len(events)))
	for i := len(events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, events[i])
	}
	s.Mu.RUnlock()

	if len(out) == 0 && s.DB != nil {
		saved, err := s.DB.RecentEvents(limit)
		if err != nil {
			slog.Error("load events failed", "error", err)
			http.Error(w, "events unavailable", http.StatusInternalServerError)
			return
		}
		writeJSON(w, saved)
		return
	}
	writeJSON(w, out)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	items := s.Court.News.Items()
	out := make([]any, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	writeJSON(w, out)
}

// handleGazette serves this turn's gazette, generating it at most once per turn.
func (s *Server) handleGazette(w http.ResponseWriter, r *http.Request) {
	s.Mu.RLock()
	data := s.gazetteData()
	s.Mu.RUnlock()

	s.gazetteMu.Lock()
	defer s.gazetteMu.Unlock()
	if s.cachedPaper == nil || s.cachedPaper.Turn != data.Turn {
		s.cachedPaper = llm.GenerateGazette(r.Context(), s.LLM, data)
	}
	writeJSON(w, s.cachedPaper)
}

// gazetteData gathers the current turn's material. Callers hold the read lock.
func (s *Server) gazetteData() *llm.GazetteData {
	c := s.Court
	data := &llm.GazetteData{Turn: c.Turn}
	for _, rl := range c.Realms {
		sum := llm.RealmSummary{
			Name:       rl.EmpireName,
			Government: rl.Government.String(),
			Leaders:    len(rl.LivingLeaders()),
			Credits:    rl.Credits,
		}
		if ruler := rl.Ruler(); ruler != nil {
			sum.Ruler = ruler.CallName()
		}
		data.Realms = append(data.Realms, sum)
	}
	items := c.News.Items()
	for i := len(items) - 1; i >= 0; i-- {
		data.Headlines = append(data.Headlines, items[i].Headline)
	}
	for _, e := range c.History.Since(c.Turn) {
		switch e.Category {
		case news.CategoryDeath:
			data.Deaths = append(data.Deaths, e.Description)
		case news.CategoryBirth:
			data.Births = append(data.Births, e.Description)
		case news.CategoryIncident:
			data.Incidents = append(data.Incidents, e.Description)
		}
	}
	return data
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	s.Mu.RLock()
	err := s.DB.SaveCourt(s.Court)
	turn := s.Court.Turn
	s.Mu.RUnlock()
	if err != nil {
		slog.Error("snapshot save failed", "error", err)
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{
		"turn":    turn,
		"message": "snapshot saved",
	})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Debug("write response failed", "error", err)
	}
}
