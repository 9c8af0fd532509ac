package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"wifictl/internal/domain/entities"
	"wifictl/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// StatsService tracks session statistics for the running tool and serves
// them over the optional HTTP listener. All state is in-memory only and
// dies with the process.
type StatsService struct {
	mu            sync.RWMutex
	clock         interfaces.Clock
	logger        *logrus.Logger
	startTime     time.Time
	transitions   int64
	failed        int64
	lastInterface string
	lastMode      string
	lastResult    string
	daemonManaged string
}

// SessionStatus represents the overall session health
type SessionStatus string

const (
	StatusHealthy  SessionStatus = "healthy"
	StatusDegraded SessionStatus = "degraded"
	StatusIdle     SessionStatus = "idle"
)

// StatsResponse is the statistics endpoint response struct
type StatsResponse struct {
	Status     SessionStatus          `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	Statistics map[string]interface{} `json:"statistics"`
}

// NewStatsService creates a new StatsService
func NewStatsService(clock interfaces.Clock, logger *logrus.Logger) *StatsService {
	return &StatsService{
		clock:     clock,
		logger:    logger,
		startTime: clock.Now(),
	}
}

// SetDaemonName records which network-management daemon is coordinated
func (s *StatsService) SetDaemonName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.daemonManaged = name
}

// RecordTransition records one completed mode transition
func (s *StatsService) RecordTransition(t entities.Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transitions++
	if !t.Succeeded() {
		s.failed++
	}
	s.lastInterface = t.Interface.String()
	s.lastMode = t.Mode.String()
	s.lastResult = t.Result.String()
}

// ServeHTTP handles the HTTP statistics endpoint
func (s *StatsService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := s.buildResponse()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.WithError(err).Error("failed to encode statistics response")
	}
}

// buildResponse constructs the statistics response
func (s *StatsService) buildResponse() StatsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock.Now()

	statistics := map[string]interface{}{
		"transitions":    s.transitions,
		"failed":         s.failed,
		"last_interface": s.lastInterface,
		"last_mode":      s.lastMode,
		"last_result":    s.lastResult,
		"daemon":         s.daemonManaged,
		"uptime":         s.formatUptime(now.Sub(s.startTime)),
	}

	return StatsResponse{
		Status:     s.determineStatus(),
		Timestamp:  now.Format(time.RFC3339),
		Statistics: statistics,
	}
}

// determineStatus classifies the session from the transition counters
func (s *StatsService) determineStatus() SessionStatus {
	if s.transitions == 0 {
		return StatusIdle
	}

	failureRate := float64(s.failed) / float64(s.transitions)
	if failureRate >= 0.5 {
		return StatusDegraded
	}

	return StatusHealthy
}

// formatUptime formats uptime duration to human-readable format
func (s *StatsService) formatUptime(duration time.Duration) string {
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
