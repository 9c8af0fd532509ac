package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wifictl/internal/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func newTestStatsService() (*StatsService, *fixedClock) {
	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return NewStatsService(clock, logger), clock
}

func mustTransition(t *testing.T, result entities.TransitionResult) entities.Transition {
	t.Helper()
	name, err := entities.NewInterfaceName("wlan0")
	require.NoError(t, err)
	return entities.Transition{
		Interface: name,
		Mode:      entities.ModeMonitor,
		Result:    result,
	}
}

func TestStatsService_ServeHTTP(t *testing.T) {
	service, clock := newTestStatsService()
	service.SetDaemonName("NetworkManager")
	service.RecordTransition(mustTransition(t, entities.ResultSuccess))
	clock.now = clock.now.Add(90 * time.Minute)

	recorder := httptest.NewRecorder()
	service.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response StatsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, float64(1), response.Statistics["transitions"])
	assert.Equal(t, float64(0), response.Statistics["failed"])
	assert.Equal(t, "wlan0", response.Statistics["last_interface"])
	assert.Equal(t, "monitor", response.Statistics["last_mode"])
	assert.Equal(t, "success", response.Statistics["last_result"])
	assert.Equal(t, "NetworkManager", response.Statistics["daemon"])
	assert.Equal(t, "1h30m", response.Statistics["uptime"])
}

func TestStatsService_StatusClassification(t *testing.T) {
	t.Run("idle before any transition", func(t *testing.T) {
		service, _ := newTestStatsService()
		assert.Equal(t, StatusIdle, service.buildResponse().Status)
	})

	t.Run("degraded at half failures", func(t *testing.T) {
		service, _ := newTestStatsService()
		service.RecordTransition(mustTransition(t, entities.ResultSuccess))
		service.RecordTransition(mustTransition(t, entities.ResultFailed))
		assert.Equal(t, StatusDegraded, service.buildResponse().Status)
	})

	t.Run("healthy when failures are rare", func(t *testing.T) {
		service, _ := newTestStatsService()
		service.RecordTransition(mustTransition(t, entities.ResultSuccess))
		service.RecordTransition(mustTransition(t, entities.ResultSuccess))
		service.RecordTransition(mustTransition(t, entities.ResultFallbackAttempted))
		assert.Equal(t, StatusHealthy, service.buildResponse().Status)
	})
}

func TestStatsService_RejectsNonGET(t *testing.T) {
	service, _ := newTestStatsService()

	recorder := httptest.NewRecorder()
	service.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
