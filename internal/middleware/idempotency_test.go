package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotencyRouter(rdb *redis.Client, handlerCalls *int, handlerStatus int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextEmployeeID, "emp-1")
		c.Next()
	})
	r.Use(Idempotency(rdb))
	r.POST("/jobs", func(c *gin.Context) {
		*handlerCalls++
		c.JSON(handlerStatus, gin.H{"success": handlerStatus < 300, "data": gin.H{"id": "job-1"}})
	})
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyCachesSuccessAndReleasesLock(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0
	r := newIdempotencyRouter(rdb, &calls, http.StatusCreated)

	cacheKey := "idemp:/jobs:emp-1:key-1"
	body := `{"data":{"id":"job-1"},"success":true}`
	entry, err := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: json.RawMessage(body)})
	require.NoError(t, err)

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(true)
	mock.ExpectSet(cacheKey, entry, idempotencyCacheTTL).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := postWithKey(r, "key-1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.JSONEq(t, body, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0
	r := newIdempotencyRouter(rdb, &calls, http.StatusCreated)

	body := `{"data":{"id":"job-1"},"success":true}`
	entry, err := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: json.RawMessage(body)})
	require.NoError(t, err)

	mock.ExpectGet("idemp:/jobs:emp-1:key-1").SetVal(string(entry))

	w := postWithKey(r, "key-1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, body, w.Body.String())
	assert.Zero(t, calls, "replay must not reach the handler")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRejectsConcurrentDuplicate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0
	r := newIdempotencyRouter(rdb, &calls, http.StatusCreated)

	cacheKey := "idemp:/jobs:emp-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(false)

	w := postWithKey(r, "key-1")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Zero(t, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencySkipsCachingFailedAttempts(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0
	r := newIdempotencyRouter(rdb, &calls, http.StatusBadRequest)

	cacheKey := "idemp:/jobs:emp-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(true)
	// No Set expectation: a failure is not replayable, only the lock goes away.
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := postWithKey(r, "key-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyIgnoresRequestsWithoutKey(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0
	r := newIdempotencyRouter(rdb, &calls, http.StatusCreated)

	w := postWithKey(r, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
