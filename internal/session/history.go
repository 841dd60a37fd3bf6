package session

import (
	"context"
	"fmt"
	"time"

	"analizador/pkg"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// HistoryTTL is how long a session's analysis history is retained.
const HistoryTTL = 40 * time.Minute

// HistoryStore keeps the per-session list of analysis records.
type HistoryStore interface {
	Append(ctx context.Context, record pkg.AnalysisRecord) error
	Load(ctx context.Context, sessionID string) ([]pkg.AnalysisRecord, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisHistory implements HistoryStore on Redis with a sliding TTL.
type RedisHistory struct {
	client *redis.Client
}

// NewRedisHistory connects to the Redis instance described by the URL and
// verifies the connection.
func NewRedisHistory(ctx context.Context, redisURL string) (*RedisHistory, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL is required")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisHistory{client: client}, nil
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("history:%s", sessionID)
}

// Append adds one record to the session history and refreshes the TTL.
func (r *RedisHistory) Append(ctx context.Context, record pkg.AnalysisRecord) error {
	records, err := r.Load(ctx, record.SessionID)
	if err != nil {
		return err
	}
	records = append(records, record)

	data, err := sonic.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := r.client.Set(ctx, historyKey(record.SessionID), data, HistoryTTL).Err(); err != nil {
		return fmt.Errorf("failed to store history: %w", err)
	}
	return nil
}

// Load returns the session history, empty when the key is missing or expired.
func (r *RedisHistory) Load(ctx context.Context, sessionID string) ([]pkg.AnalysisRecord, error) {
	data, err := r.client.Get(ctx, historyKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []pkg.AnalysisRecord{}, nil
		}
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	var records []pkg.AnalysisRecord
	if err := sonic.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return records, nil
}

// Clear removes the session history.
func (r *RedisHistory) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, historyKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// MemoryHistory is an in-process HistoryStore used when Redis is not
// configured.
type MemoryHistory struct {
	records map[string][]pkg.AnalysisRecord
}

// NewMemoryHistory creates an empty in-memory store.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{records: make(map[string][]pkg.AnalysisRecord)}
}

func (m *MemoryHistory) Append(_ context.Context, record pkg.AnalysisRecord) error {
	if record.SessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	m.records[record.SessionID] = append(m.records[record.SessionID], record)
	return nil
}

func (m *MemoryHistory) Load(_ context.Context, sessionID string) ([]pkg.AnalysisRecord, error) {
	records, ok := m.records[sessionID]
	if !ok {
		return []pkg.AnalysisRecord{}, nil
	}
	return records, nil
}

func (m *MemoryHistory) Clear(_ context.Context, sessionID string) error {
	delete(m.records, sessionID)
	return nil
}
