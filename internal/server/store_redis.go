package server

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyLeaderboard = "closer:leaderboard"
	redisKeyHighscores  = "closer:highscores"
	redisKeyNicknames   = "closer:nicknames"
)

// RedisStore keeps the leaderboard in a sorted set. ZADD GT gives the
// keep-higher dedup atomically; equal scores order lexicographically by
// nickname, which diverges from the sqlite backend's submission-order
// tie-break.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Submit(ctx context.Context, userID, nickname string, score int) error {
	pipe := s.rdb.TxPipeline()
	pipe.ZAddGT(ctx, redisKeyLeaderboard, redis.Z{Score: float64(score), Member: nickname})
	pipe.HSet(ctx, redisKeyNicknames, userID, nickname)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) TopN(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	zs, err := s.rdb.ZRevRangeWithScores(ctx, redisKeyLeaderboard, 0, int64(n)-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for _, z := range zs {
		nickname, _ := z.Member.(string)
		entries = append(entries, LeaderboardEntry{
			Nickname: nickname,
			Score:    int(z.Score),
		})
	}
	return entries, nil
}

func (s *RedisStore) Highscore(ctx context.Context, userID string) (int, error) {
	score, err := s.rdb.ZScore(ctx, redisKeyHighscores, userID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(score), nil
}

func (s *RedisStore) SetHighscore(ctx context.Context, userID string, score int) error {
	return s.rdb.ZAddGT(ctx, redisKeyHighscores, redis.Z{
		Score:  float64(score),
		Member: userID,
	}).Err()
}

func (s *RedisStore) Nickname(ctx context.Context, userID string) (string, error) {
	nickname, err := s.rdb.HGet(ctx, redisKeyNicknames, userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return nickname, err
}
