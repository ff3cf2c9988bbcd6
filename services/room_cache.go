package services

import (
	"context"
	"errors"
	"time"

	"hostel/models"
	"hostel/services/logger"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	CacheKeyRooms          = "rooms:all"
	CacheKeyAvailableRooms = "rooms:available"
	// CacheKeyGeneration tăng mỗi lần Invalidate, Set chỉ ghi khi generation chưa đổi
	CacheKeyGeneration = "rooms:gen"
	roomCacheTTL       = 60 * time.Minute
)

var errStaleGeneration = errors.New("room cache generation changed")

// RoomCache bọc Redis cho danh sách phòng. Client nil thì mọi thao tác là no-op.
type RoomCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRoomCache(rdb *redis.Client, log logger.Logger) *RoomCache {
	return &RoomCache{rdb: rdb, logger: log}
}

func (c *RoomCache) enabled() bool {
	return c != nil && c.rdb != nil
}

// Get trả về danh sách phòng đã cache, lỗi Redis được coi như cache miss
func (c *RoomCache) Get(ctx context.Context, key string) ([]models.Room, bool) {
	if !c.enabled() {
		return nil, false
	}
	var rooms []models.Room
	found, err := GetFromRedis(ctx, c.rdb, key, &rooms)
	if err != nil {
		c.logger.Warn("read cache %s: %v", key, err)
		return nil, false
	}
	return rooms, found
}

// Generation đọc generation hiện tại, phải gọi trước khi truy vấn DB.
// ok=false thì không được Set kết quả.
func (c *RoomCache) Generation(ctx context.Context) (int64, bool) {
	if !c.enabled() {
		return 0, false
	}
	gen, err := getGeneration(ctx, c.rdb)
	if err != nil {
		c.logger.Warn("read cache generation: %v", err)
		return 0, false
	}
	return gen, true
}

// Set ghi danh sách phòng nếu generation vẫn là gen, tức là chưa có
// Invalidate nào chạy kể từ lúc đọc DB
func (c *RoomCache) Set(ctx context.Context, key string, gen int64, rooms []models.Room) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(rooms)
	if err != nil {
		c.logger.Warn("encode cache %s: %v", key, err)
		return
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := getGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, roomCacheTTL)
			return nil
		})
		return err
	}, CacheKeyGeneration)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("skip cache %s: rooms changed during read", key)
	default:
		c.logger.Warn("write cache %s: %v", key, err)
	}
}

// Invalidate tăng generation và xóa toàn bộ cache phòng, gọi sau khi transaction đã commit
func (c *RoomCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, CacheKeyGeneration)
		pipe.Del(ctx, CacheKeyRooms, CacheKeyAvailableRooms)
		return nil
	})
	if err != nil {
		c.logger.Warn("invalidate room cache: %v", err)
	}
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getGeneration(ctx context.Context, cmd stringGetter) (int64, error) {
	gen, err := cmd.Get(ctx, CacheKeyGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
