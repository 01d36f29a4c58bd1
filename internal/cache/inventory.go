package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix     = "user:%d"
	postSlugKeyPrefix = "post:slug:%s"
)

// TTLs for the cached entities.
const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
)

// UserKey returns the cache key for a user record.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// PostSlugKey returns the cache key for a post looked up by slug.
func PostSlugKey(slug string) string {
	return fmt.Sprintf(postSlugKeyPrefix, slug)
}

// Invalidate removes a key, best effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops the cached record for a user.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost drops the cached record for a post slug.
func InvalidatePost(ctx context.Context, slug string) {
	Invalidate(ctx, PostSlugKey(slug))
}
