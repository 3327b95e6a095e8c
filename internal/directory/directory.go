// Package directory provides read access to the member directory, the
// relationship list and the media list, behind an optional Redis
// read-through cache with explicit per-mutation invalidation.
package directory

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"familytree/backend/internal/database"
	"familytree/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Mutation identifies which table changed so the matching cache entry can
// be dropped. Invalidation is keyed by mutation kind, not ambient
// refetch-on-demand.
type Mutation string

const (
	MemberChanged       Mutation = "member"
	RelationshipChanged Mutation = "relationship"
	MediaChanged        Mutation = "media"
)

const (
	membersKey       = "familytree:members"
	relationshipsKey = "familytree:relationships"
	mediaKey         = "familytree:media"

	// cacheTTL bounds staleness if an invalidation is ever missed.
	cacheTTL = 5 * time.Minute
)

var rdb *redis.Client

// Connect initializes the Redis-backed cache. An empty URL leaves the
// cache disabled; every read then goes straight to the database.
func Connect(url string) error {
	if url == "" {
		log.Println("Directory cache disabled: REDIS_URL not configured")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return err
	}

	rdb = client
	log.Println("Directory cache connected.")
	return nil
}

// Members returns all known family members ordered by ascending id.
// The ordering is load-bearing: fuzzy matching and root selection resolve
// ties to the smallest id, so every snapshot must iterate the same way.
func Members(ctx context.Context) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	err := load(ctx, membersKey, &members, func(dest *[]models.FamilyMember) error {
		return database.DB.Order("id asc").Find(dest).Error
	})
	return members, err
}

// Relationships returns all relationship edges ordered by ascending id.
func Relationships(ctx context.Context) ([]models.FamilyRelationship, error) {
	var relationships []models.FamilyRelationship
	err := load(ctx, relationshipsKey, &relationships, func(dest *[]models.FamilyRelationship) error {
		return database.DB.Order("id asc").Find(dest).Error
	})
	return relationships, err
}

// Media returns all media items, newest first.
func Media(ctx context.Context) ([]models.FamilyMedia, error) {
	var media []models.FamilyMedia
	err := load(ctx, mediaKey, &media, func(dest *[]models.FamilyMedia) error {
		return database.DB.Order("created_at desc").Find(dest).Error
	})
	return media, err
}

// Invalidate drops the cache entries for the given mutations. Safe to call
// with the cache disabled.
func Invalidate(ctx context.Context, mutations ...Mutation) {
	if rdb == nil {
		return
	}
	keys := make([]string, 0, len(mutations))
	for _, m := range mutations {
		switch m {
		case MemberChanged:
			keys = append(keys, membersKey)
		case RelationshipChanged:
			keys = append(keys, relationshipsKey)
		case MediaChanged:
			keys = append(keys, mediaKey)
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		// A failed invalidation only extends staleness up to the TTL.
		log.Printf("Directory cache invalidation failed: %v", err)
	}
}

func load[T any](ctx context.Context, key string, dest *[]T, query func(*[]T) error) error {
	if rdb != nil {
		cached, err := rdb.Get(ctx, key).Bytes()
		if err == nil {
			if jsonErr := json.Unmarshal(cached, dest); jsonErr == nil {
				return nil
			}
			// Undecodable entry: fall through and overwrite it.
		} else if err != redis.Nil {
			log.Printf("Directory cache read failed: %v", err)
		}
	}

	if err := query(dest); err != nil {
		return err
	}

	if rdb != nil {
		if encoded, err := json.Marshal(dest); err == nil {
			if err := rdb.Set(ctx, key, encoded, cacheTTL).Err(); err != nil {
				log.Printf("Directory cache write failed: %v", err)
			}
		}
	}
	return nil
}
