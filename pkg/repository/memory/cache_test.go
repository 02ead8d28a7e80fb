package memory_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/domain/model"
	"github.com/derynLeigh/dependabot-service/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func testPRs(n int) []*model.PullRequest {
	prs := make([]*model.PullRequest, n)
	for i := range prs {
		prs[i] = &model.PullRequest{
			Number: i + 1,
			Title:  fmt.Sprintf("Bump dep%d from 1.0.%d to 1.0.%d", i, i, i+1),
			Author: "dependabot[bot]",
		}
	}
	return prs
}

func TestCacheGetPut(t *testing.T) {
	cache := memory.NewCache(time.Minute, 10)

	t.Run("miss on absent key", func(t *testing.T) {
		_, ok := cache.Get("repo1")
		gt.False(t, ok)
	})

	t.Run("hit after put", func(t *testing.T) {
		cache.Put("repo1", testPRs(2))
		prs, ok := cache.Get("repo1")
		gt.True(t, ok)
		gt.A(t, prs).Length(2)
	})

	t.Run("put replaces existing entry", func(t *testing.T) {
		cache.Put("repo1", testPRs(3))
		prs, ok := cache.Get("repo1")
		gt.True(t, ok)
		gt.A(t, prs).Length(3)
	})

	t.Run("stored value is copied", func(t *testing.T) {
		src := testPRs(2)
		cache.Put("repo2", src)
		src[0] = nil
		prs, ok := cache.Get("repo2")
		gt.True(t, ok)
		gt.V(t, prs[0]).NotEqual(nil)
	})
}

func TestCacheTTL(t *testing.T) {
	ttl := 300000 * time.Millisecond
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	cache := memory.NewCache(ttl, 10, memory.WithClock(clock))

	cache.Put("repo1", testPRs(1))

	t.Run("visible just before TTL", func(t *testing.T) {
		now = now.Add(ttl - time.Millisecond)
		_, ok := cache.Get("repo1")
		gt.True(t, ok)
	})

	t.Run("absent at TTL", func(t *testing.T) {
		now = now.Add(time.Millisecond)
		_, ok := cache.Get("repo1")
		gt.False(t, ok)
	})

	t.Run("expired entry is collected", func(t *testing.T) {
		gt.V(t, cache.Len()).Equal(0)
	})
}

func TestCacheCapacity(t *testing.T) {
	t.Run("never exceeds max entries", func(t *testing.T) {
		now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		cache := memory.NewCache(time.Hour, 5, memory.WithClock(func() time.Time { return now }))

		for i := 0; i < 20; i++ {
			now = now.Add(time.Second)
			cache.Put(fmt.Sprintf("repo%d", i), testPRs(1))
			gt.V(t, cache.Len() <= 5).Equal(true)
		}
		gt.V(t, cache.Len()).Equal(5)
	})

	t.Run("evicts least recently written", func(t *testing.T) {
		now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		cache := memory.NewCache(time.Hour, 2, memory.WithClock(func() time.Time { return now }))

		cache.Put("old", testPRs(1))
		now = now.Add(time.Second)
		cache.Put("mid", testPRs(1))
		now = now.Add(time.Second)
		cache.Put("new", testPRs(1))

		_, ok := cache.Get("old")
		gt.False(t, ok)
		_, ok = cache.Get("mid")
		gt.True(t, ok)
		_, ok = cache.Get("new")
		gt.True(t, ok)
	})
}

func TestCacheEvictAll(t *testing.T) {
	cache := memory.NewCache(time.Hour, 10)
	for i := 0; i < 3; i++ {
		cache.Put(fmt.Sprintf("repo%d", i), testPRs(1))
	}

	cache.EvictAll()

	gt.V(t, cache.Len()).Equal(0)
	for i := 0; i < 3; i++ {
		_, ok := cache.Get(fmt.Sprintf("repo%d", i))
		gt.False(t, ok)
	}
}

func TestCacheConcurrency(t *testing.T) {
	cache := memory.NewCache(time.Minute, 50)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("repo%d", j%10)
				switch j % 3 {
				case 0:
					cache.Put(key, testPRs(1))
				case 1:
					if prs, ok := cache.Get(key); ok {
						gt.A(t, prs).Length(1)
					}
				default:
					cache.EvictAll()
				}
			}
		}(i)
	}
	wg.Wait()
}
