package token_bucket

import (
	"sync"
	"time"
)

// KeyedLimiter отдельное ведро на каждый ключ (например, адрес клиента).
// Вёдра, к которым не обращались дольше idleTTL, удаляются при очередном вызове.
type KeyedLimiter struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration

	mu        sync.Mutex
	buckets   map[string]*keyedBucket
	lastSweep time.Time
	now       func() time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyedLimiter(capacity int, refillRate float64, idleTTL time.Duration) *KeyedLimiter {
	return newKeyedLimiter(capacity, refillRate, idleTTL, time.Now)
}

func newKeyedLimiter(capacity int, refillRate float64, idleTTL time.Duration, now func() time.Time) *KeyedLimiter {
	return &KeyedLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		buckets:    make(map[string]*keyedBucket),
		lastSweep:  now(),
		now:        now,
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	return k.bucketFor(key).Allow()
}

func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *KeyedLimiter) bucketFor(key string) *TokenBucket {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if k.idleTTL > 0 && now.Sub(k.lastSweep) >= k.idleTTL {
		for bucketKey, b := range k.buckets {
			if now.Sub(b.lastSeen) >= k.idleTTL {
				delete(k.buckets, bucketKey)
			}
		}
		k.lastSweep = now
	}

	b, ok := k.buckets[key]
	if !ok {
		b = &keyedBucket{bucket: newTokenBucket(k.capacity, k.refillRate, k.now)}
		k.buckets[key] = b
	}
	b.lastSeen = now
	return b.bucket
}
