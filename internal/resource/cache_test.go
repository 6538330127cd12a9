package resource

import (
	"testing"
	"time"
)

func TestCacheExpiresAfterTTL(t *testing.T) {
	clock := time.Now()
	c := newCache(30 * time.Second)
	c.now = func() time.Time { return clock }

	c.put("projects|a", "v1")
	if v, ok := c.get("projects|a"); !ok || v != "v1" {
		t.Fatalf("fresh entry should hit, got (%v, %v)", v, ok)
	}

	clock = clock.Add(29 * time.Second)
	if _, ok := c.get("projects|a"); !ok {
		t.Fatalf("entry inside TTL should still hit")
	}

	clock = clock.Add(2 * time.Second)
	if _, ok := c.get("projects|a"); ok {
		t.Fatalf("entry past TTL should miss")
	}
}

func TestInvalidateDropsOnlyMatchingPrefixes(t *testing.T) {
	c := newCache(time.Minute)
	c.put("projects|page=1", 1)
	c.put("projects|page=2", 2)
	c.put("project|5", 3)
	c.put("donations|page=1", 4)

	c.invalidate("projects|", "project|5")

	if _, ok := c.get("projects|page=1"); ok {
		t.Fatalf("projects list should be invalidated")
	}
	if _, ok := c.get("projects|page=2"); ok {
		t.Fatalf("all list pages should be invalidated")
	}
	if _, ok := c.get("project|5"); ok {
		t.Fatalf("project detail should be invalidated")
	}
	if _, ok := c.get("donations|page=1"); !ok {
		t.Fatalf("unrelated resource must survive invalidation")
	}
}
