package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yameogo/gestock/internal/common"
	"github.com/yameogo/gestock/internal/models"
)

func product(id int64, name string) models.Product {
	return models.Product{ID: id, Reference: "REF", Name: name, Unit: "pcs", IsActive: true}
}

func seedPage(c *Cache[models.Product], key string, products ...models.Product) {
	c.PutPage(key, Page[models.Product]{Count: len(products), Results: products})
}

func TestCreateRollback_RestoresExactSnapshot(t *testing.T) {
	c := New[models.Product]()
	a, b := product(1, "A"), product(2, "B")
	seedPage(c, "page=1", a, b)

	before, ok := c.GetPage("page=1")
	require.True(t, ok)

	m := c.Begin()
	prov := product(NextProvisionalID(), common.PlaceholderLabel)
	m.InsertHead(prov)

	mid, _ := c.GetPage("page=1")
	require.Equal(t, 3, mid.Count)
	require.Len(t, mid.Results, 3)
	assert.Equal(t, prov, mid.Results[0])

	m.Rollback()

	after, ok := c.GetPage("page=1")
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestDeleteRollback_RecordReappearsAtPosition(t *testing.T) {
	c := New[models.Product]()
	a := product(1, "A")
	seedPage(c, "", a)

	m := c.Begin()
	m.Remove(a.ID)

	mid, _ := c.GetPage("")
	assert.Equal(t, 0, mid.Count)
	assert.Empty(t, mid.Results)

	m.Rollback()

	after, _ := c.GetPage("")
	require.Equal(t, 1, after.Count)
	require.Len(t, after.Results, 1)
	assert.Equal(t, a, after.Results[0])
}

func TestCommit_ReplacesPlaceholderInPlace(t *testing.T) {
	c := New[models.Product]()
	seedPage(c, "", product(1, "A"), product(2, "B"))

	m := c.Begin()
	prov := product(NextProvisionalID(), common.PlaceholderLabel)
	m.InsertHead(prov)

	created := product(42, "Compte Courant")
	m.Commit(created)

	page, _ := c.GetPage("")
	require.Len(t, page.Results, 3)
	assert.Equal(t, created, page.Results[0], "authoritative record keeps the placeholder position")
	assert.Equal(t, 3, page.Count)

	detail, ok := c.GetDetail(42)
	require.True(t, ok)
	assert.Equal(t, created, detail)
}

func TestCountConsistency_AfterCreatesAndDeletes(t *testing.T) {
	c := New[models.Product]()
	seedPage(c, "")

	for i := 0; i < 3; i++ {
		m := c.Begin()
		prov := product(NextProvisionalID(), common.PlaceholderLabel)
		m.InsertHead(prov)
		m.Commit(product(int64(100+i), "P"))
	}

	page, _ := c.GetPage("")
	require.Equal(t, page.Count, len(page.Results))

	m := c.Begin()
	m.Remove(100)
	m.CommitDelete()

	page, _ = c.GetPage("")
	assert.Equal(t, page.Count, len(page.Results))
	assert.Equal(t, 2, page.Count)
}

func TestInsertHead_PatchesEveryCachedPage(t *testing.T) {
	c := New[models.Product]()
	seedPage(c, "page=1", product(1, "A"))
	seedPage(c, "page=2", product(2, "B"))

	m := c.Begin()
	prov := product(NextProvisionalID(), common.PlaceholderLabel)
	m.InsertHead(prov)

	for _, key := range []string{"page=1", "page=2"} {
		page, _ := c.GetPage(key)
		require.Len(t, page.Results, 2, "key %s", key)
		assert.Equal(t, prov.ID, page.Results[0].EntityID())
		assert.Equal(t, 2, page.Count)
	}
}

func TestProvisionalIDs_UniqueUnderConcurrency(t *testing.T) {
	const n = 200
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = NextProvisionalID()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]struct{}, n)
	for _, id := range ids {
		assert.True(t, IsProvisional(id), "provisional IDs must be negative")
		_, dup := seen[id]
		require.False(t, dup, "duplicate provisional id %d", id)
		seen[id] = struct{}{}
	}
}

func TestMarkAllStale_ClearedByPutPage(t *testing.T) {
	c := New[models.Product]()
	seedPage(c, "page=1", product(1, "A"))

	c.MarkAllStale()
	assert.True(t, c.Stale("page=1"))

	seedPage(c, "page=1", product(1, "A"))
	assert.False(t, c.Stale("page=1"))
}

func TestRollback_DropsPagesCachedMidFlight(t *testing.T) {
	c := New[models.Product]()
	seedPage(c, "page=1", product(1, "A"))

	m := c.Begin()
	m.InsertHead(product(NextProvisionalID(), common.PlaceholderLabel))

	// A list lands in the cache while the create is still in flight.
	seedPage(c, "page=2", product(2, "B"))

	m.Rollback()

	_, ok := c.GetPage("page=2")
	assert.False(t, ok, "pages unseen by the snapshot are dropped on rollback")

	page, ok := c.GetPage("page=1")
	require.True(t, ok)
	assert.Equal(t, 1, page.Count)
}

func TestReplace_UpdatesRowInPlaceAndDetail(t *testing.T) {
	c := New[models.Product]()
	a, b := product(1, "A"), product(2, "B")
	seedPage(c, "", a, b)

	renamed := product(2, "B2")
	c.Replace(renamed)

	page, _ := c.GetPage("")
	require.Len(t, page.Results, 2)
	assert.Equal(t, "A", page.Results[0].Name)
	assert.Equal(t, "B2", page.Results[1].Name)

	detail, ok := c.GetDetail(2)
	require.True(t, ok)
	assert.Equal(t, renamed, detail)
}

func TestGetPage_ReturnsIndependentCopy(t *testing.T) {
	c := New[models.Product]()
	seedPage(c, "", product(1, "A"))

	page, _ := c.GetPage("")
	page.Results[0].Name = "mutated"

	fresh, _ := c.GetPage("")
	assert.Equal(t, "A", fresh.Results[0].Name)
}
