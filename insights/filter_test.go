package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testCustomer struct {
	Name          string
	Email         string
	Status        string
	Tags          []string
	ContractValue float64
	MissedPayment bool
}

var collection = []testCustomer{
	{Name: "Acme Corp", Email: "ops@acme.io", Status: "active", Tags: []string{"enterprise", "priority"}},
	{Name: "TechStart Inc", Email: "admin@techstart.dev", Status: "trial", Tags: []string{"startup"}},
	{Name: "Global Systems", Email: "security@globalsys.com", Status: "active", Tags: nil},
	{Name: "DataFlow Ltd", Email: "it@dataflow.co.uk", Status: "inactive", Tags: []string{"priority"}},
}

func name(c testCustomer) string   { return c.Name }
func email(c testCustomer) string  { return c.Email }
func status(c testCustomer) string { return c.Status }
func tags(c testCustomer) []string { return c.Tags }

func TestApplyIdentity(t *testing.T) {
	t.Run("no predicates returns the collection unchanged", func(t *testing.T) {
		assert.Equal(t, collection, Apply(collection))
	})

	t.Run("empty query and all sentinel and empty tag selection are the identity", func(t *testing.T) {
		got := Apply(collection,
			TextSearch("", name, email),
			Equals(status, FilterAll),
			TagsIntersect(tags, nil),
		)
		assert.Equal(t, collection, got)
	})
}

func TestTextSearch(t *testing.T) {
	t.Run("matches case-insensitive substring in any configured field", func(t *testing.T) {
		got := Apply(collection, TextSearch("ACME", name, email))
		assert.Len(t, got, 1)
		assert.Equal(t, "Acme Corp", got[0].Name)
	})

	t.Run("matches the second configured field too", func(t *testing.T) {
		got := Apply(collection, TextSearch("globalsys.com", name, email))
		assert.Len(t, got, 1)
		assert.Equal(t, "Global Systems", got[0].Name)
	})

	t.Run("excludes every record not containing the query", func(t *testing.T) {
		got := Apply(collection, TextSearch("nonexistent", name, email))
		assert.Empty(t, got)
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := Apply(collection, TextSearch("t", name, email))
		for i := 1; i < len(got); i++ {
			assert.True(t, indexOf(collection, got[i-1]) < indexOf(collection, got[i]))
		}
	})
}

func TestEquals(t *testing.T) {
	t.Run("exact match on the field value", func(t *testing.T) {
		got := Apply(collection, Equals(status, "active"))
		assert.Len(t, got, 2)
		for _, c := range got {
			assert.Equal(t, "active", c.Status)
		}
	})

	t.Run("all sentinel is equivalent to no filter", func(t *testing.T) {
		assert.Equal(t, collection, Apply(collection, Equals(status, FilterAll)))
	})

	t.Run("multiple categorical filters combine with AND", func(t *testing.T) {
		got := Apply(collection,
			Equals(status, "active"),
			TextSearch("global", name, email),
		)
		assert.Len(t, got, 1)
		assert.Equal(t, "Global Systems", got[0].Name)
	})
}

func TestTagsIntersect(t *testing.T) {
	t.Run("record included iff tag sets intersect", func(t *testing.T) {
		got := Apply(collection, TagsIntersect(tags, []string{"priority"}))
		assert.Len(t, got, 2)
		assert.Equal(t, "Acme Corp", got[0].Name)
		assert.Equal(t, "DataFlow Ltd", got[1].Name)
	})

	t.Run("empty selection matches all including records without tags", func(t *testing.T) {
		assert.Equal(t, collection, Apply(collection, TagsIntersect(tags, nil)))
	})

	t.Run("records with nil tags never intersect a non-empty selection", func(t *testing.T) {
		got := Apply(collection, TagsIntersect(tags, []string{"enterprise", "startup"}))
		for _, c := range got {
			assert.NotEqual(t, "Global Systems", c.Name)
		}
	})
}

func TestWhere(t *testing.T) {
	customers := []testCustomer{
		{Name: "A", ContractValue: 48000, Status: "active"},
		{Name: "B", ContractValue: 12000, Status: "active", MissedPayment: true},
	}

	t.Run("disabled toggle is the identity", func(t *testing.T) {
		got := Apply(customers, Where(false, func(c testCustomer) bool { return c.MissedPayment }))
		assert.Equal(t, customers, got)
	})

	t.Run("enabled toggle selects exactly the matching records", func(t *testing.T) {
		got := Apply(customers, Where(true, func(c testCustomer) bool { return c.MissedPayment }))
		assert.Len(t, got, 1)
		assert.Equal(t, "B", got[0].Name)
	})
}

func indexOf(s []testCustomer, el testCustomer) int {
	for i, v := range s {
		if v.Name == el.Name {
			return i
		}
	}
	return -1
}
