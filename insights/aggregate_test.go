package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Status    string
	Value     float64
	Timestamp *time.Time
}

func ts(t time.Time) *time.Time { return &t }

func TestCountBy(t *testing.T) {
	records := []record{
		{Status: "active"}, {Status: "active"}, {Status: "trial"}, {Status: "weird"},
	}
	counts := CountBy(records, func(r record) string { return r.Status })
	assert.Equal(t, 2, counts["active"])
	assert.Equal(t, 1, counts["trial"])
	// unknown category values land in their own bucket instead of being dropped
	assert.Equal(t, 1, counts["weird"])
	assert.Equal(t, 0, counts["inactive"])
}

func TestSumBy(t *testing.T) {
	t.Run("sums the accessor values", func(t *testing.T) {
		records := []record{{Value: 48000}, {Value: 12000}}
		assert.Equal(t, 60000.0, SumBy(records, func(r record) float64 { return r.Value }))
	})

	t.Run("missing numerics contribute zero", func(t *testing.T) {
		records := []record{{Value: 48000}, {}}
		assert.Equal(t, 48000.0, SumBy(records, func(r record) float64 { return r.Value }))
	})
}

func TestCountSince(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	records := []record{
		{Timestamp: ts(now.Add(-2 * time.Hour))},
		{Timestamp: ts(now.AddDate(0, 0, -3))},
		{Timestamp: ts(now.AddDate(0, 0, -40))},
		{Timestamp: nil},
	}
	at := func(r record) *time.Time { return r.Timestamp }

	assert.Equal(t, 1, CountSince(records, at, now.AddDate(0, 0, -1)))
	assert.Equal(t, 2, CountSince(records, at, now.AddDate(0, 0, -7)))
	assert.Equal(t, 3, CountSince(records, at, now.AddDate(0, 0, -41)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(3, 3))
	// division by zero guard: exactly 0, no panic
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 0, Percent(0, 0))
}

func TestRoundedThousands(t *testing.T) {
	assert.Equal(t, 48, RoundedThousands(48000))
	assert.Equal(t, 60, RoundedThousands(60000))
	assert.Equal(t, 12, RoundedThousands(12400))
	assert.Equal(t, 13, RoundedThousands(12500))
	assert.Equal(t, 0, RoundedThousands(0))
}

func TestActivityBuckets(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	records := []record{
		{Timestamp: ts(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))},  // today, first instant
		{Timestamp: ts(time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC))}, // today
		{Timestamp: ts(time.Date(2025, 3, 7, 23, 59, 59, 0, time.UTC))},
		{Timestamp: ts(time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC))},  // oldest in-window day
		{Timestamp: ts(time.Date(2025, 3, 3, 23, 59, 59, 0, time.UTC))}, // just outside
		{Timestamp: nil},
	}
	at := func(r record) *time.Time { return r.Timestamp }

	buckets := ActivityBuckets(records, at, now, 7)

	t.Run("exactly seven buckets oldest first", func(t *testing.T) {
		assert.Len(t, buckets, 7)
		assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), buckets[0].Day)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), buckets[6].Day)
		assert.Equal(t, "Mar 4", buckets[0].Label)
	})

	t.Run("counts sum to the in-window timestamped records", func(t *testing.T) {
		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		assert.Equal(t, 4, total)
	})

	t.Run("per-day counts respect local day boundaries", func(t *testing.T) {
		assert.Equal(t, 1, buckets[0].Count) // Mar 4
		assert.Equal(t, 1, buckets[3].Count) // Mar 7
		assert.Equal(t, 2, buckets[6].Count) // today
	})
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "0", FormatCurrency(0))
	assert.Equal(t, "950", FormatCurrency(950))
	assert.Equal(t, "48,000", FormatCurrency(48000))
	assert.Equal(t, "1,234,567", FormatCurrency(1234567.89))
	assert.Equal(t, "-12,000", FormatCurrency(-12000))
}

// Concrete commercial page scenario: two customers, one with a missed
// payment. Total ARR, missed payment count and the missed-payment filter
// have to line up with what the page showed.
func TestCommercialScenario(t *testing.T) {
	type customer struct {
		ContractValue float64
		Status        string
		MissedPayment bool
	}
	customers := []customer{
		{ContractValue: 48000, Status: "active"},
		{ContractValue: 12000, Status: "active", MissedPayment: true},
	}

	totalARR := SumBy(customers, func(c customer) float64 { return c.ContractValue })
	assert.Equal(t, 60000.0, totalARR)

	missed := CountWhere(customers, func(c customer) bool { return c.MissedPayment })
	assert.Equal(t, 1, missed)

	filtered := Apply(customers, Where(true, func(c customer) bool { return c.MissedPayment }))
	assert.Len(t, filtered, 1)
	assert.Equal(t, 12000.0, filtered[0].ContractValue)
}
