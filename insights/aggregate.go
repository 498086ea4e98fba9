// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package insights

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Aggregates always run over the full, unfiltered collection: the
// summary counters of a page reflect totals, never the filtered view.

func CountBy[T any, K comparable](s []T, key func(T) K) map[K]int {
	res := make(map[K]int)
	for _, v := range s {
		res[key(v)]++
	}
	return res
}

func CountWhere[T any](s []T, pred func(T) bool) int {
	count := 0
	for _, v := range s {
		if pred(v) {
			count++
		}
	}
	return count
}

func SumBy[T any](s []T, val func(T) float64) float64 {
	sum := 0.0
	for _, v := range s {
		sum += val(v)
	}
	return sum
}

// CountSince counts records whose timestamp falls into [since, now].
// Records without a timestamp are excluded instead of panicking.
func CountSince[T any](s []T, at func(T) *time.Time, since time.Time) int {
	count := 0
	for _, v := range s {
		ts := at(v)
		if ts == nil {
			continue
		}
		if !ts.Before(since) {
			count++
		}
	}
	return count
}

// Percent returns round(part/total*100), or exactly 0 when total is 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// RoundedThousands renders a currency value for the "$48K" style
// counters: round(v / 1000).
func RoundedThousands(v float64) int {
	return int(math.Round(v / 1000))
}

type Bucket struct {
	Day   time.Time `json:"day"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// ActivityBuckets produces one bucket per calendar day for a trailing
// window of the given length, oldest first. Day boundaries run from
// local midnight to the last instant before the next midnight, so the
// last bucket is "today" relative to now. Counts over all buckets sum
// to the number of in-window timestamped records.
func ActivityBuckets[T any](s []T, at func(T) *time.Time, now time.Time, days int) []Bucket {
	buckets := make([]Bucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

		count := 0
		for _, v := range s {
			ts := at(v)
			if ts == nil {
				continue
			}
			if !ts.Before(dayStart) && !ts.After(dayEnd) {
				count++
			}
		}

		buckets = append(buckets, Bucket{
			Day:   dayStart,
			Label: dayStart.Format("Jan 2"),
			Count: count,
		})
	}
	return buckets
}

// FormatCurrency renders a value with thousands separators the way the
// dashboard shows contract values, e.g. 48000 -> "48,000". Fractions
// are truncated; the UI never showed cents.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.FormatInt(int64(v), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
