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

// Package insights implements the filter and aggregation pipeline behind
// the dashboard views: it turns a freshly loaded entity collection and a
// user chosen filter configuration into a filtered subsequence plus the
// scalar summaries shown above the tables. All functions are pure; the
// statistics services compose them over repository results.
package insights

import "strings"

// FilterAll is the sentinel value of a categorical filter meaning
// "no constraint".
const FilterAll = "all"

type Predicate[T any] func(T) bool

// TextSearch matches a record if ANY of the configured fields contains
// the query as a case-insensitive substring. An empty query matches all.
func TextSearch[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(record T) bool {
		if q == "" {
			return true
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(record)), q) {
				return true
			}
		}
		return false
	}
}

// Equals is an exact-match categorical filter. The FilterAll sentinel
// (and the empty string) leaves the collection unconstrained.
func Equals[T any](get func(T) string, value string) Predicate[T] {
	return func(record T) bool {
		if value == "" || value == FilterAll {
			return true
		}
		return get(record) == value
	}
}

// TagsIntersect matches a record if its tag set intersects the selected
// set. An empty selection matches all.
func TagsIntersect[T any](get func(T) []string, selected []string) Predicate[T] {
	return func(record T) bool {
		if len(selected) == 0 {
			return true
		}
		for _, tag := range get(record) {
			for _, sel := range selected {
				if tag == sel {
					return true
				}
			}
		}
		return false
	}
}

// Where lifts an arbitrary condition into the pipeline, e.g. the
// "missed payments only" and "long running only" toggles.
func Where[T any](enabled bool, cond func(T) bool) Predicate[T] {
	return func(record T) bool {
		if !enabled {
			return true
		}
		return cond(record)
	}
}

// Matches reports whether the record satisfies every predicate
// (categorical filters combine with logical AND).
func Matches[T any](record T, preds ...Predicate[T]) bool {
	for _, pred := range preds {
		if !pred(record) {
			return false
		}
	}
	return true
}

// Apply returns the filtered subsequence, preserving input order. No
// re-sort happens here: ordering is whatever the repository returned.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return records
	}
	res := make([]T, 0, len(records))
	for _, record := range records {
		if Matches(record, preds...) {
			res = append(res, record)
		}
	}
	return res
}
