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

package controllers

import (
	"strings"

	"github.com/l3montree-dev/vulify/shared"
)

// boolQueryParam reads a toggle style query parameter. Anything besides
// "true" and "1" counts as off.
func boolQueryParam(ctx shared.Context, name string) bool {
	v := ctx.QueryParam(name)
	return v == "true" || v == "1"
}

// csvQueryParam splits a comma separated query parameter into its
// non-empty elements.
func csvQueryParam(ctx shared.Context, name string) []string {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
