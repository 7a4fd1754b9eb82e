/*
Copyright © 2019 the echem authors.
This file is part of echem.

echem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

echem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with echem.  If not, see <http://www.gnu.org/licenses/>.
*/

package echem

import (
	"sort"
	"sync"
)

var citations = struct {
	sync.Mutex
	keys map[string]bool
}{keys: make(map[string]bool)}

// RegisterCitation records that the reference with the given key was used.
// It is safe for concurrent use.
func RegisterCitation(key string) {
	citations.Lock()
	citations.keys[key] = true
	citations.Unlock()
}

// Citations returns the keys of every registered reference, sorted.
func Citations() []string {
	citations.Lock()
	defer citations.Unlock()
	o := make([]string, 0, len(citations.keys))
	for k := range citations.keys {
		o = append(o, k)
	}
	sort.Strings(o)
	return o
}
