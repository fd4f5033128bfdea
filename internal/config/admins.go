package config

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// AdminSet is the fixed set of accounts that receive suggestions.
// It is built once at startup and never mutated afterwards.
type AdminSet struct {
	ids   []int64
	index map[int64]struct{}
}

func NewAdminSet(ids ...int64) AdminSet {
	ids = lo.Uniq(ids)
	index := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		index[id] = struct{}{}
	}
	return AdminSet{ids: ids, index: index}
}

// ParseAdminIDs turns a comma-separated list like "111, 222,abc" into an
// AdminSet. Entries that are not plain decimal numbers are dropped; an empty
// result is ErrNoAdmins.
func ParseAdminIDs(raw string) (AdminSet, error) {
	ids := lo.FilterMap(strings.Split(raw, ","), func(item string, _ int) (int64, bool) {
		item = strings.TrimSpace(item)
		if item == "" || strings.IndexFunc(item, isNotDigit) >= 0 {
			return 0, false
		}
		id, err := strconv.ParseInt(item, 10, 64)
		return id, err == nil
	})

	if len(ids) == 0 {
		return AdminSet{}, ErrNoAdmins
	}
	return NewAdminSet(ids...), nil
}

func (s AdminSet) Contains(id int64) bool {
	_, ok := s.index[id]
	return ok
}

// IDs returns the admins in the order they were configured.
func (s AdminSet) IDs() []int64 {
	return slices.Clone(s.ids)
}

func (s AdminSet) Len() int {
	return len(s.ids)
}

func isNotDigit(r rune) bool {
	return r > unicode.MaxASCII || !unicode.IsDigit(r)
}
