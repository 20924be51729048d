package diario

// DedupSet holds the item ids already present in the target table.
type DedupSet struct {
	ids map[string]struct{}
}

func NewDedupSet(ids ...string) DedupSet {
	set := DedupSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}
	return set
}

func (s DedupSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s DedupSet) Len() int {
	return len(s.ids)
}
