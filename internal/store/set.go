package store

// Set is a collection of distinct strings backed by a HashTable.
type Set struct {
	members *HashTable[struct{}]
}

func NewSet() *Set {
	return &Set{
		members: NewHashTable[struct{}](),
	}
}

func (s *Set) Add(members ...string) int {
	added := 0
	for _, member := range members {
		if !s.members.Has(member) {
			s.members.Set(member, struct{}{})
			added++
		}
	}
	return added
}

func (s *Set) Remove(members ...string) int {
	removed := 0
	for _, member := range members {
		if s.members.Delete(member) {
			removed++
		}
	}
	return removed
}

func (s *Set) IsMember(member string) bool {
	return s.members.Has(member)
}

func (s *Set) Members() []string {
	return s.members.Keys()
}

func (s *Set) Card() int {
	return s.members.Len()
}

func (s *Set) Pop() (string, bool) {
	var member string
	found := false
	s.members.Range(func(key string, _ struct{}) bool {
		member, found = key, true
		return false
	})
	if !found {
		return "", false
	}
	s.members.Delete(member)
	return member, true
}
