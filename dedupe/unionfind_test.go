package dedupe

import "testing"

func TestUnionFind_GroupsTransitively(t *testing.T) {
	uf := newUnionFind(5)
	uf.union(0, 1)
	uf.union(1, 2)
	uf.union(3, 4)

	groups := uf.groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	rootOf := func(members []int) bool {
		for _, m := range []int{0, 1, 2} {
			found := false
			for _, x := range members {
				if x == m {
					found = true
				}
			}
			if !found {
				return false
			}
		}
		return true
	}

	var sawFirst, sawSecond bool
	for _, members := range groups {
		if len(members) == 3 && rootOf(members) {
			sawFirst = true
		}
		if len(members) == 2 {
			sawSecond = true
		}
	}
	if !sawFirst || !sawSecond {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestUnionFind_RootIsSmallestMember(t *testing.T) {
	uf := newUnionFind(4)
	uf.union(3, 1)
	uf.union(1, 2)
	if uf.find(3) != 1 {
		t.Errorf("find(3) = %d, want 1", uf.find(3))
	}
}
