package services

import (
	"testing"

	"wms/internal/models"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func menu(id uint, parent uint, sortKey *int) *models.Menu {
	m := &models.Menu{Title: "menu", Type: models.MenuTypeMenu, Sort: sortKey}
	m.ID = id
	if parent != 0 {
		m.ParentID = uintPtr(parent)
	} else {
		m.ParentID = uintPtr(0)
	}
	return m
}

func TestBuildMenuTreeOrdersRootsAndAttachesChildren(t *testing.T) {
	menus := []*models.Menu{
		menu(1, 0, intPtr(2)),
		menu(2, 0, intPtr(1)),
		menu(3, 1, intPtr(1)),
	}

	roots := BuildMenuTree(menus)

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != 2 || roots[1].ID != 1 {
		t.Fatalf("roots not ordered by sort: got [%d %d]", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Children) != 0 {
		t.Fatalf("expected no children under root 2")
	}
	if len(roots[1].Children) != 1 || roots[1].Children[0].ID != 3 {
		t.Fatalf("expected menu 3 under root 1, got %+v", roots[1].Children)
	}
}

func TestBuildMenuTreeDeterministicRegardlessOfInputOrder(t *testing.T) {
	shuffled := []*models.Menu{
		menu(3, 1, intPtr(1)),
		menu(1, 0, intPtr(2)),
		menu(2, 0, intPtr(1)),
	}

	roots := BuildMenuTree(shuffled)

	if len(roots) != 2 || roots[0].ID != 2 || roots[1].ID != 1 {
		t.Fatalf("unexpected root order: %+v", roots)
	}
	if len(roots[1].Children) != 1 || roots[1].Children[0].ID != 3 {
		t.Fatalf("child not attached to parent 1")
	}
}

func TestBuildMenuTreeDropsDanglingNodes(t *testing.T) {
	// 父节点99不在本批次中（例如被角色过滤掉），节点既不报错也不提升为根
	menus := []*models.Menu{
		menu(1, 0, intPtr(1)),
		menu(2, 99, intPtr(1)),
	}

	roots := BuildMenuTree(menus)

	if len(roots) != 1 || roots[0].ID != 1 {
		t.Fatalf("expected only root 1, got %+v", roots)
	}
	var count func(nodes []*MenuNode) int
	count = func(nodes []*MenuNode) int {
		total := 0
		for _, n := range nodes {
			total += 1 + count(n.Children)
		}
		return total
	}
	if got := count(roots); got != 1 {
		t.Fatalf("dangling node leaked into tree, total nodes %d", got)
	}
}

func TestBuildMenuTreeNilSortSortsLast(t *testing.T) {
	menus := []*models.Menu{
		menu(1, 0, nil),
		menu(2, 0, intPtr(5)),
		menu(3, 0, intPtr(1)),
	}

	roots := BuildMenuTree(menus)

	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}
	if roots[0].ID != 3 || roots[1].ID != 2 || roots[2].ID != 1 {
		t.Fatalf("nil sort should come last: got [%d %d %d]", roots[0].ID, roots[1].ID, roots[2].ID)
	}
}

func TestBuildMenuTreeNullParentTreatedAsRoot(t *testing.T) {
	m := menu(1, 0, intPtr(1))
	m.ParentID = nil

	roots := BuildMenuTree([]*models.Menu{m})

	if len(roots) != 1 || roots[0].ID != 1 {
		t.Fatalf("nil parent should be root, got %+v", roots)
	}
}

func TestBuildMenuTreeDoesNotMutateInput(t *testing.T) {
	menus := []*models.Menu{
		menu(3, 1, intPtr(1)),
		menu(1, 0, intPtr(2)),
		menu(2, 0, intPtr(1)),
	}

	BuildMenuTree(menus)

	if menus[0].ID != 3 || menus[1].ID != 1 || menus[2].ID != 2 {
		t.Fatalf("input slice order changed: %+v", menus)
	}
}
