package services

import (
	"sort"

	"wms/internal/models"
)

// MenuNode 层级菜单节点
type MenuNode struct {
	ID         uint        `json:"id"`
	ParentID   *uint       `json:"parent_id"`
	Title      string      `json:"title"`
	Path       string      `json:"path"`
	Component  string      `json:"component"`
	Type       string      `json:"type"`
	Permission string      `json:"permission"`
	Sort       *int        `json:"sort"`
	Icon       string      `json:"icon"`
	Children   []*MenuNode `json:"children"`
}

// BuildMenuTree 将平铺菜单装配为层级森林。纯函数，不修改入参。
// 父ID为空或0的记录成为根；父ID指向不在本批次中的菜单
// （例如被角色过滤掉的分支）时该节点被丢弃，不会提升为根。
// 根和每层子节点都按 sort 升序排列，空 sort 排在最后。
func BuildMenuTree(menus []*models.Menu) []*MenuNode {
	cache := make(map[uint]*MenuNode, len(menus))
	for _, menu := range menus {
		cache[menu.ID] = toNode(menu)
	}

	roots := make([]*MenuNode, 0, len(menus))
	for _, menu := range menus {
		current := cache[menu.ID]
		if menu.IsRoot() {
			roots = append(roots, current)
			continue
		}
		if parent, ok := cache[*menu.ParentID]; ok {
			parent.Children = append(parent.Children, current)
		}
	}

	sortNodes(roots)
	for _, root := range roots {
		sortChildrenRecursively(root)
	}
	return roots
}

func toNode(menu *models.Menu) *MenuNode {
	return &MenuNode{
		ID:         menu.ID,
		ParentID:   menu.ParentID,
		Title:      menu.Title,
		Path:       menu.Path,
		Component:  menu.Component,
		Type:       menu.Type,
		Permission: menu.Permission,
		Sort:       menu.Sort,
		Icon:       menu.Icon,
		Children:   []*MenuNode{},
	}
}

// sortNodes 按 sort 升序稳定排序，空值排在所有非空值之后
func sortNodes(nodes []*MenuNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Sort, nodes[j].Sort
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

func sortChildrenRecursively(node *MenuNode) {
	sortNodes(node.Children)
	for _, child := range node.Children {
		sortChildrenRecursively(child)
	}
}
