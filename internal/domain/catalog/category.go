package catalog

import (
	"sort"
	"strings"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category represents a product category in a hierarchical tree structure
type Category struct {
	shared.BaseEntity
	Name            string     `gorm:"type:varchar(255);not null"`
	Slug            string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description     string     `gorm:"type:text"`
	ImageURL        string     `gorm:"type:varchar(500)"`
	IsActive        bool       `gorm:"not null"`
	MetaTitle       string     `gorm:"type:varchar(255)"`
	MetaDescription string     `gorm:"type:varchar(500)"`
	ProductCount    int        `gorm:"not null;default:0"`
	ParentID        *uuid.UUID `gorm:"type:uuid;index"`
	BrandID         *uuid.UUID `gorm:"type:uuid;index"`
	Brand           *Brand     `gorm:"foreignKey:BrandID"`
	Children        []Category `gorm:"-"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a root category
func NewCategory(name, slug string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 255 characters")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		IsActive:   true,
	}, nil
}

// NewChildCategory creates a category under parent
func NewChildCategory(parent *Category, name, slug string) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category cannot be nil")
	}
	c, err := NewCategory(name, slug)
	if err != nil {
		return nil, err
	}
	parentID := parent.ID
	c.ParentID = &parentID
	return c, nil
}

// IsRoot returns true if this is a root category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// BuildCategoryTree nests a flat category list by parent.
// Categories whose parent is missing from the list are treated as roots.
// Siblings are ordered by name.
func BuildCategoryTree(flat []Category) []Category {
	present := make(map[uuid.UUID]bool, len(flat))
	for _, c := range flat {
		present[c.ID] = true
	}

	children := make(map[uuid.UUID][]Category)
	var roots []Category
	for _, c := range flat {
		c.Children = nil
		if c.ParentID == nil || !present[*c.ParentID] {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	var attach func(nodes []Category, depth int) []Category
	attach = func(nodes []Category, depth int) []Category {
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
		// a cycle in parent links would otherwise recurse forever
		if depth > len(flat) {
			return nodes
		}
		for i := range nodes {
			if kids, ok := children[nodes[i].ID]; ok {
				nodes[i].Children = attach(kids, depth+1)
			}
		}
		return nodes
	}

	if roots == nil {
		return []Category{}
	}
	return attach(roots, 0)
}
