package store

import (
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// catalog is the fixed category list plus a name index.
type catalog struct {
	categories []entity.Category
	byName     map[string]int
}

func newCatalog(categories []entity.Category) (*catalog, error) {
	c := &catalog{
		categories: make([]entity.Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
	}

	for _, cat := range categories {
		if !cat.Type.IsValid() {
			return nil, fmt.Errorf("category %q: %w", cat.Name, domainerror.ErrInvalidCategoryType)
		}
		name := strings.TrimSpace(cat.Name)
		if _, exists := c.byName[name]; exists {
			return nil, fmt.Errorf("category %q: %w", name, domainerror.ErrCategoryNameExists)
		}
		cat.Name = name
		c.byName[name] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	return c, nil
}

func (c *catalog) lookup(name string) (entity.Category, bool) {
	i, ok := c.byName[name]
	if !ok {
		return entity.Category{}, false
	}
	return c.categories[i], true
}

func (c *catalog) all() []entity.Category {
	out := make([]entity.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *catalog) byType(categoryType entity.CategoryType) []entity.Category {
	out := make([]entity.Category, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.Type == categoryType {
			out = append(out, cat)
		}
	}
	return out
}

// colorFor returns the catalog color for name, or the neutral default.
func (c *catalog) colorFor(name string) string {
	if cat, ok := c.lookup(name); ok {
		return cat.Color
	}
	return entity.DefaultCategoryColor
}
