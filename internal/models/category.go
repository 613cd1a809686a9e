package models

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

type Category struct {
	CategoryID int          `json:"category_id"`
	UserID     int          `json:"user_id"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
}

// CategoryPatch carries a partial update. Only non-nil fields are applied.
type CategoryPatch struct {
	Name *string
	Type *CategoryType
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
}
