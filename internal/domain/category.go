package domain

import "strings"

// CategoryProps is the plain-data snapshot of a Category aggregate.
type CategoryProps struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Category groups products under a named, colored label. All mutations go
// through validated methods; adapters rebuild it with RehydrateCategory.
type Category struct {
	props CategoryProps
}

// NewCategory validates and normalizes the given props into a Category.
func NewCategory(props CategoryProps) (*Category, error) {
	if err := validateCategory(props); err != nil {
		return nil, err
	}
	return &Category{props: normalizeCategory(props)}, nil
}

// RehydrateCategory rebuilds a Category from persisted state without
// re-running creation validation.
func RehydrateCategory(props CategoryProps) *Category {
	return &Category{props: normalizeCategory(props)}
}

// CategoryPatch holds a partial update; nil fields are left untouched.
type CategoryPatch struct {
	Title       *string
	Description *string
	Color       *string
}

// Update merges the patch onto the current state and revalidates the merged
// result. The aggregate is unchanged when validation fails.
func (c *Category) Update(patch CategoryPatch) error {
	next := c.props
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Color != nil {
		next.Color = *patch.Color
	}
	if err := validateCategory(next); err != nil {
		return err
	}
	c.props = normalizeCategory(next)
	return nil
}

// Snapshot returns the current state as a plain struct.
func (c *Category) Snapshot() CategoryProps { return c.props }

// ID returns the category id.
func (c *Category) ID() string { return c.props.ID }

func normalizeCategory(p CategoryProps) CategoryProps {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Color = strings.TrimSpace(p.Color)
	return p
}

func validateCategory(p CategoryProps) error {
	title := strings.TrimSpace(p.Title)
	desc := strings.TrimSpace(p.Description)

	if len(title) <= 2 {
		return NewValidationError("title must be longer than 2 characters")
	}
	if len(title) >= 100 {
		return NewValidationError("title must be shorter than 100 characters")
	}
	if len(desc) <= 2 {
		return NewValidationError("description must be longer than 2 characters")
	}
	if len(desc) >= 500 {
		return NewValidationError("description must be shorter than 500 characters")
	}
	return nil
}
