package levels

import "fmt"

// Catalog is an ordered, editable list of stages. It always holds at least one stage.
type Catalog struct {
	stages []Descriptor
}

// NewCatalog validates and copies descs.
func NewCatalog(descs []Descriptor) (*Catalog, error) {
	if len(descs) == 0 {
		return nil, ErrNoLevels
	}
	for i, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
	}
	c := &Catalog{stages: make([]Descriptor, len(descs))}
	copy(c.stages, descs)
	return c, nil
}

// DefaultCatalog returns a catalog with the built-in stages.
func DefaultCatalog() *Catalog {
	return &Catalog{stages: Defaults()}
}

func (c *Catalog) Len() int { return len(c.stages) }

// At returns stage i, wrapping an out-of-range index to 0.
func (c *Catalog) At(i int) Descriptor {
	return c.stages[c.Index(i)]
}

// Index maps out-of-range indices to 0.
func (c *Catalog) Index(i int) int {
	if i < 0 || i >= len(c.stages) {
		return 0
	}
	return i
}

// Last is the index of the final stage.
func (c *Catalog) Last() int { return len(c.stages) - 1 }

// Stages returns a copy of the list.
func (c *Catalog) Stages() []Descriptor {
	out := make([]Descriptor, len(c.stages))
	copy(out, c.stages)
	return out
}

// Add appends the "new stage" preset and returns its index.
func (c *Catalog) Add() int {
	c.stages = append(c.stages, NewStage())
	return len(c.stages) - 1
}

// Delete removes stage i unless it is the only one left.
// It returns the index that should become current.
func (c *Catalog) Delete(i int) (int, error) {
	if len(c.stages) <= 1 {
		return 0, fmt.Errorf("cannot delete the last remaining stage")
	}
	if i < 0 || i >= len(c.stages) {
		return 0, fmt.Errorf("stage index %d out of range", i)
	}
	c.stages = append(c.stages[:i], c.stages[i+1:]...)
	if i > len(c.stages)-1 {
		i = len(c.stages) - 1
	}
	return i, nil
}

// Replace swaps in an edited descriptor, keeping recorded results.
func (c *Catalog) Replace(i int, d Descriptor) error {
	if i < 0 || i >= len(c.stages) {
		return fmt.Errorf("stage index %d out of range", i)
	}
	if err := d.Validate(); err != nil {
		return err
	}
	d.PlayerScore = c.stages[i].PlayerScore
	d.AIScore = c.stages[i].AIScore
	c.stages[i] = d
	return nil
}

// RecordResult stores the final scores played on stage i.
func (c *Catalog) RecordResult(i, player, ai int) {
	if i < 0 || i >= len(c.stages) {
		return
	}
	c.stages[i].PlayerScore = player
	c.stages[i].AIScore = ai
}

// ClearResults zeroes every recorded result.
func (c *Catalog) ClearResults() {
	for i := range c.stages {
		c.stages[i].PlayerScore = 0
		c.stages[i].AIScore = 0
	}
}
