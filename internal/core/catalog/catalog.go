// Package catalog holds the read-only list of interval templates the timer
// can run. Catalog data is validated once at construction; a Catalog that
// exists is always well formed.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"intervaltimer/internal/core/model"
)

// IntervalDefinition is the textual form of an interval, e.g. {"Work", "25:00"}.
type IntervalDefinition struct {
	Name   string
	Length string
}

// Definition is the textual form of a template.
type Definition struct {
	Name      string
	Intervals []IntervalDefinition
}

// Catalog is an ordered, immutable set of uniquely named templates.
type Catalog struct {
	templates []model.Template
	index     map[string]int
}

// New validates templates and builds a catalog from them.
func New(templates []model.Template) (*Catalog, error) {
	catalog := &Catalog{
		templates: make([]model.Template, 0, len(templates)),
		index:     make(map[string]int, len(templates)),
	}

	for position, template := range templates {
		if strings.TrimSpace(template.Name) == "" {
			return nil, fmt.Errorf("%w: template #%d has no name", model.ErrInvalidCatalog, position+1)
		}
		if _, exists := catalog.index[template.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate template %q", model.ErrInvalidCatalog, template.Name)
		}
		if len(template.Intervals) == 0 {
			return nil, fmt.Errorf("%w: template %q has no intervals", model.ErrInvalidCatalog, template.Name)
		}

		intervals := make([]model.Interval, len(template.Intervals))
		for intervalIndex, interval := range template.Intervals {
			if err := validateInterval(interval); err != nil {
				return nil, fmt.Errorf("%w: template %q interval #%d: %v", model.ErrInvalidCatalog, template.Name, intervalIndex+1, err)
			}
			intervals[intervalIndex] = interval
		}

		catalog.index[template.Name] = len(catalog.templates)
		catalog.templates = append(catalog.templates, model.Template{
			Name:      template.Name,
			Intervals: intervals,
		})
	}

	return catalog, nil
}

// Parse converts textual definitions into a validated catalog.
func Parse(definitions []Definition) (*Catalog, error) {
	templates := make([]model.Template, 0, len(definitions))
	for _, definition := range definitions {
		template := model.Template{Name: definition.Name}
		for _, intervalDefinition := range definition.Intervals {
			duration, err := model.ParseClock(intervalDefinition.Length)
			if err != nil {
				return nil, fmt.Errorf("%w: template %q interval %q: %v", model.ErrInvalidCatalog, definition.Name, intervalDefinition.Name, err)
			}
			template.Intervals = append(template.Intervals, model.Interval{
				Name:     intervalDefinition.Name,
				Duration: duration,
			})
		}
		templates = append(templates, template)
	}
	return New(templates)
}

// MustParse is Parse for static catalogs; it panics on invalid data.
func MustParse(definitions []Definition) *Catalog {
	catalog, err := Parse(definitions)
	if err != nil {
		panic(err)
	}
	return catalog
}

// FindTemplate looks a template up by name.
func (catalog *Catalog) FindTemplate(name string) (model.Template, bool) {
	position, ok := catalog.index[name]
	if !ok {
		return model.Template{}, false
	}
	return catalog.templates[position], true
}

// First returns the first template, if any.
func (catalog *Catalog) First() (model.Template, bool) {
	if len(catalog.templates) == 0 {
		return model.Template{}, false
	}
	return catalog.templates[0], true
}

// Names returns template names in catalog order.
func (catalog *Catalog) Names() []string {
	names := make([]string, len(catalog.templates))
	for position, template := range catalog.templates {
		names[position] = template.Name
	}
	return names
}

// Len returns the number of templates.
func (catalog *Catalog) Len() int {
	return len(catalog.templates)
}

func validateInterval(interval model.Interval) error {
	if strings.TrimSpace(interval.Name) == "" {
		return fmt.Errorf("interval has no name")
	}
	if interval.Duration < 0 {
		return fmt.Errorf("negative duration %s", interval.Duration)
	}
	if interval.Duration%time.Second != 0 {
		return fmt.Errorf("duration %s is not a whole number of seconds", interval.Duration)
	}
	return nil
}
