package catalog

// DefaultDefinitions returns the built-in templates.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Name: "52 / 17",
			Intervals: []IntervalDefinition{
				{Name: "Work for 52 minutes", Length: "52:00"},
				{Name: "Pause for 17 minutes", Length: "17:00"},
			},
		},
		{
			Name: "Pomodoro",
			Intervals: []IntervalDefinition{
				{Name: "Work for 25 minutes", Length: "25:00"},
				{Name: "Pause for 5 minutes", Length: "5:00"},
			},
		},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return MustParse(DefaultDefinitions())
}
