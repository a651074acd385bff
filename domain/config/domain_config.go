package config

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Canvas geometry
	CanvasWidth  float64
	CanvasHeight float64
	GridSize     float64
	MinItemSize  float64

	// Defaults applied when an item is created without explicit geometry
	DefaultItemWidth    float64
	DefaultItemHeight   float64
	DefaultItemX        float64
	DefaultItemY        float64
	DefaultCornerRadius float64

	// Board constraints
	MaxItemsPerBoard int
	MaxLabelLength   int
	MaxContentLength int
	DefaultBoardName string

	// Editing
	HistoryDepth int
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		CanvasWidth:  1200,
		CanvasHeight: 800,
		GridSize:     20,
		MinItemSize:  80,

		DefaultItemWidth:    220,
		DefaultItemHeight:   160,
		DefaultItemX:        80,
		DefaultItemY:        80,
		DefaultCornerRadius: 8,

		MaxItemsPerBoard: 500,
		MaxLabelLength:   200,
		MaxContentLength: 20000,
		DefaultBoardName: "My Mood Board",

		HistoryDepth: 50,
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	return nil
}
