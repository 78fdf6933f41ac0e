package workshop

// Tag is one entry of the controlled tag vocabulary collections can carry.
type Tag struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}
