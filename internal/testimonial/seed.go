package testimonial

import (
	"context"
	"fmt"
)

// Seed loads the storefront's initial testimonials.
func Seed(ctx context.Context, repo Repository) error {
	testimonials := []CreateParams{
		{
			CustomerName:    "Priya Sharma",
			Location:        "Home Chef, Bangalore",
			Rating:          5,
			Comment:         "The black pepper from WhitPepper Shop has completely transformed my cooking. The aroma and flavor are incomparable to anything I've used before!",
			ProfileImageURL: "https://randomuser.me/api/portraits/women/62.jpg",
		},
		{
			CustomerName:    "Rajiv Mehta",
			Location:        "Software Engineer, Mumbai",
			Rating:          5,
			Comment:         "I gifted the Coorg Signature Collection to my mother, and she hasn't stopped raving about it. The packaging is beautiful, and the spices are incredibly fresh!",
			ProfileImageURL: "https://randomuser.me/api/portraits/men/42.jpg",
		},
		{
			CustomerName:    "Meera Patel",
			Location:        "Tea Enthusiast, Delhi",
			Rating:          4,
			Comment:         "The cardamom pods are simply outstanding! They've elevated my chai to a whole new level. I appreciate the sustainable packaging and quick delivery as well.",
			ProfileImageURL: "https://randomuser.me/api/portraits/women/24.jpg",
		},
	}

	for _, t := range testimonials {
		if _, err := repo.Create(ctx, t); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", t.CustomerName, err)
		}
	}
	return nil
}
