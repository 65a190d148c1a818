package testimonial

type Testimonial struct {
	ID              uint   `json:"id"`
	CustomerName    string `json:"customerName"`
	Location        string `json:"location"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type CreateParams struct {
	CustomerName    string
	Location        string
	Rating          int
	Comment         string
	ProfileImageURL string
}
