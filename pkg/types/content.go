package types

import "html/template"

type NavLink struct {
	Label string
	Href  string
}

type Highlight struct {
	Label string
	Icon  string
}

type Program struct {
	Title       string
	Description string
	Icon        string
}

type Trainer struct {
	Name      string
	Specialty string
	ImageURL  string
}

type GalleryImage struct {
	URL string
	Alt string
}

type Plan struct {
	Name  string
	Price string
	Perks []string
}

type Testimonial struct {
	Name  string
	Quote string
	Stars int
}

type ContactData struct {
	Address      string
	Phone        string
	PhoneHref    template.URL
	Email        string
	InstagramURL string
	FacebookURL  string
	WhatsAppURL  string
	Hours        string
	MapEmbedURL  string
	MapTitle     string
}
