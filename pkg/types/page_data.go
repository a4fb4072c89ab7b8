package types

import "html/template"

type NavbarData struct {
	Links           []NavLink
	ScrollThreshold int
	ScrolledClasses string
	Classes         string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Head   template.HTML
	Navbar NavbarData
	Year   int
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type TrialFormData struct {
	Submitting bool
	Status     SubmissionStatus
	Values     TrialRequest
}

type HomePageData struct {
	BasePageData
	SceneURL     string
	Highlights   []string
	Amenities    []Highlight
	AboutImage   string
	Programs     []Program
	Trainers     []Trainer
	Gallery      []GalleryImage
	Plans        []Plan
	Testimonials []Testimonial
	Contact      ContactData
	Trial        TrialFormData
}
