// Package content holds the literal tables the home page renders.
package content

import (
	"h2hgym/internal/head"
	"h2hgym/pkg/types"
)

const (
	SceneURL   = "https://prod.spline.design/cEecEwR6Ehj4iT8T/scene.splinecode"
	AboutImage = "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=1600&auto=format&fit=crop"
)

func SiteMetadata() head.Metadata {
	return head.Metadata{
		Title:       "H2H Gym – King Mariout | Alexandria Fitness Center",
		Description: "Gym in King Mariout. Alexandria fitness center with weight training, CrossFit, boxing, personal training, classes, and transformations.",
		Keywords: []string{
			"Gym in King Mariout",
			"Alexandria fitness center",
			"H2H Gym",
			"personal training Alexandria",
			"CrossFit Alexandria",
			"boxing gym Alexandria",
		},
		OGTitle: "H2H Gym – King Mariout",
	}
}

func NavLinks() []types.NavLink {
	return []types.NavLink{
		{Label: "About", Href: "#about"},
		{Label: "Programs", Href: "#programs"},
		{Label: "Trainers", Href: "#trainers"},
		{Label: "Facilities", Href: "#gallery"},
		{Label: "Membership", Href: "#plans"},
		{Label: "Contact", Href: "#contact"},
	}
}

func Highlights() []string {
	return []string{"24/7 Access", "Elite Trainers", "Pro Equipment", "Community"}
}

func Amenities() []types.Highlight {
	return []types.Highlight{
		{Label: "Dumbbells up to 60kg", Icon: "dumbbell"},
		{Label: "Dedicated CrossFit rig", Icon: "flame"},
		{Label: "Boxing bags & ring area", Icon: "star"},
		{Label: "Turf & sled track", Icon: "timer"},
	}
}

func Programs() []types.Program {
	return []types.Program{
		{Title: "Weight Training", Description: "Progressive overload programs for strength and size.", Icon: "dumbbell"},
		{Title: "CrossFit", Description: "High-intensity functional training in a purpose-built zone.", Icon: "flame"},
		{Title: "Boxing", Description: "Pad work, bag sessions, and conditioning with coaches.", Icon: "star"},
		{Title: "Personal Training", Description: "One-on-one coaching tailored to your goals and schedule.", Icon: "shield"},
		{Title: "Group Classes", Description: "Motivating weekly classes for all levels.", Icon: "timer"},
	}
}

func Trainers() []types.Trainer {
	return []types.Trainer{
		{
			Name:      "Ahmed Khaled",
			Specialty: "Strength & Hypertrophy",
			ImageURL:  "https://images.unsplash.com/photo-1599058917212-d750089bc07e?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Name:      "Sara Mostafa",
			Specialty: "CrossFit & Conditioning",
			ImageURL:  "https://images.unsplash.com/photo-1540206276207-3af25c08abc4?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Name:      "Omar Hassan",
			Specialty: "Boxing Coach",
			ImageURL:  "https://images.unsplash.com/photo-1521805103424-d8f8430e8931?q=80&w=1200&auto=format&fit=crop",
		},
	}
}

func Gallery() []types.GalleryImage {
	return []types.GalleryImage{
		{URL: "https://images.unsplash.com/photo-1558611848-73f7eb4001a1?q=80&w=1600&auto=format&fit=crop", Alt: "facility-0"},
		{URL: "https://images.unsplash.com/photo-1507398941214-572c25f4b1dc?q=80&w=1600&auto=format&fit=crop", Alt: "facility-1"},
		{URL: "https://images.unsplash.com/photo-1517344884500-c91e2962b854?q=80&w=1600&auto=format&fit=crop", Alt: "facility-2"},
		{URL: "https://images.unsplash.com/photo-1605296867304-46d5465a13f1?q=80&w=1600&auto=format&fit=crop", Alt: "facility-3"},
		{URL: "https://images.unsplash.com/photo-1571907480490-9b2706f2d8b6?q=80&w=1600&auto=format&fit=crop", Alt: "facility-4"},
		{URL: "https://images.unsplash.com/photo-1594737625785-c6683fc4b7d7?q=80&w=1600&auto=format&fit=crop", Alt: "facility-5"},
	}
}

func Plans() []types.Plan {
	return []types.Plan{
		{Name: "Monthly", Price: "EGP 800", Perks: []string{"All‑area access", "Group classes", "Locker room"}},
		{Name: "Quarterly", Price: "EGP 2100", Perks: []string{"Save 12%", "Priority class booking", "1 PT session"}},
		{Name: "Yearly", Price: "EGP 7500", Perks: []string{"Best value", "Free onboarding", "Club events"}},
	}
}

func Testimonials() []types.Testimonial {
	return []types.Testimonial{
		{Name: "Mahmoud", Quote: "Best gym atmosphere in Alexandria. The community keeps me accountable.", Stars: 5},
		{Name: "Nour", Quote: "I lost 9kg in 12 weeks with the transformation program. Coaches are amazing!", Stars: 5},
		{Name: "Karim", Quote: "Serious equipment, serious gains. Love the boxing zone too.", Stars: 5},
	}
}

func Contact() types.ContactData {
	return types.ContactData{
		Address:      "King Mariout, Alexandria, Egypt",
		Phone:        "+20 123 456 7890",
		PhoneHref:    "tel:+201234567890",
		Email:        "info@h2hgym.com",
		InstagramURL: "https://instagram.com",
		FacebookURL:  "https://facebook.com",
		WhatsAppURL:  "https://wa.me/201234567890",
		Hours:        "Hours: Sat–Thu 6:00–24:00, Fri 12:00–22:00",
		MapEmbedURL:  "https://www.google.com/maps?q=King%20Mariout%2C%20Alexandria%2C%20Egypt&output=embed",
		MapTitle:     "H2H Gym – King Mariout",
	}
}
