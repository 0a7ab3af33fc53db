// Package portfolio holds the static page content.
package portfolio

// Profile is the hero "about me" card.
type Profile struct {
	Name     string
	Tag      string
	Lines    []string
	Email    string
	LinkedIn string
}

// Card is a promotional service card.
type Card struct {
	Title       string
	Description string
	Tag         string
	ComingSoon  bool
	Link        string
}

// Owner is the site owner's profile.
var Owner = Profile{
	Name: "Hi, I'm Dee",
	Tag:  "About",
	Lines: []string{
		"I'm from the US. I like to create things.",
		"I'm a pretty simple guy.",
		"If you want to work together, shoot me an email.",
	},
	Email:    "dee@evening.info",
	LinkedIn: "https://www.linkedin.com/in/diellee/",
}

// Footer is the copyright line at the bottom of the page.
const Footer = "EVENING© 2025 All Rights Reserved"

// Services lists the service cards in display order.
var Services = []Card{
	{Title: "MediaTiger", Description: "Ultimate Media Hub For Creators", Tag: "Media", Link: "https://mediatiger.co"},
	{Title: "Video Production", Description: "Professional video editing and post-production services", Tag: "Media", ComingSoon: true},
	{Title: "Audio Engineering", Description: "High-quality audio production and sound design", Tag: "Audio", ComingSoon: true},
	{Title: "Graphic Design", Description: "Creative visual solutions for your brand and marketing needs", Tag: "Design", ComingSoon: true},
	{Title: "Social Media", Description: "Strategic social media management and content creation", Tag: "Marketing", ComingSoon: true},
	{Title: "Digital Art", Description: "Custom digital artwork and illustrations", Tag: "Art", ComingSoon: true},
}

// Badge is the corner label of a card.
func (c Card) Badge() string {
	if c.ComingSoon {
		return "Coming Soon"
	}
	return c.Tag
}

// Wrap breaks s into lines of at most width characters on word boundaries.
// Words longer than width get a line of their own.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var (
		lines []string
		line  string
	)
	word := ""
	flush := func() {
		if word == "" {
			return
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' || r == '\n' {
			flush()
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
