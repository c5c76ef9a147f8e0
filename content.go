package main

import "github.com/Zachkp/scroll-portfolio/internal/section"

type Job struct {
	Title        string
	Company      string
	StartDate    string
	EndDate      string
	LogoPath     string
	BulletPoints []string
}

type Project struct {
	Title        string
	Description  string
	Technologies []string
}

type SkillGroup struct {
	Title  string
	Skills []Skill
}

type Skill struct {
	Name  string
	Level int
}

type NavItem struct {
	Name    string
	Href    string
	Section section.Section
}

var (
	AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes. 
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a 
	different language, experimenting with tools, or solving tricky problems.
	When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends, 
	or chasing down a new challenge outside the screen.`

	Jobs = []Job{
		{
			Title:     "Presentation Expert",
			Company:   "Target",
			StartDate: "Aug 2023",
			EndDate:   "Present",
			LogoPath:  "images/TargetLogo.jpg",
			BulletPoints: []string{
				"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
				"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
				"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
			},
		},
		{
			Title:     "Manager",
			Company:   "Jasons Catered Events",
			StartDate: "Aug 2016",
			EndDate:   "Present",
			LogoPath:  "images/jasonsCateringLogo.png",
			BulletPoints: []string{
				"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
				"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
				"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
			},
		},
	}

	Education = []Job{
		{
			Title:     "Bachelor of Computer Science",
			Company:   "Western Governors University",
			StartDate: "Sept 2019",
			EndDate:   "May 2023",
			LogoPath:  "images/WGU-logo.png",
			BulletPoints: []string{
				"Graduated Magna Cum Laude with 3.8 GPA",
				"Relevant coursework: Data Structures, Algorithms, Web Development",
				"Senior project: Machine Learning recommendation system",
			},
		},
	}

	Skills = []SkillGroup{
		{Title: "Languages", Skills: []Skill{{"Go", 90}, {"Python", 80}, {"JavaScript", 75}, {"SQL", 75}}},
		{Title: "Web", Skills: []Skill{{"Gin", 85}, {"HTMX", 80}, {"Tailwind CSS", 75}, {"Alpine.js", 70}}},
		{Title: "Tools", Skills: []Skill{{"Git", 90}, {"Linux", 85}, {"SQLite", 80}, {"Docker", 70}}},
	}

	Projects = []Project{
		{
			Title: "Terminal Mail",
			Description: `A terminal-based email client built in Go with fuzzyfinder capabilities
	using the Charmbracelet TUI framework and go-imap.`,
			Technologies: []string{"Go", "Bubble Tea", "go-imap"},
		},
		{
			Title: "Terminal Music",
			Description: `A terminal-based music streaming application built in Go with an elegant TUI 
	interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`,
			Technologies: []string{"Go", "yt-dlp", "mpv"},
		},
		{
			Title: "Game Recommender",
			Description: `A machine learning-powered web application that uses TF-IDF vectorization and cosine 
	similarity to recommend games based on content analysis, featuring interactive data visualizations and 
	real-time filtering by user reviews and ratings.`,
			Technologies: []string{"Python", "scikit-learn", "Flask"},
		},
		{
			Title: "This Portfolio",
			Description: `A scrolling portfolio built with Go and Gin. The page reports its scroll position and the
	server answers with the active section, its theme and the parallax offsets for each decorative layer.`,
			Technologies: []string{"Go", "Gin", "WebSocket", "SQLite"},
		},
	}
)

// navItems builds the header links in page order.
func navItems() []NavItem {
	items := make([]NavItem, 0, len(section.Order))
	for _, s := range section.Order {
		items = append(items, NavItem{Name: s.Title(), Href: "#" + string(s), Section: s})
	}
	return items
}
