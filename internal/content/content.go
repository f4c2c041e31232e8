// Package content is the static text of the portfolio.
package content

import "time"

type Link struct {
	Label string
	Href  string
	Kind  string // email, phone, linkedin, github, location
}

type Job struct {
	Title    string
	Company  string
	Period   string
	Projects []Highlight
	Skills   []string
}

type Highlight struct {
	Name string
	Text string
}

type Education struct {
	Title  string
	School string
	Period string
	Note   string
}

type SkillGroup struct {
	Name   string
	Skills []string
}

type Certificate struct {
	Name   string
	Issuer string
	Year   int
}

// Typewriter configures the rotating tagline under the name.
type Typewriter struct {
	Phrases     []string
	TypeDelay   time.Duration
	DeleteSpeed time.Duration
	Loop        bool
}

const (
	Owner    = "Rachid Ezzahraouy"
	Initials = "RE"
	Role     = "Software Engineer & Full Stack Developer"
	Title    = "Rachid Ezzahraouy | Lead Developer"
	Summary  = "Portfolio of Rachid Ezzahraouy, Lead Developer at OS Websolutions"
)

var (
	Tagline = Typewriter{
		Phrases: []string{
			"Software Engineer",
			"Lead Developer at OS Websolutions",
			"Full Stack Developer",
			"Machine Learning Enthusiast",
			"Data Science Student",
		},
		TypeDelay:   75 * time.Millisecond,
		DeleteSpeed: 50 * time.Millisecond,
		Loop:        true,
	}

	Bio = []Highlight{
		{
			Name: "I'm a dedicated software engineer",
			Text: "with a relentless curiosity about complex systems. I quickly absorb new technologies and thrive in fast-paced, data-driven environments.",
		},
		{
			Name: "My approach",
			Text: "Strong communication and collaboration skills enable me to integrate seamlessly into any team, while my passion for problem-solving drives me to develop innovative, efficient solutions.",
		},
	}

	Email    = Link{Label: "rachid.ezz.dev@gmail.com", Href: "mailto:rachid.ezz.dev@gmail.com", Kind: "email"}
	Phone    = Link{Label: "+212 777 969 175", Href: "tel:+212777969175", Kind: "phone"}
	LinkedIn = Link{Label: "linkedin.com/in/rezzahra", Href: "https://www.linkedin.com/in/rezzahra/", Kind: "linkedin"}
	GitHub   = Link{Label: "github.com/reroreo1", Href: "https://github.com/reroreo1", Kind: "github"}
	Location = Link{Label: "Dcheira El Jihadia, Agadir", Kind: "location"}

	Socials  = []Link{Email, LinkedIn, GitHub}
	Channels = []Link{Email, Phone, Location, LinkedIn}

	Jobs = []Job{
		{
			Title:   "Lead Developer",
			Company: "OS Websolutions",
			Period:  "06/2024 - present",
			Projects: []Highlight{
				{Name: "Halal Sheikh App", Text: "Developed a cross-platform barcode scanning app using Flutter with a Strapi CMS backend, allowing users to check if products are halal or haram by scanning barcodes or searching by name. Integrated OCR for ingredient extraction, implemented scan history and product addition, and handled deployment on App Store and Google Play."},
				{Name: "ActiveCSP", Text: "Built an OSINT platform to monitor user assets like IPs, domains, and emails using tools such as Nmap, Nuclei, and honeypots. Deployed 15 global honeypots on Azure VMs, developed scanning services with FastAPI, Docker, and Bash, and orchestrated the backend using Azure Functions."},
				{Name: "Leadshift", Text: "Developed an AI-powered lead generation platform that automates cold outreach via emails and calls. Implemented the frontend using Next.js and ShadCN, and built the backend with NestJS. Oversaw the overall system design and selected the tech stack to support scalability and performance."},
			},
		},
		{
			Title:   "Full Stack Developer",
			Company: "UMoP College of Computing",
			Period:  "11/2023 - 04/2024",
			Skills:  []string{"Python (Programming Language)", "NumPy", "Angular"},
		},
	}

	Schools = []Education{
		{Title: "Member, software architect", School: "1337 Benguerir", Period: "2026", Note: "Specialized in software architecture and advanced programming techniques."},
		{Title: "École nationale des sciences appliquées d'Agadir", School: "Computer Science & Engineering", Period: "2018 - 2020", Note: "Focused on computer science fundamentals and engineering principles."},
	}

	SkillGroups = []SkillGroup{
		{Name: "Frontend", Skills: []string{"Next.js", "Angular", "React.js", "TypeScript", "JavaScript", "TailwindCSS", "Bootstrap", "Flutter", "Dart", "Version Control"}},
		{Name: "Databases", Skills: []string{"MySQL", "PostgreSQL", "MongoDB", "GraphQL"}},
		{Name: "DevOps", Skills: []string{"Docker", "Linux", "AWS", "Digital Ocean", "Microsoft Azure"}},
		{Name: "Backend", Skills: []string{"Python", "Flask", "FastAPI", "JavaScript", "TypeScript", "Node.js", "Express"}},
	}

	Certificates = []Certificate{
		{Name: "Meta Full Stack Developer Specialization (React-Django)", Issuer: "Meta", Year: 2023},
		{Name: "Programming with Javascript", Issuer: "Coursera", Year: 2023},
		{Name: "Data Structure and Algorithmic using Javascript", Issuer: "Coursera", Year: 2023},
	}

	ContactBlurb = "I'm always open to discussing new projects, creative ideas or opportunities to be part of your vision."
)
