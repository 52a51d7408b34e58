// Package content holds the static portfolio payload. It is loaded once at
// startup and treated as read-only afterwards.
package content

import (
	"encoding/json"
	"os"
)

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Hobby struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Portfolio struct {
	Name     string    `json:"name"`
	About    string    `json:"about"`
	Photos   []string  `json:"photos"`
	Projects []Project `json:"projects"`
	Hobbies  []Hobby   `json:"hobbies"`
}

// Hero is the landing-section slice of the portfolio
type Hero struct {
	Name   string   `json:"name"`
	About  string   `json:"about"`
	Photos []string `json:"photos"`
}

func (p *Portfolio) Hero() Hero {
	return Hero{Name: p.Name, About: p.About, Photos: p.Photos}
}

// Load returns the built-in portfolio, overlaid with the JSON file at path
// when one is given.
func Load(path string) (*Portfolio, error) {
	portfolio := Default()
	if path == "" {
		return portfolio, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// Default returns the built-in portfolio payload
func Default() *Portfolio {
	return &Portfolio{
		Name:   "Andrei James",
		About:  "I'm a 4th-year Information Technology student at PUP-Taguig. I love designing modern web experiences and bringing ideas to life through code.",
		Photos: []string{"carou1.jpg", "carou2.png", "carou3.jpg"},
		Projects: []Project{
			{
				Title:       "PUP - FESR",
				Description: "Developed the front-end of a web application managing Faculty Information, Evaluation, and Research Repository.",
				Image:       "/assets/images/fesr.jpg",
			},
			{
				Title:       "HUEnique",
				Description: "Built an interactive color analysis web app providing personalized style recommendations.",
				Image:       "/assets/images/hue.jpg",
			},
			{
				Title:       "Wibs Depot",
				Description: "Created the front-end for an e-commerce platform with shopping cart, profile management, and order tracking.",
				Image:       "/assets/images/wibs.jpg",
			},
			{
				Title:       "Too Easy?",
				Description: "Developed a 2D platformer game using GDevelop, a no-code game development platform.",
				Image:       "/assets/images/2ez.jpg",
			},
		},
		Hobbies: []Hobby{
			{
				Icon:        "fa-dumbbell",
				Title:       "Hitting the Gym",
				Description: "Staying active and building strength is an essential part of my daily routine. I enjoy engaging in physical activities that challenge my body and keep me energized, whether it's working out, playing sports, or simply staying on the move.",
			},
			{
				Icon:        "fa-laptop-code",
				Title:       "Learning Tech",
				Description: "I am passionate about exploring the latest web technologies and continuously improving my development skills. I keep up with industry trends, experiment with new tools and frameworks, and refine my coding practices to stay ahead in the ever-evolving world of software development.",
			},
			{
				Icon:        "fa-tv",
				Title:       "Watching Anime",
				Description: "I have a deep appreciation for immersive stories, unique animation, and creative world-building, especially in anime. I love watching Attack on Titan, Chainsaw Man, and Jujutsu Kaisen, as they captivate me with their intense storytelling, stunning visuals, and well-crafted universes.",
			},
			{
				Icon:        "fa-paint-brush",
				Title:       "UI/UX Design",
				Description: "Designing clean, intuitive, and aesthetically pleasing user interfaces is something I take pride in. I strive to create seamless and visually appealing experiences that enhance usability and ensure a positive interaction between users and digital products.",
			},
		},
	}
}
