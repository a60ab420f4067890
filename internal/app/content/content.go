// Package content holds the static page descriptions of the site. Records are
// package-level and never mutated; Lookup hands out deep copies so callers
// cannot disturb the labels other renders rely on.
package content

import (
	"slices"

	"github.com/FACorreiaa/go-nextapp/internal/app/models"
)

const siteName = "NextApp"

var homeFeatures = []models.Entry{
	{Name: "Fast Performance", Detail: "Built with Next.js 16 for optimal performance and SEO."},
	{Name: "Fully Tested", Detail: "Comprehensive UI testing with Playwright ensures reliability."},
	{Name: "CI/CD Ready", Detail: "GitHub Actions workflow for automated testing and deployment."},
}

var homeTechStack = []models.Entry{
	{Name: "Next.js", Detail: "16"},
	{Name: "React", Detail: "19"},
	{Name: "Tailwind CSS", Detail: "4"},
	{Name: "TypeScript", Detail: "5"},
	{Name: "Playwright", Detail: "1.48"},
	{Name: "GitHub Actions", Detail: "-"},
	{Name: "Vercel", Detail: "-"},
	{Name: "ESLint", Detail: "9"},
}

var aboutFeatures = []models.Entry{
	{Name: "Modern Stack", Detail: "Built with Next.js 16, React 19, and Tailwind CSS for optimal performance"},
	{Name: "Comprehensive Testing", Detail: "Full UI test coverage with Playwright for reliability and confidence"},
	{Name: "Automated CI/CD", Detail: "GitHub Actions workflow for lint, test, build, and deployment automation"},
	{Name: "Multi-Platform Deployment", Detail: "Ready to deploy on Vercel, Netlify, Docker, or any Node.js hosting"},
	{Name: "Production-Ready", Detail: "Environment variables, security best practices, and optimization included"},
	{Name: "Well-Documented", Detail: "Clear folder structure, test examples, and deployment guides"},
}

var aboutTechStack = []models.Entry{
	{Name: "Frontend", Detail: "Next.js, React, Tailwind CSS, TypeScript"},
	{Name: "Testing", Detail: "Playwright, ESLint"},
	{Name: "CI/CD", Detail: "GitHub Actions"},
	{Name: "Deployment", Detail: "Vercel, Netlify, Docker, Node.js"},
}

var homePage = models.Page{
	Route: models.RouteHome,
	Title: siteName + " - Production-ready Next.js starter",
	Sections: []models.Section{
		{
			ID:           "hero",
			Layout:       models.LayoutHero,
			Heading:      "Welcome to NextApp",
			HeadingLabel: "hero-title",
			Body: []string{
				"A production-ready Next.js application with modern UI, comprehensive testing, and automated CI/CD deployment.",
			},
			Elements: []models.Element{
				{Label: "hero-cta-primary", Kind: models.KindButton, Enabled: true, Text: "Get Started"},
				{Label: "hero-cta-secondary", Kind: models.KindButton, Enabled: true, Text: "Learn More"},
			},
		},
		{
			ID:      "features",
			Layout:  models.LayoutCards,
			Heading: "Features",
			Entries: homeFeatures,
		},
		{
			ID:      "tech-stack",
			Layout:  models.LayoutGrid,
			Heading: "Tech Stack",
			Entries: homeTechStack,
		},
		{
			ID:      "cta",
			Layout:  models.LayoutCTA,
			Heading: "Ready to Get Started?",
			Body: []string{
				"Deploy your Next.js application in minutes with our production-ready setup.",
			},
			Elements: []models.Element{
				{Label: "cta-deploy-btn", Kind: models.KindButton, Enabled: true, Text: "Deploy Now"},
			},
		},
	},
}

var aboutPage = models.Page{
	Route: models.RouteAbout,
	Title: "About - " + siteName,
	Sections: []models.Section{
		{
			ID:      "about-hero",
			Layout:  models.LayoutHero,
			Heading: "About NextApp",
			Body: []string{
				"A comprehensive example of how to build, test, and deploy a modern Next.js application with production-ready practices.",
			},
		},
		{
			ID:      "mission",
			Layout:  models.LayoutProse,
			Heading: "Our Mission",
			Body: []string{
				"To demonstrate a modern, production-ready Next.js application that follows industry best practices for UI development, testing, and deployment. This project serves as a reference implementation for teams looking to build scalable web applications.",
			},
		},
		{
			ID:      "special",
			Layout:  models.LayoutList,
			Heading: "What Makes This Special",
			Entries: aboutFeatures,
		},
		{
			ID:      "technology-stack",
			Layout:  models.LayoutCards,
			Heading: "Technology Stack",
			Entries: aboutTechStack,
		},
		{
			ID:      "about-cta",
			Layout:  models.LayoutCTA,
			Heading: "Ready to Learn More?",
			Body: []string{
				"Check out our documentation or deploy your own instance",
			},
			Elements: []models.Element{
				{Label: "about-cta-btn", Kind: models.KindButton, Enabled: true, Text: "Get Started"},
			},
		},
	},
}

var pages = map[models.Route]models.Page{
	models.RouteHome:  homePage,
	models.RouteAbout: aboutPage,
}

// Routes lists the known routes in navigation order.
func Routes() []models.Route {
	return []models.Route{models.RouteHome, models.RouteAbout}
}

// Lookup returns the page served at route. The second result is false for
// unknown routes.
func Lookup(route models.Route) (models.Page, bool) {
	p, ok := pages[route]
	if !ok {
		return models.Page{}, false
	}
	return clonePage(p), true
}

// SiteName is the brand shown by the logo and page titles.
func SiteName() string {
	return siteName
}

func clonePage(p models.Page) models.Page {
	out := p
	out.Sections = make([]models.Section, len(p.Sections))
	for i, s := range p.Sections {
		s.Body = slices.Clone(s.Body)
		s.Entries = slices.Clone(s.Entries)
		s.Elements = slices.Clone(s.Elements)
		out.Sections[i] = s
	}
	return out
}
