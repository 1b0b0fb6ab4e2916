package studio

import (
	"net/url"
	"strings"
)

// Site holds the organization-wide settings used to build canonical URLs,
// metadata and structured data.
type Site struct {
	Name          string   `toml:"name"`
	AlternateName string   `toml:"alternate_name"`
	BaseURL       string   `toml:"base_url"`
	Logo          string   `toml:"logo"`
	Description   string   `toml:"description"`
	Email         string   `toml:"email"`
	SameAs        []string `toml:"same_as"`
	Country       string   `toml:"country"`
	Region        string   `toml:"region"`
	Founder       string   `toml:"founder"`
	FoundingDate  string   `toml:"founding_date"`
	Employees     string   `toml:"employees"`
	AreaServed    string   `toml:"area_served"`
	PriceRange    string   `toml:"price_range"`

	// Tier1 lists the flagship solution slugs, in display order.
	Tier1 []string `toml:"tier1"`
}

// DefaultSite returns the settings of the production site.
func DefaultSite() Site {
	return Site{
		Name:          "Lime Green Studios",
		AlternateName: "Lime Green Labs",
		BaseURL:       "https://limegreen.studio",
		Logo:          "/LGS.svg",
		Description:   "Leading product development agency. We build and ship your product from 0 to 1 in just 4 weeks. Product studio specializing in MVP development, AI products, and SaaS applications.",
		Email:         "contact@limegreen.studio",
		SameAs: []string{
			"https://instagram.com/limegreen.studio",
			"https://www.linkedin.com/company/lime-green-studios/",
		},
		Country:      "IN",
		Region:       "Tamil Nadu",
		Founder:      "Lime Green Studios Team",
		FoundingDate: "2023",
		Employees:    "15",
		AreaServed:   "Worldwide",
		PriceRange:   "$$$",
		Tier1: []string{
			"product-development-agency",
			"software-development-agency",
			"ai-development-agency",
			"software-product-studio",
		},
	}
}

// Validate returns an error if the site settings cannot produce absolute URLs.
func (s Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "site base URL %q must be absolute", s.BaseURL)
	}
	return nil
}

// URL returns the absolute URL for a site path.
// An empty path returns the base URL itself.
// Example: URL("/solutions/saas-development") → https://limegreen.studio/solutions/saas-development
func (s Site) URL(path string) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return base
	}
	return base + "/" + path
}

// LogoURL returns the absolute logo URL.
func (s Site) LogoURL() string {
	if strings.HasPrefix(s.Logo, "http://") || strings.HasPrefix(s.Logo, "https://") {
		return s.Logo
	}
	return s.URL(s.Logo)
}

// Route paths shared by the build output, metadata and sitemap.
const (
	SolutionsPath   = "/solutions"
	BlogsPath       = "/blogs"
	CaseStudiesPath = "/case-studies"
)

// SolutionPath returns the route of a solution page.
func SolutionPath(slug string) string {
	return SolutionsPath + "/" + slug
}

// BlogPath returns the route of a blog post.
func BlogPath(slug string) string {
	return BlogsPath + "/" + slug
}
