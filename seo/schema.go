// Package seo builds page metadata, schema.org structured data and the
// site index from content records.
//
// Builders never validate their input beyond what they need to assemble the
// output. Records are validated when the content store loads them.
package seo

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/limegreen-studio/studio"
)

// Context is the vocabulary every structured data object refers to.
const Context = "https://schema.org"

// Object is a structured data node keyed by schema.org vocabulary.
type Object map[string]any

// canonical sorts map keys and escapes HTML so output can be embedded in a
// script element.
var canonical = jsoniter.ConfigCompatibleWithStandardLibrary

// Serialize encodes a structured data object as canonical JSON text.
func Serialize(obj Object) (string, error) {
	b, err := canonical.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Name string
	URL  string
}

// Breadcrumb returns a BreadcrumbList. Positions start at 1.
func Breadcrumb(crumbs []Crumb) Object {
	items := make([]Object, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, Object{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     c.URL,
		})
	}
	return Object{
		"@context":        Context,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// Service returns the Service object of a solution page.
func Service(site studio.Site, s *studio.Solution) Object {
	return Object{
		"@context":    Context,
		"@type":       "Service",
		"name":        s.Name,
		"description": s.MetaDescription,
		"provider": Object{
			"@type": "Organization",
			"name":  site.Name,
			"url":   site.URL(""),
			"logo":  site.LogoURL(),
		},
		"serviceType": s.Name,
		"areaServed": Object{
			"@type": "Place",
			"name":  site.AreaServed,
		},
		"availableChannel": Object{
			"@type":      "ServiceChannel",
			"serviceUrl": site.URL(studio.SolutionPath(s.Slug)),
		},
		"offers": Object{
			"@type":        "Offer",
			"availability": "https://schema.org/InStock",
			"priceRange":   site.PriceRange,
		},
	}
}

// FAQPage returns an FAQPage listing each question with its answer.
func FAQPage(faqs []studio.FAQ) Object {
	questions := make([]Object, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, Object{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": Object{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}
	return Object{
		"@context":   Context,
		"@type":      "FAQPage",
		"mainEntity": questions,
	}
}

// Article returns the Article object of a blog post.
func Article(site studio.Site, b *studio.Blog) Object {
	published := isoDate(b.Date)
	obj := Object{
		"@context":      Context,
		"@type":         "Article",
		"headline":      b.Title,
		"description":   b.Description,
		"datePublished": published,
		"dateModified":  published,
		"author": Object{
			"@type": "Organization",
			"name":  site.Name,
			"url":   site.URL(""),
		},
		"publisher": Object{
			"@type": "Organization",
			"name":  site.Name,
			"logo": Object{
				"@type": "ImageObject",
				"url":   site.LogoURL(),
			},
		},
		"mainEntityOfPage": Object{
			"@type": "WebPage",
			"@id":   site.URL(studio.BlogPath(b.Slug)),
		},
	}
	if b.Image != "" {
		obj["image"] = b.Image
	}
	return obj
}

// Organization returns the Organization object for the home page.
func Organization(site studio.Site) Object {
	sameAs := site.SameAs
	if sameAs == nil {
		sameAs = []string{}
	}
	return Object{
		"@context":      Context,
		"@type":         "Organization",
		"name":          site.Name,
		"alternateName": site.AlternateName,
		"url":           site.URL(""),
		"logo":          site.LogoURL(),
		"description":   site.Description,
		"email":         site.Email,
		"sameAs":        sameAs,
		"address": Object{
			"@type":          "PostalAddress",
			"addressCountry": site.Country,
			"addressRegion":  site.Region,
		},
		"founder": Object{
			"@type": "Person",
			"name":  site.Founder,
		},
		"foundingDate": site.FoundingDate,
		"numberOfEmployees": Object{
			"@type": "QuantitativeValue",
			"value": site.Employees,
		},
	}
}

// WebSite returns the WebSite object with its search action.
func WebSite(site studio.Site) Object {
	return Object{
		"@context": Context,
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      site.URL(""),
		"potentialAction": Object{
			"@type":       "SearchAction",
			"target":      site.URL("/search") + "?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
}

// SolutionPage returns the structured data a solution page embeds:
// BreadcrumbList, Service and FAQPage, in that order.
func SolutionPage(site studio.Site, s *studio.Solution) []Object {
	return []Object{
		Breadcrumb([]Crumb{
			{Name: "Home", URL: site.URL("")},
			{Name: "Solutions", URL: site.URL(studio.SolutionsPath)},
			{Name: s.Name, URL: site.URL(studio.SolutionPath(s.Slug))},
		}),
		Service(site, s),
		FAQPage(s.FAQs),
	}
}

// BlogPage returns the structured data a blog post embeds:
// BreadcrumbList and Article.
func BlogPage(site studio.Site, b *studio.Blog) []Object {
	return []Object{
		Breadcrumb([]Crumb{
			{Name: "Home", URL: site.URL("")},
			{Name: "Blog", URL: site.URL(studio.BlogsPath)},
			{Name: b.Title, URL: site.URL(studio.BlogPath(b.Slug))},
		}),
		Article(site, b),
	}
}

// SerializeAll serializes objects in order.
func SerializeAll(objs []Object) ([]string, error) {
	out := make([]string, 0, len(objs))
	for _, obj := range objs {
		s, err := Serialize(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// isoDate formats a date as YYYY-MM-DD when it has no time of day,
// otherwise as RFC 3339.
func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
