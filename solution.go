package studio

// Solution is a service offering rendered as its own landing page.
type Solution struct {
	Slug            string      `json:"slug"`
	Name            string      `json:"name"`
	Title           string      `json:"title"`
	MetaDescription string      `json:"metaDescription"`
	Keywords        []string    `json:"keywords"`
	HeroHeadline    string      `json:"heroHeadline"`
	HeroSubheading  string      `json:"heroSubheading"`
	CTA             CTA         `json:"cta"`
	PainPoints      []PainPoint `json:"painPoints"`
	Features        []Feature   `json:"features"`
	Process         Process     `json:"process"`
	FAQs            []FAQ       `json:"faqs"`

	// Slugs of other solutions. Unknown slugs are ignored on resolution.
	RelatedSolutions []string `json:"relatedSolutions"`

	// Slugs of blog posts. Unknown slugs are ignored on resolution.
	CaseStudies []string `json:"caseStudies"`
}

// CTA holds the call-to-action labels of a solution page.
type CTA struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// PainPoint is a customer problem and how the solution addresses it.
type PainPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

// Feature is a selling point of a solution.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Process describes the delivery timeline of a solution.
type Process struct {
	Overview string        `json:"overview"`
	Steps    []ProcessStep `json:"steps"`
}

// ProcessStep is one week of the delivery timeline.
type ProcessStep struct {
	Week         string   `json:"week"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Deliverables []string `json:"deliverables"`
}

// FAQ is a question and answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Key returns the solution slug.
func (s *Solution) Key() string { return s.Slug }

// Validate returns an error if the solution contains invalid fields.
func (s *Solution) Validate() error {
	if s.Slug == "" {
		return Errorf(EINVALID, "solution slug required")
	}
	if s.Name == "" {
		return Errorf(EINVALID, "solution %q: name required", s.Slug)
	}
	if s.Title == "" {
		return Errorf(EINVALID, "solution %q: title required", s.Slug)
	}
	for i, faq := range s.FAQs {
		if faq.Question == "" || faq.Answer == "" {
			return Errorf(EINVALID, "solution %q: faq %d requires question and answer", s.Slug, i)
		}
	}
	return nil
}

// RelatedSolutions returns the solutions referenced by the solution with
// the given slug, in reference order. Unknown slugs yield nothing.
func RelatedSolutions(solutions []*Solution, slug string) []*Solution {
	current, ok := FindBySlug(solutions, slug)
	if !ok {
		return nil
	}
	return ResolveReferences(current.RelatedSolutions, solutions)
}

// CaseStudies returns the blog posts referenced as case studies by the
// solution with the given slug, in reference order.
func CaseStudies(solutions []*Solution, blogs []*Blog, slug string) []*Blog {
	current, ok := FindBySlug(solutions, slug)
	if !ok {
		return nil
	}
	return ResolveReferences(current.CaseStudies, blogs)
}

// Tiers splits solutions into flagship and secondary offerings.
type Tiers struct {
	Tier1 []*Solution `json:"tier1"`
	Tier2 []*Solution `json:"tier2"`
}

// GroupByTier places solutions whose slug is listed in tier1 into Tier1 and
// all others into Tier2. Both groups keep the collection order.
func GroupByTier(solutions []*Solution, tier1 []string) Tiers {
	flagship := make(map[string]bool, len(tier1))
	for _, slug := range tier1 {
		flagship[slug] = true
	}

	var tiers Tiers
	for _, s := range solutions {
		if flagship[s.Slug] {
			tiers.Tier1 = append(tiers.Tier1, s)
		} else {
			tiers.Tier2 = append(tiers.Tier2, s)
		}
	}
	return tiers
}
