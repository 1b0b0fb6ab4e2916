package studio_test

import (
	"testing"

	"github.com/limegreen-studio/studio"
	"github.com/stretchr/testify/assert"
)

func TestSite_URL(t *testing.T) {
	t.Parallel()

	site := studio.Site{BaseURL: "https://limegreen.studio/"}

	assert.Equal(t, "https://limegreen.studio", site.URL(""))
	assert.Equal(t, "https://limegreen.studio", site.URL("/"))
	assert.Equal(t, "https://limegreen.studio/solutions/saas-development", site.URL("/solutions/saas-development"))
	assert.Equal(t, "https://limegreen.studio/about", site.URL("about"))
}

func TestSite_LogoURL(t *testing.T) {
	t.Parallel()

	site := studio.DefaultSite()
	assert.Equal(t, "https://limegreen.studio/LGS.svg", site.LogoURL())

	site.Logo = "https://cdn.example.com/logo.png"
	assert.Equal(t, "https://cdn.example.com/logo.png", site.LogoURL())
}

func TestSite_Validate(t *testing.T) {
	t.Parallel()

	site := studio.DefaultSite()
	assert.NoError(t, site.Validate())

	site.BaseURL = "limegreen.studio"
	assert.Equal(t, studio.EINVALID, studio.ErrorCode(site.Validate()))

	site = studio.DefaultSite()
	site.Name = ""
	assert.Equal(t, studio.EINVALID, studio.ErrorCode(site.Validate()))
}

func TestRoutePaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/solutions/saas-development", studio.SolutionPath("saas-development"))
	assert.Equal(t, "/blogs/mvp-in-4-weeks", studio.BlogPath("mvp-in-4-weeks"))
}
