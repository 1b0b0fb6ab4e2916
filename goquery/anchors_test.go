package goquery_test

import (
	"testing"

	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_VerifyAnchors(t *testing.T) {
	t.Parallel()

	t.Run("accepts HTML containing every anchor", func(t *testing.T) {
		t.Parallel()

		html := `<h1 id="title">Title</h1>
<h2 id="the-problem">The Problem</h2>
<h3 id="step-1">Step 1</h3>`
		toc := []studio.TOCEntry{
			{ID: "the-problem", Text: "The Problem", Level: 2},
			{ID: "step-1", Text: "Step 1", Level: 3},
		}

		err := goquery.NewVerifier().VerifyAnchors(html, toc)

		assert.NoError(t, err)
	})

	t.Run("accepts an empty outline", func(t *testing.T) {
		t.Parallel()

		err := goquery.NewVerifier().VerifyAnchors("<p>No headings</p>", nil)

		assert.NoError(t, err)
	})

	t.Run("reports every missing anchor", func(t *testing.T) {
		t.Parallel()

		html := `<h2 id="the-problem">The Problem</h2><h2>Our Approach</h2>`
		toc := []studio.TOCEntry{
			{ID: "the-problem", Text: "The Problem", Level: 2},
			{ID: "our-approach", Text: "Our Approach", Level: 2},
			{ID: "results", Text: "Results", Level: 2},
		}

		err := goquery.NewVerifier().VerifyAnchors(html, toc)

		require.Error(t, err)
		assert.Equal(t, studio.EINVALID, studio.ErrorCode(err))
		assert.Equal(t, "missing heading anchors: #our-approach, #results", studio.ErrorMessage(err))
	})

	t.Run("ignores ids on elements other than headings", func(t *testing.T) {
		t.Parallel()

		html := `<section id="faq"><h2>FAQ</h2></section>`
		toc := []studio.TOCEntry{{ID: "faq", Text: "FAQ", Level: 2}}

		err := goquery.NewVerifier().VerifyAnchors(html, toc)

		require.Error(t, err)
		assert.Equal(t, "missing heading anchors: #faq", studio.ErrorMessage(err))
	})

	t.Run("rejects anchors on headings of another level", func(t *testing.T) {
		t.Parallel()

		html := `<h3 id="results">Results</h3>`
		toc := []studio.TOCEntry{{ID: "results", Text: "Results", Level: 2}}

		err := goquery.NewVerifier().VerifyAnchors(html, toc)

		require.Error(t, err)
		assert.Equal(t, studio.EINVALID, studio.ErrorCode(err))
		assert.Equal(t, "misplaced heading anchors: #results is on an h3, want h2", studio.ErrorMessage(err))
	})

	t.Run("rejects anchors out of outline order", func(t *testing.T) {
		t.Parallel()

		html := `<h2 id="intro-1">Intro</h2><h2 id="intro">Intro</h2>`
		toc := []studio.TOCEntry{
			{ID: "intro", Text: "Intro", Level: 2},
			{ID: "intro-1", Text: "Intro", Level: 2},
			{ID: "summary", Text: "Summary", Level: 2},
		}

		err := goquery.NewVerifier().VerifyAnchors(html, toc)

		require.Error(t, err)
		assert.Equal(t, "missing heading anchors: #summary; misplaced heading anchors: #intro-1 is out of order", studio.ErrorMessage(err))
	})
}

func TestHeadings(t *testing.T) {
	t.Parallel()

	headings, err := goquery.Headings(`<h1 id="title">T</h1><section id="intro"><h2 id="">x</h2><h3 id="step-1">S</h3></section><h2>No id</h2><h6 id="fine-print">F</h6>`)

	require.NoError(t, err)
	assert.Equal(t, []goquery.Heading{
		{ID: "title", Level: 1},
		{ID: "step-1", Level: 3},
		{ID: "fine-print", Level: 6},
	}, headings)
}


