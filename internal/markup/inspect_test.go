package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Sample</title>
  <link rel="stylesheet" href="a.css">
</head>
<body>
<main role="main">
  <section id="hero-1"><h1>Big Heading</h1></section>
  <figure id="img-1"><img src="a.png" alt="described"><img src="b.png"></figure>
  <form id="form-1"><a href="#">link</a></form>
</main>
<script src="app.js"></script>
</body>
</html>`

func TestInspect_CollectsStructure(t *testing.T) {
	audit, err := Inspect(sampleDocument)
	require.NoError(t, err)

	require.Equal(t, "Sample", audit.Title)
	require.Equal(t, "en", audit.Lang)
	require.Equal(t, []string{"hero-1", "img-1", "form-1"}, audit.ComponentIDs)
	require.Equal(t, []string{"Big Heading"}, audit.Headings)
	require.Equal(t, 1, audit.Links)
	require.Equal(t, 2, audit.Images)
	require.Equal(t, 1, audit.ImagesMissingAlt)
	require.Equal(t, 1, audit.Forms)
	require.Equal(t, 1, audit.Scripts)
	require.Equal(t, 1, audit.Stylesheets)
	require.True(t, audit.HasMainLandmark)
}

func TestInspect_FindingsForGaps(t *testing.T) {
	audit, err := Inspect(`<html><body><img src="x.png"><main></main></body></html>`)
	require.NoError(t, err)

	findings := audit.Findings()
	require.Len(t, findings, 4)
	require.Contains(t, findings[0], "title")
	require.Contains(t, findings[1], "lang")
	require.Contains(t, findings[2], "alt text")
	require.Contains(t, findings[3], "main landmark")
}

func TestInspect_WellFormedDocumentOnlyFlagsMissingAlt(t *testing.T) {
	audit, err := Inspect(sampleDocument)
	require.NoError(t, err)
	require.Len(t, audit.Findings(), 1, "only the missing alt advisory expected")
}
