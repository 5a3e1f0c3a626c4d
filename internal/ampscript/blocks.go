package ampscript

import (
	"fmt"
	"strings"

	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/config"
)

// GenerateBlocks synthesizes the full platform script block set for a page:
// always an identity/metadata header, a personalization block and a tracking
// footer; plus inline blocks for component script snippets, a form handling
// block when a form component is placed, and keyed lookups when data sources
// are configured.
func GenerateBlocks(cfg *config.PageConfiguration) []Block {
	var blocks []Block

	blocks = append(blocks, headerBlock(cfg))

	for _, comp := range cfg.Components {
		if strings.TrimSpace(comp.Script) == "" {
			continue
		}
		blocks = append(blocks, Block{
			Type:        BlockInline,
			Content:     wrapBlock(strings.TrimSpace(comp.Script)),
			Description: "Inline script for component " + comp.ID,
		})
	}

	if forms := cfg.FormComponents(); len(forms) > 0 {
		blocks = append(blocks, formHandlingBlock(cfg, forms[0]))
	}

	if len(cfg.AdvancedOptions.DataSources) > 0 {
		blocks = append(blocks, lookupBlock(cfg.AdvancedOptions.DataSources))
	}

	blocks = append(blocks, personalizationBlock())
	blocks = append(blocks, trackingBlock())

	return blocks
}

// headerBlock declares identity and context variables, page metadata and one
// rows/row-count variable pair per configured data source.
func headerBlock(cfg *config.PageConfiguration) Block {
	var b strings.Builder

	b.WriteString(`VAR @subscriberKey, @emailAddress, @firstName, @lastName
SET @subscriberKey = AttributeValue("_subscriberkey")
IF Empty(@subscriberKey) THEN
  SET @subscriberKey = RequestParameter("skey")
ENDIF
SET @emailAddress = RequestParameter("email")
SET @firstName = RequestParameter("firstName")
SET @lastName = RequestParameter("lastName")

VAR @pageName, @pageTitle, @pageURL
`)
	fmt.Fprintf(&b, "SET @pageName = %s\n", quote(cfg.PageSettings.Name))
	fmt.Fprintf(&b, "SET @pageTitle = %s\n", quote(cfg.PageSettings.Title))
	fmt.Fprintf(&b, "SET @pageURL = %s\n", quote(cfg.PageSettings.URL))

	for _, source := range cfg.AdvancedOptions.DataSources {
		stem := varName(source)
		fmt.Fprintf(&b, "\nVAR @%sRows, @%sRowCount\n", stem, stem)
	}

	return Block{
		Type:        BlockHeader,
		Content:     wrapBlock(b.String()),
		Description: "Identity and context variables",
	}
}

// formHandlingBlock extracts one variable per declared field, validates
// required and email-shaped values into one concatenated error message and,
// only when validation passes, performs a single upsert-style write.
func formHandlingBlock(cfg *config.PageConfiguration, form config.ComponentInstance) Block {
	fields := components.DecodeFormFields(form.Props["fields"])
	if len(fields) == 0 {
		fields = []components.FormField{{Name: "email", Type: "email", Label: "Email Address", Required: true}}
	}

	target := "FormSubmissions"
	if len(cfg.AdvancedOptions.DataSources) > 0 {
		target = cfg.AdvancedOptions.DataSources[0]
	}

	var b strings.Builder
	b.WriteString("VAR @formSubmitted, @formErrors, @successMessage, @errorMessage\n")
	b.WriteString(`SET @formSubmitted = RequestParameter("submitted")` + "\n")
	b.WriteString(`SET @formErrors = ""` + "\n\n")

	for _, f := range fields {
		stem := varName(f.Name)
		fmt.Fprintf(&b, "VAR @%s\n", stem)
		fmt.Fprintf(&b, "SET @%s = RequestParameter(%s)\n", stem, quote(f.Name))
	}

	b.WriteString("\nIF @formSubmitted == \"true\" THEN\n")
	for _, f := range fields {
		stem := varName(f.Name)
		emailShaped := f.Type == "email" || strings.Contains(strings.ToLower(f.Name), "email")
		switch {
		case f.Required && emailShaped:
			fmt.Fprintf(&b, `  IF Empty(@%s) THEN
    SET @formErrors = Concat(@formErrors, %s)
  ELSEIF IndexOf(@%s, "@") < 2 THEN
    SET @formErrors = Concat(@formErrors, %s)
  ENDIF
`, stem, quote(f.Label+" is required. "), stem, quote(f.Label+" must be a valid email address. "))
		case f.Required:
			fmt.Fprintf(&b, `  IF Empty(@%s) THEN
    SET @formErrors = Concat(@formErrors, %s)
  ENDIF
`, stem, quote(f.Label+" is required. "))
		case emailShaped:
			fmt.Fprintf(&b, `  IF NOT Empty(@%s) AND IndexOf(@%s, "@") < 2 THEN
    SET @formErrors = Concat(@formErrors, %s)
  ENDIF
`, stem, stem, quote(f.Label+" must be a valid email address. "))
		}
	}

	b.WriteString("\n  IF Empty(@formErrors) THEN\n")
	fmt.Fprintf(&b, "    UpsertData(%s, 1", quote(target))
	fmt.Fprintf(&b, ", %s, @%s", quote(fields[0].Name), varName(fields[0].Name))
	for _, f := range fields[1:] {
		fmt.Fprintf(&b, ", %s, @%s", quote(f.Name), varName(f.Name))
	}
	b.WriteString(`, "PageName", @pageName, "SubmittedAt", Now())` + "\n")
	b.WriteString(`    SET @successMessage = "Thank you! Your submission was received."
  ELSE
    SET @errorMessage = @formErrors
  ENDIF
ENDIF`)

	return Block{
		Type:        BlockHeader,
		Content:     wrapBlock(b.String()),
		Description: "Form submission handling",
	}
}

// lookupBlock performs one keyed lookup per configured data source,
// populating the rows/row-count pair declared in the header.
func lookupBlock(sources []string) Block {
	var b strings.Builder
	for i, source := range sources {
		if i > 0 {
			b.WriteString("\n")
		}
		stem := varName(source)
		fmt.Fprintf(&b, "SET @%sRows = LookupRows(%s, \"SubscriberKey\", @subscriberKey)\n", stem, quote(source))
		fmt.Fprintf(&b, "SET @%sRowCount = RowCount(@%sRows)\n", stem, stem)
	}

	return Block{
		Type:        BlockHeader,
		Content:     wrapBlock(b.String()),
		Description: "Data source lookups",
	}
}

// personalizationBlock builds the greeting with a neutral fallback and a
// time-of-day variant from the current timestamp.
func personalizationBlock() Block {
	body := `VAR @greeting, @hourOfDay, @timeGreeting
IF NOT Empty(@firstName) THEN
  SET @greeting = Concat("Hello, ", ProperCase(@firstName), "!")
ELSE
  SET @greeting = "Hello there!"
ENDIF

SET @hourOfDay = DatePart(Now(), "H")
IF @hourOfDay < 12 THEN
  SET @timeGreeting = "Good morning"
ELSEIF @hourOfDay < 18 THEN
  SET @timeGreeting = "Good afternoon"
ELSE
  SET @timeGreeting = "Good evening"
ENDIF`

	return Block{
		Type:        BlockInline,
		Content:     wrapBlock(body),
		Description: "Personalized greeting",
	}
}

// trackingBlock writes the page view and, when UTM parameters are present,
// one campaign capture row. This is the only footer-typed block.
func trackingBlock() Block {
	body := `InsertData("PageViews", "PageName", @pageName, "SubscriberKey", @subscriberKey, "ViewDate", Now())

VAR @utmSource, @utmMedium, @utmCampaign
SET @utmSource = RequestParameter("utm_source")
SET @utmMedium = RequestParameter("utm_medium")
SET @utmCampaign = RequestParameter("utm_campaign")
IF NOT Empty(@utmSource) THEN
  InsertData("CampaignTracking", "PageName", @pageName, "Source", @utmSource, "Medium", @utmMedium, "Campaign", @utmCampaign, "CapturedAt", Now())
ENDIF`

	return Block{
		Type:        BlockFooter,
		Content:     wrapBlock(body),
		Description: "Page view and campaign tracking",
	}
}
