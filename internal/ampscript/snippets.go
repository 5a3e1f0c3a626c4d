package ampscript

import (
	"fmt"
	"strings"
)

// SegmentCase pairs one segment value with the content shown to it.
type SegmentCase struct {
	Value   string
	Content string
}

// ConditionalContent renders segment-gated content: one branch per case on
// the given subscriber attribute, with fallback content for unmatched
// segments. Standalone snippet, not part of the standard pipeline.
func ConditionalContent(attribute string, cases []SegmentCase, fallback string) string {
	stem := varName(attribute)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nVAR @%s\nSET @%s = AttributeValue(%s)\n%s\n",
		blockOpen, stem, stem, quote(attribute), blockClose)

	for i, c := range cases {
		keyword := "IF"
		if i > 0 {
			keyword = "ELSEIF"
		}
		fmt.Fprintf(&b, "%s %s @%s == %s THEN %s\n%s\n",
			blockOpen, keyword, stem, quote(c.Value), blockClose, c.Content)
	}

	if fallback != "" {
		fmt.Fprintf(&b, "%s ELSE %s\n%s\n", blockOpen, blockClose, fallback)
	}
	fmt.Fprintf(&b, "%s ENDIF %s", blockOpen, blockClose)

	return b.String()
}

// DataTable renders a table body looping over a keyed lookup: one row per
// returned record, one cell per requested column.
func DataTable(dataExtension, keyColumn, keyExpr string, columns []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `%s
VAR @tableRows, @tableRowCount, @tableIndex, @tableRow
SET @tableRows = LookupRows(%s, %s, %s)
SET @tableRowCount = RowCount(@tableRows)
IF @tableRowCount > 0 THEN
FOR @tableIndex = 1 TO @tableRowCount DO
SET @tableRow = Row(@tableRows, @tableIndex)
%s
`, blockOpen, quote(dataExtension), quote(keyColumn), keyExpr, blockClose)

	b.WriteString("<tr>")
	for _, col := range columns {
		b.WriteString("<td>" + Inline(fmt.Sprintf("Field(@tableRow, %s)", quote(col))) + "</td>")
	}
	b.WriteString("</tr>\n")

	fmt.Fprintf(&b, "%s\nNEXT @tableIndex\nENDIF\n%s", blockOpen, blockClose)
	return b.String()
}

// PersonalizedOffer looks up a single offer row for the current subscriber
// and exposes @offerText / @offerURL with neutral fallbacks.
func PersonalizedOffer(dataExtension string) string {
	body := fmt.Sprintf(`VAR @offerRows, @offerRow, @offerText, @offerURL
SET @offerRows = LookupRows(%s, "SubscriberKey", @subscriberKey)
IF RowCount(@offerRows) > 0 THEN
  SET @offerRow = Row(@offerRows, 1)
  SET @offerText = Field(@offerRow, "OfferText")
  SET @offerURL = Field(@offerRow, "OfferURL")
ELSE
  SET @offerText = "Check out our latest offers"
  SET @offerURL = "#"
ENDIF`, quote(dataExtension))

	return wrapBlock(body)
}

// PrepopulateField returns the value attribute pre-populating a form input
// from a request parameter of the same name.
func PrepopulateField(fieldName string) string {
	return fmt.Sprintf(`value="%s"`, Inline(fmt.Sprintf("RequestParameter(%s)", quote(fieldName))))
}

// EmailValidationFunction returns the reusable normalize-and-validate block:
// trims and lowercases @emailInput, then sets @emailValid to "true" or
// "false" based on a shape check.
func EmailValidationFunction() string {
	body := `VAR @emailInput, @emailNormalized, @emailValid
SET @emailNormalized = Lowercase(Trim(@emailInput))
IF Length(@emailNormalized) >= 6 AND IndexOf(@emailNormalized, "@") >= 2 AND IndexOf(@emailNormalized, ".") >= 4 THEN
  SET @emailValid = "true"
ELSE
  SET @emailValid = "false"
ENDIF`

	return wrapBlock(body)
}
