package ampscript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConditionalContent_BranchPerSegment(t *testing.T) {
	out := ConditionalContent("MemberTier", []SegmentCase{
		{Value: "gold", Content: "<p>Gold perks</p>"},
		{Value: "silver", Content: "<p>Silver perks</p>"},
	}, "<p>Join today</p>")

	require.Contains(t, out, `SET @memberTier = AttributeValue("MemberTier")`)
	require.Contains(t, out, `IF @memberTier == "gold" THEN`)
	require.Contains(t, out, `ELSEIF @memberTier == "silver" THEN`)
	require.Contains(t, out, "<p>Gold perks</p>")
	require.Contains(t, out, "ELSE")
	require.Contains(t, out, "<p>Join today</p>")
	require.True(t, strings.HasSuffix(out, "%%[ ENDIF ]%%"))
}

func TestConditionalContent_NoFallback(t *testing.T) {
	out := ConditionalContent("Tier", []SegmentCase{{Value: "a", Content: "A"}}, "")
	require.NotContains(t, out, "ELSE ")
	require.Contains(t, out, "ENDIF")
}

func TestDataTable_LoopsOverLookup(t *testing.T) {
	out := DataTable("OrderHistory", "SubscriberKey", "@subscriberKey", []string{"OrderDate", "Total"})

	require.Contains(t, out, `LookupRows("OrderHistory", "SubscriberKey", @subscriberKey)`)
	require.Contains(t, out, "FOR @tableIndex = 1 TO @tableRowCount DO")
	require.Contains(t, out, `%%=Field(@tableRow, "OrderDate")=%%`)
	require.Contains(t, out, `%%=Field(@tableRow, "Total")=%%`)
	require.Contains(t, out, "NEXT @tableIndex")
}

func TestPersonalizedOffer_FallsBackWhenNoRows(t *testing.T) {
	out := PersonalizedOffer("SubscriberOffers")

	require.Contains(t, out, `LookupRows("SubscriberOffers", "SubscriberKey", @subscriberKey)`)
	require.Contains(t, out, "IF RowCount(@offerRows) > 0 THEN")
	require.Contains(t, out, `SET @offerText = "Check out our latest offers"`)
}

func TestPrepopulateField(t *testing.T) {
	require.Equal(t, `value="%%=RequestParameter("email")=%%"`, PrepopulateField("email"))
}

func TestEmailValidationFunction_NormalizesThenChecksShape(t *testing.T) {
	out := EmailValidationFunction()

	require.Contains(t, out, "Lowercase(Trim(@emailInput))")
	require.Contains(t, out, `IndexOf(@emailNormalized, "@")`)
	require.Contains(t, out, `SET @emailValid = "true"`)
	require.Contains(t, out, `SET @emailValid = "false"`)

	normalize := strings.Index(out, "Lowercase(Trim")
	check := strings.Index(out, `IndexOf(@emailNormalized`)
	require.True(t, normalize < check, "normalization precedes validation")
}

func TestVarName(t *testing.T) {
	cases := map[string]string{
		"Subscribers":   "subscribers",
		"Order History": "orderHistory",
		"first_name":    "first_name",
		"UTM-Source":    "uTMSource",
		"":              "source",
		"123orders":     "123orders",
	}
	for in, want := range cases {
		if got := varName(in); got != want {
			t.Errorf("varName(%q) = %q, want %q", in, got, want)
		}
	}
}
