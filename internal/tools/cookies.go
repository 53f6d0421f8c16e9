package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

// CookieCategory classifies cookies by function for consent purposes.
type CookieCategory string

const (
	CookieStrictlyNecessary CookieCategory = "strictly_necessary"
	CookiePerformance       CookieCategory = "performance"
	CookieFunctionality     CookieCategory = "functionality"
	CookieTargeting         CookieCategory = "targeting"
	CookieSocialMedia       CookieCategory = "social_media"
)

// AllCookieCategories lists the cookie categories in display order.
var AllCookieCategories = []CookieCategory{
	CookieStrictlyNecessary,
	CookiePerformance,
	CookieFunctionality,
	CookieTargeting,
	CookieSocialMedia,
}

var cookieCategoryLabels = map[CookieCategory]string{
	CookieStrictlyNecessary: "Strictly Necessary",
	CookiePerformance:       "Performance / Analytics",
	CookieFunctionality:     "Functionality",
	CookieTargeting:         "Targeting / Advertising",
	CookieSocialMedia:       "Social Media",
}

var cookieCategoryDisplay = map[CookieCategory]string{
	CookieStrictlyNecessary: "Strictly Necessary Cookies",
	CookiePerformance:       "Performance / Analytics Cookies",
	CookieFunctionality:     "Functionality Cookies",
	CookieTargeting:         "Targeting / Advertising Cookies",
	CookieSocialMedia:       "Social Media Cookies",
}

var cookieCategoryDescriptions = map[CookieCategory]string{
	CookieStrictlyNecessary: "These cookies are essential for the website to function properly. They enable core features such as security, session management, and accessibility. These cookies do not require consent as they are necessary for the provision of the service.",
	CookiePerformance:       "These cookies help us understand how visitors interact with our website by collecting and reporting anonymous usage data. They allow us to measure and improve the performance of our site.",
	CookieFunctionality:     "These cookies allow the website to remember choices you make (such as your preferred language or region) and provide enhanced, more personalized features.",
	CookieTargeting:         "These cookies are used to deliver advertisements that are relevant to your interests. They may also be used to limit the number of times you see an advertisement and to help measure the effectiveness of advertising campaigns.",
	CookieSocialMedia:       "These cookies are set by social media platforms to enable you to share our content with your networks. They may track your browsing activity across other websites.",
}

// Label returns the short display label for the category.
func (c CookieCategory) Label() string {
	if label, ok := cookieCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// CookieType distinguishes first-party from third-party cookies.
type CookieType string

const (
	FirstPartyCookie CookieType = "first_party"
	ThirdPartyCookie CookieType = "third_party"
)

// CookieEntry documents one cookie placed by the website.
type CookieEntry struct {
	Name     string
	Provider string
	Purpose  string
	Duration string
	Type     CookieType
	Category CookieCategory
}

// CommonCookies holds well-known cookies per category, used to pre-populate
// a cookie inventory.
var CommonCookies = map[CookieCategory][]CookieEntry{
	CookieStrictlyNecessary: {
		{Name: "session_id", Provider: "First Party", Purpose: "Maintains user session state", Duration: "Session", Type: FirstPartyCookie, Category: CookieStrictlyNecessary},
		{Name: "csrf_token", Provider: "First Party", Purpose: "Prevents cross-site request forgery attacks", Duration: "Session", Type: FirstPartyCookie, Category: CookieStrictlyNecessary},
		{Name: "cookie_consent", Provider: "First Party", Purpose: "Stores cookie consent preferences", Duration: "1 year", Type: FirstPartyCookie, Category: CookieStrictlyNecessary},
	},
	CookiePerformance: {
		{Name: "_ga", Provider: "Google Analytics", Purpose: "Distinguishes unique users by assigning a randomly generated number", Duration: "2 years", Type: ThirdPartyCookie, Category: CookiePerformance},
		{Name: "_gid", Provider: "Google Analytics", Purpose: "Distinguishes unique users", Duration: "24 hours", Type: ThirdPartyCookie, Category: CookiePerformance},
		{Name: "_gat", Provider: "Google Analytics", Purpose: "Throttles request rate to limit data collection", Duration: "1 minute", Type: ThirdPartyCookie, Category: CookiePerformance},
	},
	CookieFunctionality: {
		{Name: "lang", Provider: "First Party", Purpose: "Stores language preference", Duration: "1 year", Type: FirstPartyCookie, Category: CookieFunctionality},
		{Name: "theme", Provider: "First Party", Purpose: "Stores display theme preference (light/dark)", Duration: "1 year", Type: FirstPartyCookie, Category: CookieFunctionality},
		{Name: "region", Provider: "First Party", Purpose: "Stores regional preference for content", Duration: "1 year", Type: FirstPartyCookie, Category: CookieFunctionality},
	},
	CookieTargeting: {
		{Name: "_fbp", Provider: "Facebook (Meta)", Purpose: "Tracks visits across websites for ad targeting", Duration: "3 months", Type: ThirdPartyCookie, Category: CookieTargeting},
		{Name: "_gcl_au", Provider: "Google Ads", Purpose: "Stores conversion tracking data", Duration: "3 months", Type: ThirdPartyCookie, Category: CookieTargeting},
		{Name: "IDE", Provider: "Google DoubleClick", Purpose: "Serves targeted advertisements based on browsing behavior", Duration: "1 year", Type: ThirdPartyCookie, Category: CookieTargeting},
	},
	CookieSocialMedia: {
		{Name: "li_sugr", Provider: "LinkedIn", Purpose: "Enables LinkedIn sharing functionality", Duration: "3 months", Type: ThirdPartyCookie, Category: CookieSocialMedia},
		{Name: "__twid", Provider: "X (Twitter)", Purpose: "Enables content sharing on X", Duration: "2 weeks", Type: ThirdPartyCookie, Category: CookieSocialMedia},
	},
}

// ConsentType names the legal consent model a jurisdiction applies to
// cookies.
type ConsentType string

const (
	ConsentModelOptIn      ConsentType = "opt_in"
	ConsentModelOptOut     ConsentType = "opt_out"
	ConsentModelImplied    ConsentType = "implied"
	ConsentModelReasonable ConsentType = "reasonable"
)

var consentModelDisplay = map[ConsentType]string{
	ConsentModelOptIn:      "Opt-In (prior consent required)",
	ConsentModelOptOut:     "Opt-Out (consent assumed until withdrawn)",
	ConsentModelImplied:    "Implied Consent",
	ConsentModelReasonable: "Reasonable Consent",
}

// ConsentModel captures one jurisdiction's cookie consent requirements.
type ConsentModel struct {
	Jurisdiction        domain.Jurisdiction
	Model               ConsentType
	GranularByCategory  bool
	RejectAllRequired   bool
	CookieWallProhibited bool
	Notes               string
}

var defaultConsentModels = map[domain.Jurisdiction]ConsentModel{
	domain.JurisdictionGDPR: {
		Model: ConsentModelOptIn, GranularByCategory: true, RejectAllRequired: true, CookieWallProhibited: true,
		Notes: "Prior opt-in consent required under the ePrivacy Directive and GDPR. Users must be able to reject all non-essential cookies as easily as they accept them.",
	},
	domain.JurisdictionCCPA: {
		Model: ConsentModelOptOut,
		Notes: "Opt-out model. A \"Do Not Sell or Share My Personal Information\" link must be provided.",
	},
	domain.JurisdictionCPRA: {
		Model: ConsentModelOptOut,
		Notes: "Opt-out model under CPRA. Requires \"Do Not Sell or Share My Personal Information\" link and limits on sensitive data use.",
	},
	domain.JurisdictionPIPEDA: {
		Model: ConsentModelImplied,
		Notes: "Implied consent acceptable for non-sensitive cookies (analytics). Express consent required for tracking, profiling, and advertising cookies.",
	},
	domain.JurisdictionQuebecLaw25: {
		Model: ConsentModelOptIn, GranularByCategory: true, RejectAllRequired: true, CookieWallProhibited: true,
		Notes: "Express consent required. Cookie consent information must be available in French. Consent must be specific, informed, and freely given.",
	},
	domain.JurisdictionAlbertaPIPA: {
		Model: ConsentModelReasonable,
		Notes: "Consent must be reasonable and appropriate to the sensitivity of the information collected via cookies.",
	},
	domain.JurisdictionBCPIPA: {
		Model: ConsentModelReasonable,
		Notes: "Consent must be reasonable and appropriate. Notification of cookie use is required.",
	},
}

// DefaultConsentModel returns the default cookie consent requirements for a
// jurisdiction. Unknown jurisdictions fall back to strict opt-in.
func DefaultConsentModel(j domain.Jurisdiction) ConsentModel {
	model, ok := defaultConsentModels[j]
	if !ok {
		model = ConsentModel{Model: ConsentModelOptIn}
	}
	model.Jurisdiction = j
	return model
}

// BannerPosition is where the consent banner is displayed.
type BannerPosition string

const (
	BannerBottom      BannerPosition = "bottom"
	BannerTop         BannerPosition = "top"
	BannerCenterModal BannerPosition = "center_modal"
)

var bannerPositionDisplay = map[BannerPosition]string{
	BannerBottom:      "bottom bar",
	BannerTop:         "top bar",
	BannerCenterModal: "center modal dialog",
}

// CookiePolicyInput feeds the cookie policy renderer.
type CookiePolicyInput struct {
	WebsiteURL     string
	OrgName        string
	Jurisdictions  []domain.Jurisdiction
	Cookies        []CookieEntry
	ConsentModels  []ConsentModel
	BannerPosition BannerPosition
	GeneratedAt    time.Time
}

type cookieGroup struct {
	category CookieCategory
	cookies  []CookieEntry
}

func groupCookies(cookies []CookieEntry) []cookieGroup {
	index := make(map[CookieCategory]int)
	var groups []cookieGroup
	for _, c := range cookies {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, cookieGroup{category: c.Category})
		}
		groups[i].cookies = append(groups[i].cookies, c)
	}
	return groups
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// RenderCookiePolicy renders the standalone cookie policy as Markdown.
func RenderCookiePolicy(input CookiePolicyInput) []byte {
	var lines []string
	push := func(s string) { lines = append(lines, s) }

	push("---")
	push(`title: "Cookie Disclaimer"`)
	push(`document_type: "cookie_disclaimer"`)
	push(fmt.Sprintf("generated: %q", isoTimestamp(input.GeneratedAt)))
	push("jurisdictions:")
	for _, j := range input.Jurisdictions {
		push(fmt.Sprintf("  - %q", string(j)))
	}
	push(fmt.Sprintf("cookie_count: %d", len(input.Cookies)))
	if input.WebsiteURL != "" {
		push(fmt.Sprintf("website: %q", input.WebsiteURL))
	}
	push("---")
	push("")

	push("# Cookie Policy")
	push("")
	push("**Effective Date:** " + isoDate(input.GeneratedAt))
	push("")
	if input.OrgName != "" {
		push("**Organization:** " + input.OrgName)
		push("")
	}
	if input.WebsiteURL != "" {
		push("**Website:** " + input.WebsiteURL)
		push("")
	}

	push("## What Are Cookies")
	push("")
	push("Cookies are small text files that are stored on your device (computer, tablet, or mobile phone) when you visit a website. They are widely used to make websites work more efficiently, to provide a better browsing experience, and to supply information to the owners of the website.")
	push("")
	push("This Cookie Policy explains what cookies we use, the purposes for which we use them, and how you can manage your cookie preferences.")
	push("")

	grouped := groupCookies(input.Cookies)

	push("## Cookies We Use")
	push("")
	if len(input.Cookies) == 0 {
		push("No specific cookies have been documented at this time.")
		push("")
	} else {
		push("We use the following categories of cookies:")
		push("")
		for _, group := range grouped {
			display := cookieCategoryDisplay[group.category]
			if display == "" {
				display = string(group.category)
			}
			plural := "s"
			if len(group.cookies) == 1 {
				plural = ""
			}
			push(fmt.Sprintf("- **%s** (%d cookie%s)", display, len(group.cookies), plural))
		}
		push("")

		for _, group := range grouped {
			display := cookieCategoryDisplay[group.category]
			if display == "" {
				display = string(group.category)
			}
			push("### " + display)
			push("")
			if description := cookieCategoryDescriptions[group.category]; description != "" {
				push(description)
				push("")
			}

			push("| Cookie Name | Provider | Purpose | Duration | Type |")
			push("|-------------|----------|---------|----------|------|")
			for _, c := range group.cookies {
				typeLabel := "First Party"
				if c.Type == ThirdPartyCookie {
					typeLabel = "Third Party"
				}
				push(fmt.Sprintf("| %s | %s | %s | %s | %s |",
					orDash(c.Name), orDash(c.Provider), orDash(c.Purpose), orDash(c.Duration), typeLabel))
			}
			push("")
		}
	}

	push("## Cookie Consent")
	push("")
	banner := bannerPositionDisplay[input.BannerPosition]
	if banner == "" {
		banner = "banner"
	}
	push(fmt.Sprintf("When you first visit our website, you will be presented with a cookie consent %s that allows you to accept or reject non-essential cookies.", banner))
	push("")

	hasStrictlyNecessary := false
	for _, group := range grouped {
		if group.category == CookieStrictlyNecessary {
			hasStrictlyNecessary = true
		}
	}
	if hasStrictlyNecessary {
		push("Strictly necessary cookies do not require your consent as they are essential for the website to function. All other categories of cookies require your consent before they are placed on your device.")
		push("")
	}

	selected := make(map[domain.Jurisdiction]struct{}, len(input.Jurisdictions))
	for _, j := range input.Jurisdictions {
		selected[j] = struct{}{}
	}
	if len(input.ConsentModels) > 0 {
		push("### Consent Requirements by Jurisdiction")
		push("")
		for _, model := range input.ConsentModels {
			if _, ok := selected[model.Jurisdiction]; !ok {
				continue
			}
			push("**" + model.Jurisdiction.Label() + "**")
			push("")
			display := consentModelDisplay[model.Model]
			if display == "" {
				display = string(model.Model)
			}
			push("- Consent model: " + display)
			if model.GranularByCategory {
				push("- Users may accept or reject cookies on a per-category basis")
			}
			if model.RejectAllRequired {
				push(`- A "Reject All" option is provided with equal prominence to the "Accept All" option`)
			}
			if model.CookieWallProhibited {
				push("- Access to the website is not conditional upon cookie consent (no cookie walls)")
			}
			if model.Notes != "" {
				push("- " + model.Notes)
			}
			push("")
		}
	}

	push("## How to Manage Cookies")
	push("")
	push("You can change your cookie preferences at any time by clicking the cookie settings link in the footer of our website. You can also manage cookies through your browser settings:")
	push("")
	push("- **Chrome:** Settings > Privacy and Security > Cookies and other site data")
	push("- **Firefox:** Settings > Privacy & Security > Cookies and Site Data")
	push("- **Safari:** Preferences > Privacy > Manage Website Data")
	push("- **Edge:** Settings > Cookies and site permissions > Manage and delete cookies")
	push("")
	push("Please note that disabling certain cookies may affect the functionality of our website.")
	push("")

	var thirdPartyProviders []string
	seenProviders := make(map[string]struct{})
	for _, c := range input.Cookies {
		if c.Type != ThirdPartyCookie {
			continue
		}
		if _, dup := seenProviders[c.Provider]; dup {
			continue
		}
		seenProviders[c.Provider] = struct{}{}
		thirdPartyProviders = append(thirdPartyProviders, c.Provider)
	}
	if len(thirdPartyProviders) > 0 {
		push("## Third-Party Cookies")
		push("")
		push("Some cookies on our website are set by third-party service providers. We do not control these cookies. For more information about how these third parties use cookies, please refer to their respective privacy policies:")
		push("")
		for _, provider := range thirdPartyProviders {
			push("- " + provider)
		}
		push("")
	}

	push("## Updates to This Cookie Policy")
	push("")
	push("We may update this Cookie Policy from time to time to reflect changes in the cookies we use or for other operational, legal, or regulatory reasons. We encourage you to periodically review this page for the latest information on our cookie practices.")
	push("")

	push("## Contact Us")
	push("")
	push("If you have any questions about our use of cookies or this Cookie Policy, please contact us:")
	push("")
	if input.OrgName != "" {
		push("- **Organization:** " + input.OrgName)
	}
	if input.WebsiteURL != "" {
		push("- **Website:** " + input.WebsiteURL)
	}
	push("")

	push("---")
	push("")
	push("*This cookie policy does not constitute legal advice. It is generated as a reference tool and should be reviewed by qualified legal counsel before publication. Cookie requirements vary by jurisdiction and are subject to change.*")
	push("")

	return []byte(strings.Join(lines, "\n"))
}
