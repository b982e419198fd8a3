// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// MetricNewCustomer is the analytics metric recorded once per successful onboarding.
	MetricNewCustomer = "new_customer"

	// MetricCampaignSent is the analytics metric recorded once per dispatched campaign.
	MetricCampaignSent = "campaign_sent"
)

const (
	// AnalyticsSourceQRCode marks onboardings whose request carried a QR code value,
	// whether or not the code resolved.
	AnalyticsSourceQRCode = "qr_code"

	// AnalyticsSourceDirect marks onboardings submitted without a QR code.
	AnalyticsSourceDirect = "direct"
)
