package configs

// Platforms carries ad-network credentials and the mock-mode switch. With
// MockMode enabled, or whenever a network's credentials are missing, the
// corresponding adapter logs its request instead of calling out.
type Platforms struct {
	MockMode bool `env:"MOCK_MODE" envDefault:"true"`

	GoogleAdsAPIKey     string `env:"GOOGLE_ADS_API_KEY"`
	GoogleAdsCustomerID string `env:"GOOGLE_ADS_CUSTOMER_ID"`

	MetaAccessToken string `env:"META_ACCESS_TOKEN"`
	MetaAdAccountID string `env:"META_AD_ACCOUNT_ID"`

	AmazonClientID     string `env:"AMAZON_CLIENT_ID"`
	AmazonClientSecret string `env:"AMAZON_CLIENT_SECRET"`
}

// GoogleMock reports whether the Google adapter should run in mock mode.
func (p Platforms) GoogleMock() bool { return p.MockMode || p.GoogleAdsAPIKey == "" }

// MetaMock reports whether the Meta adapter should run in mock mode.
func (p Platforms) MetaMock() bool { return p.MockMode || p.MetaAccessToken == "" }

// AmazonMock reports whether the Amazon adapter should run in mock mode.
func (p Platforms) AmazonMock() bool { return p.MockMode || p.AmazonClientID == "" }
