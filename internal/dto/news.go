package dto

// NewsArticle mirrors the Finnhub article shape passed through to the client.
type NewsArticle struct {
	ID       int64  `json:"id"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Datetime int64  `json:"datetime"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

type TickerNewsResponse struct {
	News    []NewsArticle `json:"news"`
	Ticker  string        `json:"ticker,omitempty"`
	Message string        `json:"message,omitempty"`
}

// PolygonArticle mirrors the Polygon reference-news shape. Returned raw, one
// article per rotation call.
type PolygonArticle struct {
	ID        string `json:"id"`
	Publisher struct {
		Name    string `json:"name"`
		LogoURL string `json:"logo_url"`
	} `json:"publisher"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	PublishedUTC string   `json:"published_utc"`
	ArticleURL   string   `json:"article_url"`
	Tickers      []string `json:"tickers"`
	ImageURL     string   `json:"image_url"`
	Description  string   `json:"description"`
}

type PolygonNewsResponse struct {
	Results []PolygonArticle `json:"results"`
	Status  string           `json:"status"`
}
