package prompt

import "github.com/heartmarshall/ecomind-backend/internal/config"

// Kind identifies an AI operation for sampling purposes.
type Kind string

const (
	KindExtraction Kind = "extraction"
	KindSentiment  Kind = "sentiment"
	KindInsights   Kind = "insights"
)

// Fixed nucleus and top-k sampling shared by every kind.
const (
	TopP float32 = 0.8
	TopK float32 = 40
)

// Params are the sampling parameters sent with a generation request.
type Params struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
	JSONResponse    bool
}

// ParamsFor returns the sampling parameters for kind. Analysis kinds use the
// lower analysis temperature; insights use the generative temperature.
func ParamsFor(kind Kind, cfg config.AIConfig) Params {
	temp := cfg.AnalysisTemperature
	if kind == KindInsights {
		temp = cfg.GenerativeTemperature
	}

	return Params{
		Temperature:     temp,
		TopP:            TopP,
		TopK:            TopK,
		MaxOutputTokens: cfg.MaxOutputTokens,
		JSONResponse:    true,
	}
}
