package dto

type StatusResponse struct {
	Authenticated bool `json:"authenticated"`
	HasOAuthToken bool `json:"hasOAuthToken"`
	HasAPIKey     bool `json:"hasApiKey"`
}
