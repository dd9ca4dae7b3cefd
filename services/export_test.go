package services

import "net/http"

// Test hooks exposing the sheets service internals to the external test package.

func NewTestSheetsService(client *http.Client, connectorsURL, sheetsURL, identity string) *SheetsService {
	return &SheetsService{
		client:        client,
		connectorsURL: connectorsURL,
		sheetsURL:     sheetsURL,
		identityToken: identity,
	}
}

func (s *SheetsService) GetAccessToken() (string, error) {
	return s.getAccessToken()
}

func (s *SheetsService) GetOrCreateSpreadsheet() (string, error) {
	return s.getOrCreateSpreadsheet()
}
