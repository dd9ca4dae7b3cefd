package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"api/config"
	"api/metrics"
	"api/models"
)

var (
	ErrCredentialUnavailable = errors.New("no connector credential material configured")
	ErrSheetNotConnected     = errors.New("google sheet not connected")
)

const (
	spreadsheetTitle = "Heist Party - RSVPs"
	sheetTabName     = "RSVPs"
	defaultSheetsURL = "https://sheets.googleapis.com"
)

// SheetsService mirrors RSVPs to a Google Sheet through the Replit connector.
// It is strictly best-effort: the RSVP row in the database is authoritative,
// a lost spreadsheet row is acceptable collateral.
type SheetsService struct {
	client        *http.Client
	connectorsURL string
	sheetsURL     string
	identityToken string

	// cached access token; concurrent refreshes may overwrite each other,
	// which is a harmless idempotent race
	accessToken string
	expiresAt   time.Time
}

func NewSheetsService() *SheetsService {
	identity := ""
	if config.ReplIdentity != "" {
		identity = "repl " + config.ReplIdentity
	} else if config.WebReplRenewal != "" {
		identity = "depl " + config.WebReplRenewal
	}

	connectorsURL := ""
	if config.ConnectorsHostname != "" {
		connectorsURL = "https://" + config.ConnectorsHostname
	}

	return &SheetsService{
		client:        http.DefaultClient,
		connectorsURL: connectorsURL,
		sheetsURL:     defaultSheetsURL,
		identityToken: identity,
	}
}

type connectorSettings struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
	OAuth       struct {
		Credentials struct {
			AccessToken string `json:"access_token"`
		} `json:"credentials"`
	} `json:"oauth"`
}

type connectorResponse struct {
	Items []struct {
		Settings connectorSettings `json:"settings"`
	} `json:"items"`
}

// getAccessToken returns the cached token while it is still valid, otherwise
// exchanges the process credential material for a fresh one
func (s *SheetsService) getAccessToken() (string, error) {
	if s.accessToken != "" && s.expiresAt.After(time.Now()) {
		return s.accessToken, nil
	}

	if s.identityToken == "" || s.connectorsURL == "" {
		return "", ErrCredentialUnavailable
	}

	req, err := http.NewRequest(http.MethodGet,
		s.connectorsURL+"/api/v2/connection?include_secrets=true&connector_names=google-sheet", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X_REPLIT_TOKEN", s.identityToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach connector endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("connector endpoint returned %s", resp.Status)
	}

	var payload connectorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode connector response: %w", err)
	}

	if len(payload.Items) == 0 {
		return "", ErrSheetNotConnected
	}

	settings := payload.Items[0].Settings
	token := settings.AccessToken
	if token == "" {
		token = settings.OAuth.Credentials.AccessToken
	}
	if token == "" {
		return "", ErrSheetNotConnected
	}

	s.accessToken = token
	s.expiresAt = time.Time{}
	if expiry, err := time.Parse(time.RFC3339, settings.ExpiresAt); err == nil {
		s.expiresAt = expiry
	}

	return token, nil
}

// getOrCreateSpreadsheet resolves the destination sheet, provisioning it on
// first use and remembering its identifier in the settings table. Concurrent
// first-time calls may race and create duplicate sheets; the last writer wins.
func (s *SheetsService) getOrCreateSpreadsheet() (string, error) {
	if id, ok, err := GetAppSetting(models.AppSettingSheetID); err != nil {
		return "", err
	} else if ok {
		return id, nil
	}

	token, err := s.getAccessToken()
	if err != nil {
		return "", err
	}

	createBody := map[string]interface{}{
		"properties": map[string]interface{}{"title": spreadsheetTitle},
		"sheets": []map[string]interface{}{
			{"properties": map[string]interface{}{"title": sheetTabName}},
		},
	}

	var created struct {
		SpreadsheetID string `json:"spreadsheetId"`
	}
	if err := s.callSheets(http.MethodPost, s.sheetsURL+"/v4/spreadsheets", token, createBody, &created); err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}
	if created.SpreadsheetID == "" {
		return "", fmt.Errorf("spreadsheet create returned no id")
	}

	headerURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		s.sheetsURL, created.SpreadsheetID, url.PathEscape(sheetTabName+"!A1:C1"))
	headerBody := map[string]interface{}{
		"values": [][]interface{}{{"Name", "Attendees", "Date"}},
	}
	if err := s.callSheets(http.MethodPut, headerURL, token, headerBody, nil); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	if err := SetAppSetting(models.AppSettingSheetID, created.SpreadsheetID); err != nil {
		return "", err
	}

	log.Printf("Created Google Sheet: %s", created.SpreadsheetID)
	return created.SpreadsheetID, nil
}

// AppendRsvp appends one row [name, attendees, timestamp] to the mirror sheet
func (s *SheetsService) AppendRsvp(name string, attendees int) error {
	sheetID, err := s.getOrCreateSpreadsheet()
	if err != nil {
		return err
	}

	token, err := s.getAccessToken()
	if err != nil {
		return err
	}

	appendURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW",
		s.sheetsURL, sheetID, url.PathEscape(sheetTabName+"!A:C"))
	body := map[string]interface{}{
		"values": [][]interface{}{
			{name, attendees, time.Now().UTC().Format(time.RFC3339)},
		},
	}
	if err := s.callSheets(http.MethodPost, appendURL, token, body, nil); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	log.Printf("RSVP appended to Google Sheet: %s (%d)", name, attendees)
	return nil
}

func (s *SheetsService) callSheets(method, endpoint, token string, payload, dest interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheets API returned %s", resp.Status)
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("failed to decode sheets response: %w", err)
		}
	}
	return nil
}

// Sheets is the process-wide notifier instance. main assigns it once at boot,
// before any request goroutine can read it; tests substitute a service pointed
// at fake endpoints.
var Sheets *SheetsService

// AppendRsvpToSheet is the fire-and-forget entry point used by the RSVP
// handler. Every failure is logged and swallowed, never retried, and never
// reaches the visitor.
func AppendRsvpToSheet(name string, attendees int) {
	if Sheets == nil {
		log.Println("Google Sheets sync skipped: notifier not configured")
		return
	}

	if err := Sheets.AppendRsvp(name, attendees); err != nil {
		metrics.SheetSyncTotal.WithLabelValues("error").Inc()
		log.Println("Google Sheets sync failed (non-blocking): ", err)
		return
	}
	metrics.SheetSyncTotal.WithLabelValues("ok").Inc()
}
