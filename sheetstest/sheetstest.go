// Package sheetstest provides a fake Google Sheets v4 API server for testing.
//
// The server holds the values for a single spreadsheet and implements the subset of
// the API used by gsheets-append:
//
//   - GET  /v4/spreadsheets/{id}
//   - POST /v4/spreadsheets/{id}:batchUpdate (appendCells only)
//   - POST /v4/spreadsheets/{id}/values/{range}:append
//   - GET  /v4/spreadsheets/{id}/values/{range}
//   - PUT  /v4/spreadsheets/{id}/values/{range}
//
// It also answers POST /token as an OAuth2 token endpoint so that a service account
// generated by ServiceAccount can be used end to end:
//
//	srv := sheetstest.NewServer(spreadsheetID, map[string]int64{"Sheet1": 0})
//	defer srv.Close()
//
//	key, _ := srv.ServiceAccount()
//	google, _ := auth.NewSheetsService(ctx, auth.FromJSON(key), srv.Endpoint())
package sheetstest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Token is the access token issued by the fake token endpoint.
const Token = "sheetstest-access-token"

type Server struct {
	sync.Mutex
	*httptest.Server

	SpreadsheetID string
	Tabs          []*sheets.SheetProperties
	Values        map[string][][]interface{}

	// Fail, if not zero, is returned as the HTTP status of every API request.
	Fail int

	Batches       []sheets.BatchUpdateSpreadsheetRequest
	Appends       []Call
	Updates       []Call
	Authorization []string
	Tokens        int
}

// Call records a values append or update request.
type Call struct {
	Range            string
	ValueInputOption string
	Values           [][]interface{}
}

func NewServer(spreadsheetID string, tabs map[string]int64) *Server {
	s := Server{
		SpreadsheetID: spreadsheetID,
		Values:        map[string][][]interface{}{},
	}

	for title, id := range tabs {
		s.Tabs = append(s.Tabs, &sheets.SheetProperties{Title: title, SheetId: id})
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))

	return &s
}

// Endpoint returns the client option that points a Sheets client at the server.
func (s *Server) Endpoint() option.ClientOption {
	return option.WithEndpoint(s.Server.URL + "/")
}

// Options returns client options for an unauthenticated client i.e. for tests that
// are not exercising the service account authorisation.
func (s *Server) Options() []option.ClientOption {
	return []option.ClientOption{
		option.WithHTTPClient(s.Server.Client()),
		s.Endpoint(),
	}
}

// ServiceAccount generates a service account key with a new RSA private key and with
// the token URI set to the server's token endpoint.
func (s *Server) ServiceAccount() ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "sheetstest",
		"private_key_id": "0123456789abcdef",
		"private_key":    string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
		"client_email":   "appender@sheetstest.iam.gserviceaccount.com",
		"token_uri":      s.Server.URL + "/token",
	})
}

func (s *Server) handle(w http.ResponseWriter, rq *http.Request) {
	s.Lock()
	defer s.Unlock()

	if rq.Method == http.MethodPost && rq.URL.Path == "/token" {
		s.token(w, rq)
		return
	}

	s.Authorization = append(s.Authorization, rq.Header.Get("Authorization"))

	if s.Fail != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.Fail)
		fmt.Fprintf(w, `{"error":{"code":%d,"message":"simulated failure","status":"NOT_FOUND","errors":[{"reason":"notFound","message":"simulated failure"}]}}`, s.Fail)
		return
	}

	path, ok := strings.CutPrefix(rq.URL.Path, "/v4/spreadsheets/"+s.SpreadsheetID)
	if !ok {
		http.NotFound(w, rq)
		return
	}

	switch {
	case rq.Method == http.MethodGet && path == "":
		s.reply(w, sheets.Spreadsheet{SpreadsheetId: s.SpreadsheetID, Sheets: s.list()})

	case rq.Method == http.MethodPost && path == ":batchUpdate":
		var body sheets.BatchUpdateSpreadsheetRequest
		if err := json.NewDecoder(rq.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.Batches = append(s.Batches, body)
		for _, r := range body.Requests {
			if r.AppendCells != nil {
				s.appendCells(r.AppendCells)
			}
		}

		s.reply(w, sheets.BatchUpdateSpreadsheetResponse{SpreadsheetId: s.SpreadsheetID})

	case rq.Method == http.MethodPost && strings.HasPrefix(path, "/values/") && strings.HasSuffix(path, ":append"):
		area := strings.TrimSuffix(strings.TrimPrefix(path, "/values/"), ":append")

		var body sheets.ValueRange
		if err := json.NewDecoder(rq.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.Appends = append(s.Appends, Call{Range: area, ValueInputOption: rq.URL.Query().Get("valueInputOption"), Values: body.Values})

		title := Tab(area)
		cells := 0
		for _, v := range body.Values {
			s.Values[title] = append(s.Values[title], v)
			cells += len(v)
		}

		s.reply(w, sheets.AppendValuesResponse{
			SpreadsheetId: s.SpreadsheetID,
			Updates: &sheets.UpdateValuesResponse{
				UpdatedRange: area,
				UpdatedRows:  int64(len(body.Values)),
				UpdatedCells: int64(cells),
			},
		})

	case rq.Method == http.MethodGet && strings.HasPrefix(path, "/values/"):
		area := strings.TrimPrefix(path, "/values/")

		s.reply(w, sheets.ValueRange{Range: area, Values: s.Values[Tab(area)]})

	case rq.Method == http.MethodPut && strings.HasPrefix(path, "/values/"):
		area := strings.TrimPrefix(path, "/values/")

		var body sheets.ValueRange
		if err := json.NewDecoder(rq.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.Updates = append(s.Updates, Call{Range: area, ValueInputOption: rq.URL.Query().Get("valueInputOption"), Values: body.Values})

		s.reply(w, sheets.UpdateValuesResponse{UpdatedRange: area})

	default:
		http.NotFound(w, rq)
	}
}

// token answers a JWT bearer grant. The assertion signature is not verified.
func (s *Server) token(w http.ResponseWriter, rq *http.Request) {
	if err := rq.ParseForm(); err != nil || rq.PostForm.Get("assertion") == "" {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		return
	}

	s.Tokens++

	s.reply(w, map[string]any{
		"access_token": Token,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (s *Server) list() []*sheets.Sheet {
	list := []*sheets.Sheet{}
	for _, p := range s.Tabs {
		list = append(list, &sheets.Sheet{Properties: p})
	}

	return list
}

func (s *Server) appendCells(rq *sheets.AppendCellsRequest) {
	for _, p := range s.Tabs {
		if p.SheetId == rq.SheetId {
			for _, r := range rq.Rows {
				values := []interface{}{}
				for _, cell := range r.Values {
					if cell.UserEnteredValue != nil && cell.UserEnteredValue.StringValue != nil {
						values = append(values, *cell.UserEnteredValue.StringValue)
					} else {
						values = append(values, "")
					}
				}

				s.Values[p.Title] = append(s.Values[p.Title], values)
			}
		}
	}
}

func (s *Server) reply(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Tab returns the unquoted sheet name of an A1 range.
func Tab(area string) string {
	title := area
	if ix := strings.LastIndex(area, "!"); ix >= 0 {
		title = area[:ix]
	}

	if strings.HasPrefix(title, "'") && strings.HasSuffix(title, "'") && len(title) > 1 {
		title = strings.ReplaceAll(title[1:len(title)-1], "''", "'")
	}

	return title
}
