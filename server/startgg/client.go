// server/startgg/client.go
package startgg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const apiURL = "https://api.start.gg/gql/alpha"

// Entrant pages are capped at 100 by the API.
const entrantsPerPage = 100

var ErrNoToken = errors.New("start.gg API token not configured")
var ErrEventNotFound = errors.New("start.gg event not found")

// Client pulls tournament entrants from the start.gg GraphQL API, so a
// producer can seed team presets from a bracket instead of typing them in.
type Client struct {
	token      string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Entrant is one team or player registered for an event. Logo is the
// team's profile image URL when the bracket has one, "" otherwise.
type Entrant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

const eventIDQuery = `query EventID($slug: String) {
  event(slug: $slug) { id name }
}`

const entrantsQuery = `query Entrants($eventId: ID!, $page: Int!, $perPage: Int!) {
  event(id: $eventId) {
    entrants(query: {page: $page, perPage: $perPage}) {
      pageInfo { totalPages }
      nodes {
        id
        name
        team { images { url type } }
      }
    }
  }
}`

func (c *Client) post(ctx context.Context, query string, variables map[string]any, out any) error {
	if c.token == "" {
		return ErrNoToken
	}

	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal start.gg query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build start.gg request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("start.gg request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("start.gg returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []gqlError      `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode start.gg response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("start.gg query error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode start.gg data: %w", err)
	}
	return nil
}

// EventID resolves an event slug (e.g.
// "tournament/genesis-9/event/overwatch-2") to its numeric id.
func (c *Client) EventID(ctx context.Context, slug string) (int64, error) {
	var data struct {
		Event *struct {
			ID int64 `json:"id"`
		} `json:"event"`
	}
	if err := c.post(ctx, eventIDQuery, map[string]any{"slug": slug}, &data); err != nil {
		return 0, err
	}
	if data.Event == nil {
		return 0, ErrEventNotFound
	}
	return data.Event.ID, nil
}

type entrantNode struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Team *struct {
		Images []struct {
			URL  string `json:"url"`
			Type string `json:"type"`
		} `json:"images"`
	} `json:"team"`
}

func (n entrantNode) toEntrant() Entrant {
	e := Entrant{ID: n.ID, Name: n.Name}
	if n.Team != nil {
		for _, img := range n.Team.Images {
			if img.Type == "profile" {
				e.Logo = img.URL
				break
			}
		}
	}
	return e
}

// Entrants fetches every entrant for an event, paging until done.
func (c *Client) Entrants(ctx context.Context, eventID int64) ([]Entrant, error) {
	var all []Entrant
	for page := 1; ; page++ {
		var data struct {
			Event *struct {
				Entrants struct {
					PageInfo struct {
						TotalPages int `json:"totalPages"`
					} `json:"pageInfo"`
					Nodes []entrantNode `json:"nodes"`
				} `json:"entrants"`
			} `json:"event"`
		}
		vars := map[string]any{"eventId": eventID, "page": page, "perPage": entrantsPerPage}
		if err := c.post(ctx, entrantsQuery, vars, &data); err != nil {
			return nil, err
		}
		if data.Event == nil {
			return nil, ErrEventNotFound
		}
		for _, node := range data.Event.Entrants.Nodes {
			all = append(all, node.toEntrant())
		}
		if page >= data.Event.Entrants.PageInfo.TotalPages {
			break
		}
	}
	return all, nil
}

// EntrantsBySlug is the one-call path the API handler uses.
func (c *Client) EntrantsBySlug(ctx context.Context, slug string) ([]Entrant, error) {
	id, err := c.EventID(ctx, slug)
	if err != nil {
		return nil, err
	}
	return c.Entrants(ctx, id)
}
