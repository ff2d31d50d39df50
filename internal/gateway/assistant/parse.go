package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"logistics-dashboard-service/internal/apperr"
	"logistics-dashboard-service/internal/domain"
)

// The assistant is told to answer with bare JSON, but models habitually wrap
// it in markdown fences or prose anyway. extractJSONArray pulls the
// outermost array out of the text; everything else about the shape is then
// checked strictly.
func extractJSONArray(text string) (string, error) {
	start := strings.IndexByte(text, '[')
	end := strings.LastIndexByte(text, ']')
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON array in assistant output: %w", apperr.ErrUnavailable)
	}
	return text[start : end+1], nil
}

func parseRouteSuggestions(text string, want []string) ([]domain.RouteSuggestion, error) {
	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}
	var out []domain.RouteSuggestion
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("malformed assistant output: %v: %w", err, apperr.ErrUnavailable)
	}
	if len(out) != len(want) {
		return nil, fmt.Errorf("assistant answered %d routes, want %d: %w",
			len(out), len(want), apperr.ErrUnavailable)
	}

	wanted := make(map[string]bool, len(want))
	for _, id := range want {
		wanted[id] = true
	}
	seen := make(map[string]bool, len(out))
	positions := make(map[int]bool, len(out))
	for _, sug := range out {
		if !wanted[sug.RouteID] {
			return nil, fmt.Errorf("assistant invented route %q: %w", sug.RouteID, apperr.ErrUnavailable)
		}
		if seen[sug.RouteID] {
			return nil, fmt.Errorf("assistant repeated route %q: %w", sug.RouteID, apperr.ErrUnavailable)
		}
		seen[sug.RouteID] = true
		if sug.Position < 1 || sug.Position > len(want) || positions[sug.Position] {
			return nil, fmt.Errorf("assistant position %d invalid for route %q: %w",
				sug.Position, sug.RouteID, apperr.ErrUnavailable)
		}
		positions[sug.Position] = true
	}
	return out, nil
}

func parseOrganizedEmails(text string, n int) ([]domain.OrganizedEmail, error) {
	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}
	var out []domain.OrganizedEmail
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("malformed assistant output: %v: %w", err, apperr.ErrUnavailable)
	}
	if len(out) != n {
		return nil, fmt.Errorf("assistant answered %d emails, want %d: %w",
			len(out), n, apperr.ErrUnavailable)
	}

	seen := make(map[int]bool, n)
	for _, oe := range out {
		if oe.Index < 0 || oe.Index >= n || seen[oe.Index] {
			return nil, fmt.Errorf("assistant index %d invalid: %w", oe.Index, apperr.ErrUnavailable)
		}
		seen[oe.Index] = true
		if !oe.Category.Valid() {
			return nil, fmt.Errorf("assistant category %q outside vocabulary: %w",
				oe.Category, apperr.ErrUnavailable)
		}
		if !oe.Priority.Valid() {
			return nil, fmt.Errorf("assistant priority %q outside vocabulary: %w",
				oe.Priority, apperr.ErrUnavailable)
		}
	}
	return out, nil
}
