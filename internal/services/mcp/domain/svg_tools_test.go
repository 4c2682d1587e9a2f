package domain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/svgl/svgl-mcp/internal/services/mcp/svgl"
)

func TestGetAllSVGsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		catalog := &fakeCatalog{svgs: json.RawMessage(`[{"title":"A","category":"x","route":"r","url":"u"}]`)}
		limit := 2
		result, out, err := GetAllSVGsHandler(catalog)(context.Background(), nil, GetAllSVGsInput{Limit: &limit})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != nil {
			t.Fatalf("expected no structured output, got %v", out)
		}
		if catalog.lastLimit == nil || *catalog.lastLimit != 2 {
			t.Fatalf("expected limit 2 to be forwarded, got %v", catalog.lastLimit)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "\n  ") {
			t.Fatalf("expected pretty-printed JSON, got %q", text)
		}
		var decoded []map[string]any
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(decoded) != 1 || decoded[0]["title"] != "A" || decoded[0]["category"] != "x" {
			t.Fatalf("unexpected payload %v", decoded)
		}
	})

	t.Run("absent limit", func(t *testing.T) {
		catalog := &fakeCatalog{svgs: json.RawMessage(`[]`)}
		result, _, err := GetAllSVGsHandler(catalog)(context.Background(), nil, GetAllSVGsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if catalog.lastLimit != nil {
			t.Fatalf("expected nil limit, got %d", *catalog.lastLimit)
		}
		if got := resultText(t, result); got != "[]" {
			t.Fatalf("expected empty array, got %q", got)
		}
	})

	t.Run("status failure", func(t *testing.T) {
		catalog := &fakeCatalog{err: statusError(t, 404, "?limit=5")}
		result, _, err := GetAllSVGsHandler(catalog)(context.Background(), nil, GetAllSVGsInput{})
		if err != nil {
			t.Fatalf("expected envelope, got error %v", err)
		}
		if result.IsError {
			t.Fatal("envelope must not be flagged as a tool error")
		}
		envelope := decodeEnvelope(t, result)
		if envelope["error"] != svgl.ErrorKind {
			t.Fatalf("unexpected error kind %v", envelope["error"])
		}
		if envelope["statusCode"] != float64(404) {
			t.Fatalf("unexpected status code %v", envelope["statusCode"])
		}
		if envelope["endpoint"] != "?limit=5" {
			t.Fatalf("unexpected endpoint %v", envelope["endpoint"])
		}
	})

	t.Run("unclassified failure propagates", func(t *testing.T) {
		boom := errors.New("boom")
		catalog := &fakeCatalog{err: boom}
		result, _, err := GetAllSVGsHandler(catalog)(context.Background(), nil, GetAllSVGsInput{})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if result != nil {
			t.Fatal("expected no result")
		}
	})

	t.Run("nil catalog", func(t *testing.T) {
		if _, _, err := GetAllSVGsHandler(nil)(context.Background(), nil, GetAllSVGsInput{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestListingHandlersPassBodyThrough(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown field and key order",
			body: `[{"url":"u","title":"A","extra":{"n":1.50}}]`,
			want: "[\n  {\n    \"url\": \"u\",\n    \"title\": \"A\",\n    \"extra\": {\n      \"n\": 1.50\n    }\n  }\n]",
		},
		{
			name: "missing fields",
			body: `[{"title":"only title"}]`,
			want: "[\n  {\n    \"title\": \"only title\"\n  }\n]",
		},
		{
			name: "numeric category",
			body: `[{"title":"A","category":7}]`,
			want: "[\n  {\n    \"title\": \"A\",\n    \"category\": 7\n  }\n]",
		},
		{
			name: "object body",
			body: `{"message":"not an array"}`,
			want: "{\n  \"message\": \"not an array\"\n}",
		},
		{
			name: "markup kept literal",
			body: `[{"title":"<A&B>"}]`,
			want: "[\n  {\n    \"title\": \"<A&B>\"\n  }\n]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{svgs: json.RawMessage(tt.body)}
			result, _, err := GetAllSVGsHandler(catalog)(context.Background(), nil, GetAllSVGsInput{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsError {
				t.Fatal("pass-through body must not be flagged as a tool error")
			}
			if got := resultText(t, result); got != tt.want {
				t.Fatalf("text:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		catalog := &fakeCatalog{categories: json.RawMessage(`[{"category":"Software","total":3}]`)}
		result, _, err := GetCategoriesHandler(catalog)(context.Background(), nil, GetCategoriesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if catalog.lastOperation != "list_categories" {
			t.Fatalf("unexpected operation %q", catalog.lastOperation)
		}
		var decoded []svgl.Category
		if err := json.Unmarshal([]byte(resultText(t, result)), &decoded); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(decoded) != 1 || decoded[0].Total != 3 {
			t.Fatalf("unexpected categories %+v", decoded)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		catalog := &fakeCatalog{err: &svgl.APIError{Message: "Failed to fetch from SVGL API: refused", Endpoint: "/categories"}}
		result, _, err := GetCategoriesHandler(catalog)(context.Background(), nil, GetCategoriesInput{})
		if err != nil {
			t.Fatalf("expected envelope, got error %v", err)
		}
		envelope := decodeEnvelope(t, result)
		if _, ok := envelope["statusCode"]; ok {
			t.Fatalf("expected no status code, got %v", envelope["statusCode"])
		}
		if envelope["message"] == "" {
			t.Fatal("expected message")
		}
		if envelope["endpoint"] != "/categories" {
			t.Fatalf("unexpected endpoint %v", envelope["endpoint"])
		}
	})
}

func TestGetSVGsByCategoryHandler(t *testing.T) {
	catalog := &fakeCatalog{svgs: json.RawMessage(`[]`)}
	result, _, err := GetSVGsByCategoryHandler(catalog)(context.Background(), nil, GetSVGsByCategoryInput{Category: "Software"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.lastCategory != "Software" {
		t.Fatalf("expected raw category to reach the client, got %q", catalog.lastCategory)
	}
	if got := resultText(t, result); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestSearchSVGsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		catalog := &fakeCatalog{svgs: json.RawMessage(`[{"title":"React","route":"r","url":"u"}]`)}
		_, _, err := SearchSVGsHandler(catalog)(context.Background(), nil, SearchSVGsInput{Query: "react native"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if catalog.lastQuery != "react native" {
			t.Fatalf("unexpected query %q", catalog.lastQuery)
		}
	})

	t.Run("status failure", func(t *testing.T) {
		catalog := &fakeCatalog{err: statusError(t, 404, "?search=x")}
		result, _, err := SearchSVGsHandler(catalog)(context.Background(), nil, SearchSVGsInput{Query: "x"})
		if err != nil {
			t.Fatalf("expected envelope, got %v", err)
		}
		if envelope := decodeEnvelope(t, result); envelope["endpoint"] != "?search=x" {
			t.Fatalf("unexpected endpoint %v", envelope["endpoint"])
		}
	})
}

func TestSaveSVGFromURLHandler(t *testing.T) {
	t.Run("success wraps raw text", func(t *testing.T) {
		const svg = `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0"/></svg>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/svg+xml")
			_, _ = w.Write([]byte(svg))
		}))
		defer server.Close()

		result, _, err := SaveSVGFromURLHandler(server.Client())(context.Background(), nil, SaveSVGFromURLInput{URL: server.URL + "/logo.svg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var text string
		if err := json.Unmarshal([]byte(resultText(t, result)), &text); err != nil {
			t.Fatalf("expected a JSON string, got %q: %v", resultText(t, result), err)
		}
		if text != svg {
			t.Fatalf("unexpected svg %q", text)
		}
		if !strings.HasPrefix(resultText(t, result), `"<svg xmlns=`) {
			t.Fatalf("expected markup to stay literal, got %q", resultText(t, result))
		}
	})

	t.Run("failing status is still returned as text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusGone)
		}))
		defer server.Close()

		result, _, err := SaveSVGFromURLHandler(server.Client())(context.Background(), nil, SaveSVGFromURLInput{URL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var text string
		if err := json.Unmarshal([]byte(resultText(t, result)), &text); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if strings.TrimSpace(text) != "gone" {
			t.Fatalf("unexpected body %q", text)
		}
	})

	t.Run("network failure is not enveloped", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		target := server.URL
		server.Close()

		result, _, err := SaveSVGFromURLHandler(http.DefaultClient)(context.Background(), nil, SaveSVGFromURLInput{URL: target})
		if err == nil {
			t.Fatal("expected network failure to propagate")
		}
		if result != nil {
			t.Fatal("expected no envelope for an unclassified failure")
		}
		if _, ok := svgl.AsAPIError(err); ok {
			t.Fatal("direct fetch must not produce a classified failure")
		}
	})

	t.Run("invalid url is not enveloped", func(t *testing.T) {
		_, _, err := SaveSVGFromURLHandler(http.DefaultClient)(context.Background(), nil, SaveSVGFromURLInput{URL: "://nope"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("classified failure is enveloped", func(t *testing.T) {
		doer := doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, &svgl.APIError{Message: "Failed to fetch from SVGL API: x", Endpoint: "/x"}
		})
		result, _, err := SaveSVGFromURLHandler(doer)(context.Background(), nil, SaveSVGFromURLInput{URL: "http://example.invalid/x.svg"})
		if err != nil {
			t.Fatalf("expected envelope, got %v", err)
		}
		if envelope := decodeEnvelope(t, result); envelope["error"] != svgl.ErrorKind {
			t.Fatalf("unexpected envelope %v", envelope)
		}
	})
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }
