package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/Karan-Chaurasia/AI-Dictionary/cmd/lookup"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/config"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/transport/rest"
)

func newDictionary(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/receive" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `[{"word":"receive","meanings":[{"partOfSpeech":"verb","definitions":[{"definition":"Be given something."},{"definition":"Greet a guest."}]}]}]`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testMain(t *testing.T) *main.Main {
	t.Helper()
	dict := newDictionary(t)
	m := main.NewMain()
	m.Config = &config.Config{
		Recipe:     config.RecipeConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second},
		Dictionary: config.DictionaryConfig{BaseURL: dict.URL, Timeout: 2 * time.Second},
		Spell:      config.SpellConfig{MaxLength: 15},
	}
	return m
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("prints corrected definitions as text", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := testMain(t).Run(context.Background(), []string{"recieve"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t,
			"Did you mean 'Receive'? Using it for search.\n"+
				"receive:\n"+
				"1. verb: Be given something.\n"+
				"2. verb: Greet a guest.\n",
			stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("prints JSON body", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := testMain(t).Run(context.Background(), []string{"--json", "recieve"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		var got rest.LookupResponse
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		corrected, msg := "receive", "Did you mean 'Receive'? Using it for search."
		assert.Equal(t, rest.LookupResponse{
			OriginalWord:      "recieve",
			CorrectedWord:     &corrected,
			CorrectionMessage: &msg,
			Definitions:       []string{"verb: Be given something.", "verb: Greet a guest."},
		}, got)
	})

	t.Run("joins arguments into one formula", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := testMain(t).Run(context.Background(), []string{"x^2", "+", "y^2"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Formula: x^{2} + y^{2}\n", stdout.String())
	})

	t.Run("unknown word", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := testMain(t).Run(context.Background(), []string{"qzxjvk"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "qzxjvk:\n1. Word not found in dictionary.\n", stdout.String())
	})

	t.Run("no arguments prints help and fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := testMain(t).Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no query specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := testMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "lookup")
	})
}
