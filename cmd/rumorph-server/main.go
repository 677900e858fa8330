// Command rumorph-server exposes the rumorph morphology core as a JSON REST
// API for the reader front end.
//
// Endpoints:
//
//	GET  /api/lookup?word=<form>[&paradigm=true]
//	GET  /api/lemmatize?word=<form>
//	POST /api/matches    body: {"text":"...","vocab":[{"word":"...","meaning":"..."},...]}
//	POST /api/highlight  body: same as /api/matches
//	GET  /api/health
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ruslingua/rumorph"
)

// ---- JSON response types ------------------------------------------------

type lemmatizeResponse struct {
	Word   string   `json:"word"`
	Lemmas []string `json:"lemmas"`
}

type vocabRequest struct {
	Text  string               `json:"text"`
	Vocab []rumorph.VocabEntry `json:"vocab"`
}

type matchesResponse struct {
	Matches []rumorph.MatchSpan `json:"matches"`
}

type highlightResponse struct {
	HTML string `json:"html"`
}

type healthResponse struct {
	Status            string `json:"status"`
	AnalyzerAvailable bool   `json:"analyzer_available"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleLookup(gen *rumorph.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		withParadigm, _ := strconv.ParseBool(r.URL.Query().Get("paradigm"))
		writeJSON(w, http.StatusOK, gen.Lookup(word, withParadigm))
	}
}

func handleLemmatize(an *rumorph.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, lemmatizeResponse{
			Word:   word,
			Lemmas: an.Lemmatize(word),
		})
	}
}

func decodeVocabRequest(w http.ResponseWriter, r *http.Request) (*vocabRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return nil, false
	}
	var body vocabRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "body must be JSON with 'text' and 'vocab' fields")
		return nil, false
	}
	return &body, true
}

func handleMatches(m *rumorph.Matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeVocabRequest(w, r)
		if !ok {
			return
		}
		idx := m.BuildIndex(body.Vocab)
		matches := m.FindMatches(body.Text, idx)
		if matches == nil {
			matches = []rumorph.MatchSpan{}
		}
		writeJSON(w, http.StatusOK, matchesResponse{Matches: matches})
	}
}

func handleHighlight(m *rumorph.Matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeVocabRequest(w, r)
		if !ok {
			return
		}
		idx := m.BuildIndex(body.Vocab)
		writeJSON(w, http.StatusOK, highlightResponse{
			HTML: m.Highlight(body.Text, idx),
		})
	}
}

func handleHealth(an *rumorph.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:            "ok",
			AnalyzerAvailable: an.Available(),
		})
	}
}

// ---- command ------------------------------------------------------------

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rumorph-server",
	Short: "JSON API for Russian morphological analysis and vocabulary highlighting",
	Long: `rumorph-server wraps the rumorph library in a small JSON REST API:
word lookup with full inflection paradigms, lemmatization, and vocabulary
highlighting of free text. Without a lexicon it still serves requests in
degraded identity-lemma mode.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rumorph.yaml)")
	rootCmd.Flags().String("addr", ":8080", "listen address")
	rootCmd.Flags().String("lexicon", "", "path to YAML lexicon (empty: degraded mode)")
	rootCmd.Flags().Bool("stem-fallback", false, "enable Snowball stem fallback matching")
	rootCmd.Flags().StringSlice("cors-origins", nil, "allowed CORS origins (empty: allow all)")

	_ = viper.BindPFlag("addr", rootCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("lexicon", rootCmd.Flags().Lookup("lexicon"))
	_ = viper.BindPFlag("stem_fallback", rootCmd.Flags().Lookup("stem-fallback"))
	_ = viper.BindPFlag("cors_origins", rootCmd.Flags().Lookup("cors-origins"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("rumorph")
	}
	viper.SetEnvPrefix("RUMORPH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("using config file %s", viper.ConfigFileUsed())
	}
}

func serve() error {
	var dict rumorph.Dictionary
	if path := viper.GetString("lexicon"); path != "" {
		log.Printf("loading lexicon from %s …", path)
		lx, err := rumorph.OpenLexicon(path)
		if err != nil {
			return fmt.Errorf("load lexicon: %w", err)
		}
		log.Printf("lexicon loaded: %d surface forms", lx.Size())
		dict = lx
	} else {
		log.Println("no lexicon configured; running in degraded identity-lemma mode")
	}

	an := rumorph.New(dict)
	gen := rumorph.NewGenerator(an)

	var opts []rumorph.MatcherOption
	if viper.GetBool("stem_fallback") {
		opts = append(opts, rumorph.WithStemFallback())
	}
	matcher := rumorph.NewMatcher(an, opts...)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/lookup", handleLookup(gen))
	mux.HandleFunc("/api/lemmatize", handleLemmatize(an))
	mux.HandleFunc("/api/matches", handleMatches(matcher))
	mux.HandleFunc("/api/highlight", handleHighlight(matcher))
	mux.HandleFunc("/api/health", handleHealth(an))

	var handler http.Handler
	if origins := viper.GetStringSlice("cors_origins"); len(origins) > 0 {
		handler = cors.New(cors.Options{AllowedOrigins: origins}).Handler(mux)
	} else {
		handler = cors.Default().Handler(mux)
	}

	addr := viper.GetString("addr")
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, handler)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
