package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/zzsound/codes"
	"github.com/jsphweid/zzsound/freq"
	"github.com/jsphweid/zzsound/model"
	"github.com/jsphweid/zzsound/notation"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the decoder over HTTP",
	Long:  `Serves the decoder over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleDecode(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body: "+err.Error())
		return
	}

	var input model.DecodeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	entries, err := codes.ParseHex(input.Codes)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	out, err := notation.Decode(entries, notation.Options{AppendRests: input.AppendRests})
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	json.NewEncoder(w).Encode(model.DecodeResponse{Notation: out})
}

func HandleFrequencies(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(freq.Frequencies())
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/decode", HandleDecode).Methods("POST")
	router.HandleFunc("/frequencies", HandleFrequencies).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
