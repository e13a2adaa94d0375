package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/zzsound/model"
	"github.com/stretchr/testify/assert"
)

func createDecodeReqBody(body model.DecodeRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestHandleDecodeBasic(t *testing.T) {
	body := createDecodeReqBody(model.DecodeRequestBody{Codes: "10 01 20 01 13 01 23 01"})
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	w := httptest.NewRecorder()
	HandleDecode(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var decodeResponse model.DecodeResponse
	err := json.Unmarshal(respBody, &decodeResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(decodeResponse, model.DecodeResponse{Notation: "--c+c-d#+d#"})
}

func TestHandleDecodeAppendRests(t *testing.T) {
	body := createDecodeReqBody(model.DecodeRequestBody{Codes: "30 02 00 02 30 02", AppendRests: true})
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	w := httptest.NewRecorder()
	HandleDecode(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var decodeResponse model.DecodeResponse
	err := json.Unmarshal(respBody, &decodeResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(decodeResponse, model.DecodeResponse{Notation: "scxc"})
}

func TestHandleDecodeBadCodes(t *testing.T) {
	body := createDecodeReqBody(model.DecodeRequestBody{Codes: "zz 01"})
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	w := httptest.NewRecorder()
	HandleDecode(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)

	var errResponse model.ErrorResponse
	err := json.Unmarshal(respBody, &errResponse)
	if err != nil {
		panic(err.Error())
	}
	assert.NotEmpty(errResponse.Error)
}

func TestHandleDecodeUnsupportedDuration(t *testing.T) {
	body := createDecodeReqBody(model.DecodeRequestBody{Codes: "20 05"})
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	w := httptest.NewRecorder()
	HandleDecode(w, req)

	assert := assert.New(t)
	assert.Equal(w.Result().StatusCode, 400)
}

func TestHandleFrequencies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/frequencies", nil)
	w := httptest.NewRecorder()
	HandleFrequencies(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var freqs []float64
	err := json.Unmarshal(respBody, &freqs)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(len(freqs), 180)
	assert.InDelta(freqs[0], 64, 1e-9)
}
