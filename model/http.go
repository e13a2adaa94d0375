package model

type DecodeRequestBody struct {
	Codes       string `json:"codes"`
	AppendRests bool   `json:"append_rests"`
}

type DecodeResponse struct {
	Notation string `json:"notation"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
